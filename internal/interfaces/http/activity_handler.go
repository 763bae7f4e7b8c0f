package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/activity"
	"github.com/jhoicas/atelier-api/internal/application/dto"
)

// ActivityHandler maneja el diario de actividades del taller (protegido).
type ActivityHandler struct {
	uc *activity.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *activity.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar actividad
// @Description  SALE y STOCK_CORRECTION exigen productId. Registrar una actividad no
//
//	mueve el stock; para eso está /api/stock-movements.
//
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "Actividad"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	data, err := in.ToEntity()
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToActivityResponse(out))
}

// List godoc
// @Summary      Listar actividades
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ActivityResponse]
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(rows, dto.ToActivityResponse))
}

// GetByID godoc
// @Summary      Obtener actividad por ID
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(dto.ToActivityResponse(out))
}

// Update godoc
// @Summary      Actualizar actividad (parcial)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la actividad"
// @Param        body  body  dto.UpdateActivityRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [patch]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	patch, err := in.ToPatch()
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToActivityResponse(out))
}
