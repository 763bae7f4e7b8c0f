package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/catalog"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// CatalogHandler maneja modelos de producto y sus coloris (protegido).
type CatalogHandler struct {
	uc *catalog.ModelUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.ModelUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateModel godoc
// @Summary      Crear modelo de producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductModelRequest  true  "type y name"
// @Success      201   {object}  dto.ProductModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product-models [post]
func (h *CatalogHandler) CreateModel(c *fiber.Ctx) error {
	var in dto.CreateProductModelRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateModel(c.UserContext(), in.ToEntity())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductModelResponse(out))
}

// ListModels godoc
// @Summary      Listar modelos de producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "Filtra por categoría (BAG, POUCH, WALLET, ACCESSORY, OTHER)"
// @Success      200  {object}  dto.ListResponse[dto.ProductModelResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product-models [get]
func (h *CatalogHandler) ListModels(c *fiber.Ctx) error {
	var (
		rows []*entity.ProductModel
		err  error
	)
	if productType := c.Query("type"); productType != "" {
		rows, err = h.uc.ListModelsByType(c.UserContext(), productType)
	} else {
		rows, err = h.uc.ListModels(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(rows, dto.ToProductModelResponse))
}

// GetModel godoc
// @Summary      Obtener modelo por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del modelo"
// @Success      200  {object}  dto.ProductModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-models/{id} [get]
func (h *CatalogHandler) GetModel(c *fiber.Ctx) error {
	out, err := h.uc.GetModel(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(dto.ToProductModelResponse(out))
}

// UpdateModel godoc
// @Summary      Actualizar modelo (parcial)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del modelo"
// @Param        body  body  dto.UpdateProductModelRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-models/{id} [patch]
func (h *CatalogHandler) UpdateModel(c *fiber.Ctx) error {
	var in dto.UpdateProductModelRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateModel(c.UserContext(), c.Params("id"), in.ToPatch())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductModelResponse(out))
}

// CreateColoris godoc
// @Summary      Agregar coloris a un modelo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del modelo"
// @Param        body  body  dto.ColorisRequest  true  "Nombre del coloris"
// @Success      201   {object}  dto.ProductColorisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-models/{id}/coloris [post]
func (h *CatalogHandler) CreateColoris(c *fiber.Ctx) error {
	var in dto.ColorisRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateColoris(c.UserContext(), c.Params("id"), in.Coloris)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductColorisResponse(out))
}

// ListColoris godoc
// @Summary      Listar coloris de un modelo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del modelo"
// @Success      200  {object}  dto.ListResponse[dto.ProductColorisResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-models/{id}/coloris [get]
func (h *CatalogHandler) ListColoris(c *fiber.Ctx) error {
	rows, err := h.uc.ListColoris(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(rows, dto.ToProductColorisResponse))
}

// UpdateColoris godoc
// @Summary      Renombrar coloris
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del coloris"
// @Param        body  body  dto.ColorisRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ProductColorisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-coloris/{id} [patch]
func (h *CatalogHandler) UpdateColoris(c *fiber.Ctx) error {
	var in dto.ColorisRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateColoris(c.UserContext(), c.Params("id"), entity.ProductColorisPatch{Coloris: &in.Coloris})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductColorisResponse(out))
}
