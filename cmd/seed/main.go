// seed carga el catálogo del taller (modelos, coloris y productos con su stock
// inicial) desde un CSV exportado de la hoja de cálculo, e imprime un token JWT
// de desarrollo para probar la API.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
//
// Formato (separador ';', primera fila de encabezados, Windows-1252 o UTF-8):
//
//	tipo;modelo;coloris;costo;precio;stock
//	BAG;Cabas;Camel;10;45;3
//
// Usa la misma configuración que cmd/api (DATABASE_URL, DB_*, JWT_*).
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/atelier-api/internal/application/catalog"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/postgres"
	"github.com/jhoicas/atelier-api/pkg/config"
	"github.com/jhoicas/atelier-api/pkg/jwt"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// catalogRow una fila del CSV ya convertida.
type catalogRow struct {
	Type      entity.ProductType
	Model     string
	Coloris   string
	UnitCost  decimal.Decimal
	SalePrice decimal.Decimal
	Stock     float64
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseCatalog(decodeText(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.RunMigrations(ctx, pool, log.WithComponent("migrations")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	models := postgres.NewProductModelRepository(pool)
	coloris := postgres.NewProductColorisRepository(pool)
	s := seeder{
		catalog:  catalog.NewModelUseCase(models, coloris),
		products: catalog.NewProductUseCase(postgres.NewProductRepository(pool), models, coloris, postgres.NewTxRunner(pool)),
		modelIDs: map[string]string{},
	}
	created, err := s.load(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Int("productos_creados", created).Msg("carga del catálogo")
	}
	log.Info().Int("filas", len(rows)).Int("productos", created).Msg("catálogo cargado")

	if cfg.JWT.Secret == "" {
		return
	}
	token, err := jwt.Generate(cfg.JWT.Secret, "seed", jwt.RoleAdmin, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	fmt.Printf("Token de desarrollo (admin, %d min):\n%s\n", cfg.JWT.Expiration, token)
}

type seeder struct {
	catalog  *catalog.ModelUseCase
	products *catalog.ProductUseCase
	modelIDs map[string]string // tipo|modelo -> id
}

// load crea cada modelo una sola vez, un coloris y un producto por fila. El stock
// inicial queda registrado como movimiento CREATION al crear el producto.
func (s *seeder) load(ctx context.Context, rows []catalogRow) (int, error) {
	created := 0
	for i, r := range rows {
		modelID, err := s.model(ctx, r)
		if err != nil {
			return created, fmt.Errorf("fila %d: modelo %q: %w", i+2, r.Model, err)
		}
		c, err := s.catalog.CreateColoris(ctx, modelID, r.Coloris)
		if err != nil {
			return created, fmt.Errorf("fila %d: coloris %q: %w", i+2, r.Coloris, err)
		}
		if _, err := s.products.Create(ctx, entity.Product{
			Naming:    entity.ModelNaming{ModelID: modelID, ColorisID: c.ID},
			UnitCost:  r.UnitCost,
			SalePrice: r.SalePrice,
			Stock:     r.Stock,
		}); err != nil {
			return created, fmt.Errorf("fila %d: producto: %w", i+2, err)
		}
		created++
	}
	return created, nil
}

func (s *seeder) model(ctx context.Context, r catalogRow) (string, error) {
	key := string(r.Type) + "|" + strings.ToLower(r.Model)
	if id, ok := s.modelIDs[key]; ok {
		return id, nil
	}
	m, err := s.catalog.CreateModel(ctx, entity.ProductModel{Type: r.Type, Name: r.Model})
	if err != nil {
		return "", err
	}
	s.modelIDs[key] = m.ID
	return m.ID, nil
}

// decodeText devuelve el contenido en UTF-8. Las exportaciones de Excel en Windows
// llegan en Windows-1252.
func decodeText(raw []byte) io.Reader {
	raw = []byte(strings.TrimPrefix(string(raw), "\ufeff"))
	if utf8.Valid(raw) {
		return strings.NewReader(string(raw))
	}
	return transform.NewReader(strings.NewReader(string(raw)), charmap.Windows1252.NewDecoder())
}

func parseCatalog(r io.Reader) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 6

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("sin filas de datos")
	}

	rows := make([]catalogRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		cost, err := decimal.NewFromString(commaToDot(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: costo %q inválido", line, rec[3])
		}
		price, err := decimal.NewFromString(commaToDot(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: precio %q inválido", line, rec[4])
		}
		qty := 0.0
		if s := strings.TrimSpace(rec[5]); s != "" {
			if qty, err = strconv.ParseFloat(commaToDot(s), 64); err != nil {
				return nil, fmt.Errorf("fila %d: stock %q inválido", line, rec[5])
			}
		}
		rows = append(rows, catalogRow{
			Type:      entity.ProductType(strings.ToUpper(strings.TrimSpace(rec[0]))),
			Model:     strings.TrimSpace(rec[1]),
			Coloris:   strings.TrimSpace(rec[2]),
			UnitCost:  cost,
			SalePrice: price,
			Stock:     qty,
		})
	}
	return rows, nil
}

// commaToDot acepta decimales con coma ("12,50").
func commaToDot(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}
