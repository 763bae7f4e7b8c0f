package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jhoicas/atelier-api/docs"
	"github.com/jhoicas/atelier-api/internal/application/activity"
	"github.com/jhoicas/atelier-api/internal/application/catalog"
	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/atelier-api/internal/infrastructure/pdf"
	"github.com/jhoicas/atelier-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/atelier-api/internal/interfaces/http"
	"github.com/jhoicas/atelier-api/pkg/config"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// repositories agrupa los adaptadores del driver elegido.
type repositories struct {
	products   repository.ProductRepository
	models     repository.ProductModelRepository
	coloris    repository.ProductColorisRepository
	activities repository.ActivityRepository
	movements  repository.StockMovementRepository
	txRunner   stock.TxRunner
	pinger     httpRouter.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		repos = repositories{
			products:   store.Products(),
			models:     store.ProductModels(),
			coloris:    store.ProductColoris(),
			activities: store.Activities(),
			movements:  store.StockMovements(),
			txRunner:   store,
			pinger:     store,
		}
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.RunMigrations(ctx, pool, log.WithComponent("migrations")); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		repos = postgresRepositories(pool)
	}

	pdfRenderer := infrapdf.NewRevenueReportRenderer(infrapdf.Options{
		BusinessName: cfg.Report.BusinessName,
		Locale:       cfg.Report.Locale,
		Currency:     cfg.Report.Currency,
	})

	app := httpRouter.NewApp(cfg.App.Name, log.WithComponent("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Atelier API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  catalog.NewProductUseCase(repos.products, repos.models, repos.coloris, repos.txRunner),
		CatalogUC:  catalog.NewModelUseCase(repos.models, repos.coloris),
		ActivityUC: activity.NewActivityUseCase(repos.activities),
		StockUC:    stock.NewMovementUseCase(repos.movements, repos.txRunner),
		RevenueUC:  revenue.NewRevenueUseCase(repos.activities, repos.products, pdfRenderer),
		Storage:    cfg.Storage.Driver,
		Pinger:     repos.pinger,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		products:   postgres.NewProductRepository(pool),
		models:     postgres.NewProductModelRepository(pool),
		coloris:    postgres.NewProductColorisRepository(pool),
		activities: postgres.NewActivityRepository(pool),
		movements:  postgres.NewStockMovementRepository(pool),
		txRunner:   postgres.NewTxRunner(pool),
		pinger:     pool,
	}
}
