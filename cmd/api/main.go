package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jvalencia/surtido-api/internal/application/export"
	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
	infrapdf "github.com/jvalencia/surtido-api/internal/infrastructure/pdf"
	"github.com/jvalencia/surtido-api/internal/infrastructure/postgres"
	"github.com/jvalencia/surtido-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jvalencia/surtido-api/internal/interfaces/http"
	"github.com/jvalencia/surtido-api/pkg/config"
	"github.com/jvalencia/surtido-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	listRepo := postgres.NewSupplierListRepository(pool)
	itemRepo := postgres.NewListItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de búsquedas. Sin REDIS_ADDR la API funciona igual, solo que cada
	// teclazo del puesto llega a la base.
	var searchCache lookup.Cache
	if cfg.Redis.Addr != "" {
		client, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		searchCache = rediscache.NewCache(client, log)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché de búsquedas habilitado")
	}

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	lookupUC := lookup.NewUseCase(productRepo, searchCache, cfg.Redis.TTL, log)
	listUC := usecase.NewSupplierListUseCase(listRepo, itemRepo, txRunner)
	itemUC := usecase.NewListItemUseCase(itemRepo, productRepo, listRepo)
	exportUC := export.NewUseCase(listRepo, itemRepo, infrapdf.NewMarotoListGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la exportación PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Surtido API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		LookupUC:   lookupUC,
		ListUC:     listUC,
		ItemUC:     itemUC,
		ExportUC:   exportUC,
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
