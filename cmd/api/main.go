// @title        Listas de precios de proveedores API
// @version      1.0
// @description  Ingesta de listas de precios (xlsx/csv) y publicación como ofertas de proveedor.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/listas-precios/docs"
	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/listas-precios/internal/infrastructure/pdf"
	"github.com/jhoicas/listas-precios/internal/infrastructure/postgres"
	"github.com/jhoicas/listas-precios/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/listas-precios/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/listas-precios/internal/interfaces/http"
	"github.com/jhoicas/listas-precios/pkg/config"
	"github.com/jhoicas/listas-precios/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	listRepo := postgres.NewPriceListRepository(pool)
	offerRepo := postgres.NewSupplierOfferRepository(pool)
	files := storage.NewLocal(cfg.Storage.Root)

	defaults := pricelist.ListDefaults{
		Currency:     cfg.PriceList.Currency,
		TaxInclusive: cfg.PriceList.TaxInclusive,
		TaxRate:      decimal.NewFromFloat(cfg.PriceList.TaxRate),
	}
	ingestUC := pricelist.NewIngestUseCase(listRepo, spreadsheet.NewReader(), cfg.PriceList.BatchSize, log.Component("ingesta"))
	publishUC := pricelist.NewPublishUseCase(listRepo, offerRepo, cfg.PriceList.BatchSize, log.Component("publicacion"))
	queryUC := pricelist.NewQueryUseCase(listRepo, offerRepo, infrapdf.NewPriceListGenerator())

	// Trigger de archivos subidos: solo si hay brokers configurados.
	var consumer *events.UploadConsumer
	if cfg.Kafka.Enabled() {
		trigger := pricelist.NewUploadTrigger(ingestUC, files, cfg.PriceList.UploadPrefix, cfg.Storage.Scheme, defaults, log.Component("trigger"))
		consumer = events.NewUploadConsumer(cfg.Kafka, trigger, log.Component("kafka"))
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Error().Err(err).Msg("consumidor de archivos finalizado")
			}
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		Immutable:    true,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Listas de precios API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ingest:    ingestUC,
		Publish:   publishUC,
		Query:     queryUC,
		Archive:   files,
		Bucket:    cfg.Storage.Bucket,
		Scheme:    cfg.Storage.Scheme,
		Defaults:  defaults,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar consumidor kafka")
		}
	}

	log.Info().Msg("aplicación detenida")
}
