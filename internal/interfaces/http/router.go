package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/listas-precios/internal/application/pricelist"
)

// queryService lo implementa *pricelist.QueryUseCase.
type queryService interface {
	listQuerier
	offerQuerier
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ingest    listIngester
	Publish   listPublisher
	Query     queryService
	Archive   fileArchiver
	Bucket    string
	Scheme    string
	Defaults  pricelist.ListDefaults
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	lists := api.Group("/price-lists")
	listHandler := NewPriceListHandler(deps.Ingest, deps.Publish, deps.Query, deps.Archive, deps.Bucket, deps.Scheme, deps.Defaults)
	lists.Post("/", listHandler.Upload)
	lists.Get("/", listHandler.List)
	lists.Get("/:id", listHandler.GetByID)
	lists.Get("/:id/items", listHandler.Items)
	lists.Get("/:id/pdf", listHandler.PDF)
	lists.Post("/:id/publish", listHandler.Publish)

	offers := api.Group("/supplier-offers")
	offerHandler := NewSupplierOfferHandler(deps.Query)
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
}
