package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-sheets-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockQuery  *stock.QueryUseCase
	StockUpdate *stock.UpdateStockUseCase
	// JWTSecret protege POST /api/stock/update cuando no está vacío.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.StockQuery, deps.StockUpdate)
	st := api.Group("/stock")
	st.Get("/all", stockHandler.GetAll)
	st.Post("/update", AuthMiddleware(deps.JWTSecret), stockHandler.Update)
	// Debe ir después de las rutas fijas para no capturarlas como nombre de producto.
	st.Get("/:productName", stockHandler.GetByName)
}
