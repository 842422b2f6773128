package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stock-sheets-api/internal/application/dto"
	"github.com/jhoicas/stock-sheets-api/internal/application/stock"
	"github.com/jhoicas/stock-sheets-api/internal/domain"
	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP de consulta y actualización de stock.
type StockHandler struct {
	query  *stock.QueryUseCase
	update *stock.UpdateStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *stock.QueryUseCase, update *stock.UpdateStockUseCase) *StockHandler {
	return &StockHandler{query: query, update: update}
}

// GetAll godoc
// @Summary      Listar todo el stock
// @Tags         stock
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/all [get]
func (h *StockHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.query.ListAll(c.Context())
	if err != nil {
		return translateError(c, err)
	}
	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, toProductDTO(p))
	}
	if len(items) == 0 {
		return c.JSON(fiber.Map{"message": "No stock data found", "data": items})
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetByName godoc
// @Summary      Consultar stock por nombre de producto
// @Tags         stock
// @Produce      json
// @Param        productName  path  string  true  "Nombre del producto (sin distinguir mayúsculas)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/{productName} [get]
func (h *StockHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("productName")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	p, err := h.query.GetByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product '%s' not found", strings.TrimSpace(name)),
				"data":    nil,
			})
		}
		return translateError(c, err)
	}
	return c.JSON(fiber.Map{"data": toProductDTO(*p)})
}

// Update godoc
// @Summary      Actualizar stock y registrar la transacción
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "productName, quantityChange (con signo), transactionType (Add|Sell)"
// @Success      200   {object}  dto.UpdateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/update [post]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: quantityChange debe ser un entero"})
	}
	if strings.TrimSpace(in.ProductName) == "" || in.QuantityChange == nil || in.TransactionType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productName, quantityChange y transactionType son requeridos"})
	}

	res, err := h.update.UpdateStock(c.Context(), stock.UpdateInput{
		ProductName:     in.ProductName,
		QuantityChange:  int(*in.QuantityChange),
		TransactionType: in.TransactionType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: transactionType debe ser Add o Sell y quantityChange distinto de cero"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: fmt.Sprintf("producto '%s' no existe en el stock", strings.TrimSpace(in.ProductName))})
		}
		return translateError(c, err)
	}
	return c.JSON(dto.UpdateStockResponse{Message: res.Message, NewStock: res.NewStock})
}

// translateError traduce fallas de configuración y transporte a 500 con un
// mensaje genérico; el detalle queda solo en el log.
func translateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrWorksheetNotFound) || errors.Is(err, domain.ErrSpreadsheetNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
		log.Error().Err(err).Str("path", c.Path()).Msg("hoja de cálculo mal configurada")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONFIG", Message: "hoja de cálculo mal configurada; revisar SPREADSHEET_ID y los nombres de las pestañas"})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error accediendo a la hoja de cálculo")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al acceder a los datos de stock"})
}

func toProductDTO(p entity.Product) dto.ProductDTO {
	return dto.ProductDTO{Name: p.Name, Quantity: p.Quantity, ImageURL: p.ImageURL}
}
