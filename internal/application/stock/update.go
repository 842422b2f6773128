package stock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-sheets-api/internal/domain"
	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
	"github.com/jhoicas/stock-sheets-api/internal/domain/repository"
)

// UpdateInput entrada para una actualización de stock.
type UpdateInput struct {
	ProductName     string
	QuantityChange  int
	TransactionType string
}

// UpdateResult resultado de una actualización exitosa.
type UpdateResult struct {
	Product  string
	NewStock int
	Message  string
}

// UpdateStockUseCase ejecuta la secuencia leer-modificar-escribir-registrar
// contra la hoja de stock y el log de transacciones.
//
// La hoja remota no ofrece transacciones, así que el caso de uso serializa
// las actualizaciones del mismo producto con un mutex por producto; dos
// ventas concurrentes ya no pueden leer el mismo stock y perder una
// actualización. La operación NO es idempotente: reintentar una llamada
// idéntica vuelve a mover el stock.
type UpdateStockUseCase struct {
	stockRepo repository.StockRepository
	logRepo   repository.TransactionLogRepository
	log       zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewUpdateStockUseCase construye el caso de uso.
func NewUpdateStockUseCase(
	stockRepo repository.StockRepository,
	logRepo repository.TransactionLogRepository,
	log zerolog.Logger,
) *UpdateStockUseCase {
	return &UpdateStockUseCase{
		stockRepo: stockRepo,
		logRepo:   logRepo,
		log:       log,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockFor devuelve el mutex del producto (clave normalizada).
func (uc *UpdateStockUseCase) lockFor(key string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	m, ok := uc.locks[key]
	if !ok {
		m = &sync.Mutex{}
		uc.locks[key] = m
	}
	return m
}

// UpdateStock valida la entrada, localiza el producto, aplica el cambio y
// registra la transacción. La escritura del stock precede siempre al append
// del log; si falla entre ambas no hay compensación (queda stock actualizado
// sin registro, limitación documentada del diseño).
func (uc *UpdateStockUseCase) UpdateStock(ctx context.Context, in UpdateInput) (*UpdateResult, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" || in.QuantityChange == 0 {
		return nil, domain.ErrInvalidInput
	}
	txType, ok := entity.ParseTransactionType(in.TransactionType)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	key := normalizeName(name)
	lock := uc.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	rows, err := uc.stockRepo.Rows(ctx)
	if err != nil {
		return nil, err
	}

	sheetRow := -1
	currentStock := 0
	originalName := ""
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		if normalizeName(row[0]) != key {
			continue
		}
		sheetRow = i + 1
		originalName = strings.TrimSpace(row[0])
		if qtyStr := strings.TrimSpace(row[1]); qtyStr != "" {
			n, convErr := strconv.Atoi(qtyStr)
			if convErr != nil {
				// Celda corrupta: se asume 0 en lugar de abortar la operación.
				uc.log.Warn().Int("sheet_row", sheetRow).Str("quantity", qtyStr).
					Str("product", originalName).
					Msg("cantidad no numérica en la hoja de stock, se asume 0")
				n = 0
			}
			currentStock = n
		}
		break
	}
	if sheetRow == -1 {
		return nil, domain.ErrNotFound
	}

	magnitude := in.QuantityChange
	if magnitude < 0 {
		magnitude = -magnitude
	}

	newStock := currentStock + in.QuantityChange
	// El stock nunca queda negativo, sea venta o ajuste: se rechaza antes
	// de cualquier escritura.
	if newStock < 0 {
		return nil, &domain.InsufficientStockError{
			Product:   originalName,
			Available: currentStock,
			Requested: magnitude,
		}
	}

	opID := uuid.New().String()

	if err := uc.stockRepo.UpdateQuantity(ctx, sheetRow, newStock); err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		Timestamp:      time.Now(),
		ProductName:    originalName,
		Quantity:       magnitude,
		Type:           txType,
		ResultingStock: newStock,
	}
	if err := uc.logRepo.Append(ctx, tx); err != nil {
		uc.log.Error().Err(err).Str("operation_id", opID).Str("product", originalName).
			Int("new_stock", newStock).
			Msg("stock actualizado pero falló el registro en el log de transacciones")
		return nil, err
	}

	uc.log.Info().Str("operation_id", opID).Str("product", originalName).
		Str("type", string(txType)).Int("change", in.QuantityChange).
		Int("new_stock", newStock).
		Msg("movimiento de stock registrado")

	verb := "agregaron"
	if txType == entity.TransactionSell {
		verb = "vendieron"
	}
	return &UpdateResult{
		Product:  originalName,
		NewStock: newStock,
		Message:  fmt.Sprintf("Se %s %d unidades de %s. Stock restante: %d", verb, magnitude, originalName, newStock),
	}, nil
}
