package repository

import "context"

// StockRepository puerto de acceso a la hoja de stock.
// Las filas llegan en orden de la hoja, incluida la fila de encabezado.
type StockRepository interface {
	// Rows devuelve todas las filas como celdas de texto ordenadas.
	Rows(ctx context.Context) ([][]string, error)
	// UpdateQuantity escribe la cantidad en la columna de stock de la fila
	// indicada (1-based, como numera la hoja).
	UpdateQuantity(ctx context.Context, sheetRow, quantity int) error
}
