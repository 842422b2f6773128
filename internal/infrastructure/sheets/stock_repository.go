package sheets

import (
	"context"
	"fmt"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/stock-sheets-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// quantityColumn columna de cantidad en la hoja de stock (columna B).
const quantityColumn = "B"

// StockRepo implementación de StockRepository sobre una pestaña de Google Sheets.
type StockRepo struct {
	client    *Client
	worksheet string
}

// NewStockRepository construye el adaptador de stock para la pestaña indicada.
func NewStockRepository(client *Client, worksheet string) *StockRepo {
	return &StockRepo{client: client, worksheet: worksheet}
}

// Rows lee todas las filas de la pestaña de stock, encabezado incluido.
func (r *StockRepo) Rows(ctx context.Context) ([][]string, error) {
	resp, err := r.client.svc.Spreadsheets.Values.Get(r.client.spreadsheetID, sheetRange(r.worksheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, mapError(err)
	}
	return toStringRows(resp.Values), nil
}

// UpdateQuantity escribe la cantidad en la columna B de la fila indicada (1-based).
func (r *StockRepo) UpdateQuantity(ctx context.Context, sheetRow, quantity int) error {
	rng := fmt.Sprintf("'%s'!%s%d", r.worksheet, quantityColumn, sheetRow)
	vr := &gsheets.ValueRange{Values: [][]interface{}{{quantity}}}
	_, err := r.client.svc.Spreadsheets.Values.Update(r.client.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return mapError(err)
	}
	return nil
}
