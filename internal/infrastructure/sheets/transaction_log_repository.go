package sheets

import (
	"context"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
	"github.com/jhoicas/stock-sheets-api/internal/domain/repository"
)

var _ repository.TransactionLogRepository = (*TransactionLogRepo)(nil)

// TransactionLogRepo implementación append-only del log de transacciones
// sobre una pestaña de Google Sheets.
type TransactionLogRepo struct {
	client    *Client
	worksheet string
}

// NewTransactionLogRepository construye el adaptador del log de transacciones.
func NewTransactionLogRepository(client *Client, worksheet string) *TransactionLogRepo {
	return &TransactionLogRepo{client: client, worksheet: worksheet}
}

// Append agrega una fila al final del log. Nunca modifica filas existentes.
func (r *TransactionLogRepo) Append(ctx context.Context, tx *entity.Transaction) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{tx.Row()}}
	_, err := r.client.svc.Spreadsheets.Values.Append(r.client.spreadsheetID, sheetRange(r.worksheet), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return mapError(err)
	}
	return nil
}
