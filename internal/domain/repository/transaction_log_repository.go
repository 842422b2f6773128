package repository

import (
	"context"

	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
)

// TransactionLogRepository puerto del log de transacciones (append-only).
type TransactionLogRepository interface {
	Append(ctx context.Context, tx *entity.Transaction) error
}
