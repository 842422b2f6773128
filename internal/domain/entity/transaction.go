package entity

import "time"

// TransactionType tipo de movimiento reconocido. Sell descuenta stock, Add lo aumenta.
type TransactionType string

const (
	TransactionAdd  TransactionType = "Add"
	TransactionSell TransactionType = "Sell"
)

// ParseTransactionType valida el tipo recibido por la API.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TransactionAdd:
		return TransactionAdd, true
	case TransactionSell:
		return TransactionSell, true
	}
	return "", false
}

// TimestampLayout formato del timestamp en el log (hora local, precisión de segundos).
const TimestampLayout = "2006-01-02 15:04:05"

// Transaction registro del log de transacciones. Solo se agrega, nunca se
// modifica ni se lee de vuelta desde esta aplicación.
type Transaction struct {
	Timestamp      time.Time
	ProductName    string
	Quantity       int // magnitud del cambio, siempre >= 0
	Type           TransactionType
	ResultingStock int
}

// Row serializa la transacción como fila de hoja de cálculo:
// [timestamp, producto, cantidad, tipo, stock resultante].
func (t *Transaction) Row() []interface{} {
	return []interface{}{
		t.Timestamp.Format(TimestampLayout),
		t.ProductName,
		t.Quantity,
		string(t.Type),
		t.ResultingStock,
	}
}
