package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("producto no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrSpreadsheetNotFound = errors.New("hoja de cálculo no encontrada")
	ErrWorksheetNotFound   = errors.New("pestaña no encontrada en la hoja de cálculo")
	ErrInvalidCredentials  = errors.New("archivo de credenciales inválido")
)

// InsufficientStockError detalla un rechazo por stock insuficiente:
// cuánto hay disponible y cuánto se intentó descontar.
// errors.Is(err, ErrInsufficientStock) lo reconoce.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s': disponible %d, solicitado %d", e.Product, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
