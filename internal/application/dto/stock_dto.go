package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductDTO producto tal como lo publica la API. ImageURL serializa como
// null cuando no hay imagen válida.
type ProductDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	ImageURL *string `json:"imageUrl"`
}

// FlexInt entero que acepta tanto números JSON (10) como enteros entre
// comillas ("10"), que es lo que envían algunos clientes del frontend.
type FlexInt int

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("quantityChange debe ser un entero")
	}
	*f = FlexInt(n)
	return nil
}

// UpdateStockRequest body para POST /api/stock/update.
// QuantityChange es puntero para distinguir campo ausente de cero.
type UpdateStockRequest struct {
	ProductName     string   `json:"productName"`
	QuantityChange  *FlexInt `json:"quantityChange"`
	TransactionType string   `json:"transactionType"`
}

// UpdateStockResponse respuesta de una actualización exitosa.
type UpdateStockResponse struct {
	Message  string `json:"message"`
	NewStock int    `json:"newStock"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
