package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/stock-sheets-api/internal/domain"
)

// Client acceso autenticado a un documento de Google Sheets (API v4).
// Los repositorios de este paquete comparten el mismo cliente.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient valida el archivo de credenciales del service account y construye
// el servicio de Sheets con alcance de lectura/escritura.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheetID vacío")
	}
	if err := validateCredentialsFile(credentialsFile); err != nil {
		return nil, err
	}
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// validateCredentialsFile verifica que el credentials.json exista, no esté
// vacío y sea JSON válido, para fallar en el arranque con un error claro en
// lugar de hacerlo en la primera petición.
func validateCredentialsFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: ruta de credenciales vacía", domain.ErrInvalidCredentials)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: no existe %s", domain.ErrInvalidCredentials, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: leer %s: %v", domain.ErrInvalidCredentials, path, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return fmt.Errorf("%w: %s está vacío", domain.ErrInvalidCredentials, path)
	}
	if !json.Valid(content) {
		return fmt.Errorf("%w: %s no es JSON válido", domain.ErrInvalidCredentials, path)
	}
	return nil
}

// sheetRange devuelve el rango A1 que cubre toda la pestaña.
func sheetRange(worksheet string) string {
	return fmt.Sprintf("'%s'", worksheet)
}

// mapError traduce errores de la API de Google a errores de dominio.
// 404 = documento inexistente o sin compartir con el service account;
// 400 = rango no interpretable, que es como responde la API cuando la
// pestaña no existe.
func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return domain.ErrSpreadsheetNotFound
		case http.StatusBadRequest:
			return domain.ErrWorksheetNotFound
		}
	}
	return err
}

// cellString normaliza una celda de la API (interface{}) a texto.
func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// toStringRows convierte la matriz de valores de la API a filas de texto ordenadas.
func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows
}
