package stock

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
)

// imageURLPrefix solo se conservan URLs de imagen servidas por https.
const imageURLPrefix = "https://"

// parseRow convierte una fila cruda de la hoja de stock en un Product.
// Devuelve ok=false cuando la fila está malformada; esas filas se descartan
// con un diagnóstico y nunca interrumpen la operación. sheetRow es la fila
// en la hoja (1-based, encabezado incluido) y solo se usa para el log.
//
// Reglas:
//   - menos de 2 celdas: descartada (nombre y cantidad son obligatorios)
//   - nombre vacío tras trim: descartada
//   - cantidad vacía: 0; cantidad no numérica: descartada con warning
//   - cuarta celda presente y no vacía: se conserva solo si empieza con https://
func parseRow(row []string, sheetRow int, log zerolog.Logger) (*entity.Product, bool) {
	if len(row) < 2 {
		log.Warn().Int("sheet_row", sheetRow).Strs("row", row).
			Msg("fila de stock descartada: faltan columnas")
		return nil, false
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		log.Warn().Int("sheet_row", sheetRow).
			Msg("fila de stock descartada: nombre vacío")
		return nil, false
	}

	quantity := 0
	if qtyStr := strings.TrimSpace(row[1]); qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			log.Warn().Int("sheet_row", sheetRow).Str("quantity", qtyStr).
				Msg("fila de stock descartada: cantidad no numérica")
			return nil, false
		}
		quantity = n
	}

	var imageURL *string
	if len(row) > 3 {
		if u := strings.TrimSpace(row[3]); u != "" && strings.HasPrefix(u, imageURLPrefix) {
			imageURL = &u
		}
	}

	return &entity.Product{Name: name, Quantity: quantity, ImageURL: imageURL}, true
}

// normalizeName prepara un nombre de producto para comparación:
// normaliza a NFC (las celdas se escriben a mano), recorta espacios
// y pasa a minúsculas.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
