package stock

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-sheets-api/internal/domain"
	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
	"github.com/jhoicas/stock-sheets-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre la hoja de stock.
// La primera fila de la hoja es encabezado y nunca se trata como dato.
type QueryUseCase struct {
	stockRepo repository.StockRepository
	log       zerolog.Logger
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(stockRepo repository.StockRepository, log zerolog.Logger) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, log: log}
}

// ListAll devuelve todos los productos en orden de fila, descartando el
// encabezado y las filas malformadas. Hoja vacía o solo con encabezado
// devuelve una lista vacía sin error.
func (uc *QueryUseCase) ListAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := uc.stockRepo.Rows(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if p, ok := parseRow(row, i+1, uc.log); ok {
			products = append(products, *p)
		}
	}
	return products, nil
}

// GetByName busca la primera coincidencia del nombre, sin distinguir
// mayúsculas ni espacios alrededor (en ambos lados de la comparación).
// Devuelve domain.ErrNotFound si no hay coincidencia.
func (uc *QueryUseCase) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	target := normalizeName(name)
	if target == "" {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.stockRepo.Rows(ctx)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		if normalizeName(row[0]) != target {
			continue
		}
		p, ok := parseRow(row, i+1, uc.log)
		if !ok {
			continue
		}
		return p, nil
	}
	return nil, domain.ErrNotFound
}
