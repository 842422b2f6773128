package stock

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-sheets-api/internal/domain"
	"github.com/jhoicas/stock-sheets-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de repositorio (compartidos con update_test.go)
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockRepo hoja de stock en memoria. UpdateQuantity muta rows para que
// lecturas posteriores vean el nuevo valor, como la hoja real.
type fakeStockRepo struct {
	rows        [][]string
	rowsErr     error
	updateErr   error
	updateCalls int
	updatedRow  int
	updatedQty  int
}

func (f *fakeStockRepo) Rows(_ context.Context) ([][]string, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rows, nil
}

func (f *fakeStockRepo) UpdateQuantity(_ context.Context, sheetRow, quantity int) error {
	f.updateCalls++
	f.updatedRow = sheetRow
	f.updatedQty = quantity
	if f.updateErr != nil {
		return f.updateErr
	}
	if sheetRow >= 1 && sheetRow <= len(f.rows) && len(f.rows[sheetRow-1]) > 1 {
		f.rows[sheetRow-1][1] = strconv.Itoa(quantity)
	}
	return nil
}

type fakeLogRepo struct {
	appended []*entity.Transaction
	err      error
}

func (f *fakeLogRepo) Append(_ context.Context, tx *entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, tx)
	return nil
}

func header() []string {
	return []string{"Producto", "Cantidad", "Notas", "Imagen"}
}

// ──────────────────────────────────────────────────────────────────────────────
// ListAll
// ──────────────────────────────────────────────────────────────────────────────

func TestListAll_EscenarioCompleto(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"Widget", "10", "", "https://img/x.png"},
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)
	require.NotNil(t, products[0].ImageURL)
	assert.Equal(t, "https://img/x.png", *products[0].ImageURL)
}

func TestListAll_DescartaFilasMalformadas(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"Widget", "10"},
		{"Gadget", "abc"}, // cantidad no numérica: descartada
		{"Solitario"},     // fila corta: descartada
		{"Gizmo", ""},     // cantidad en blanco: 0
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2, "solo Widget y Gizmo deben sobrevivir")

	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gizmo", products[1].Name)
	assert.Equal(t, 0, products[1].Quantity)
}

func TestListAll_HojaSoloConEncabezado(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{header()}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products, "debe ser lista vacía, no nil, para serializar como []")
}

func TestListAll_HojaVacia(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListAll_ErrorDeTransporte(t *testing.T) {
	bang := errors.New("timeout remoto")
	repo := &fakeStockRepo{rowsErr: bang}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	_, err := uc.ListAll(context.Background())
	assert.ErrorIs(t, err, bang, "los errores de transporte se propagan sin reintento")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByName
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByName_IgnoraMayusculasYEspacios(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"widget", "7"},
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	p, err := uc.GetByName(context.Background(), "  Widget  ")
	require.NoError(t, err)
	assert.Equal(t, "widget", p.Name, "el nombre se devuelve con el casing de la hoja")
	assert.Equal(t, 7, p.Quantity)
}

func TestGetByName_PrimeraCoincidenciaEnOrdenDeFila(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"Widget", "1"},
		{"WIDGET", "2"},
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	p, err := uc.GetByName(context.Background(), "widget")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Quantity, "debe devolver la primera coincidencia")
}

func TestGetByName_NoEncontrado(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"Widget", "10"},
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	_, err := uc.GetByName(context.Background(), "Gadget")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByName_HojaSoloConEncabezado(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{header()}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	_, err := uc.GetByName(context.Background(), "Widget")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByName_NombreVacio(t *testing.T) {
	repo := &fakeStockRepo{rows: [][]string{header(), {"Widget", "10"}}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	_, err := uc.GetByName(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByName_FilaCoincidenteMalformada(t *testing.T) {
	// La coincidencia tiene cantidad corrupta: se descarta y la búsqueda
	// continúa con las filas siguientes.
	repo := &fakeStockRepo{rows: [][]string{
		header(),
		{"Widget", "abc"},
		{"Widget", "4"},
	}}
	uc := NewQueryUseCase(repo, zerolog.Nop())

	p, err := uc.GetByName(context.Background(), "widget")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Quantity)
}
