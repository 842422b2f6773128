package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_NumeroJSON(t *testing.T) {
	var f FlexInt
	require.NoError(t, json.Unmarshal([]byte(`10`), &f))
	assert.Equal(t, FlexInt(10), f)

	require.NoError(t, json.Unmarshal([]byte(`-5`), &f))
	assert.Equal(t, FlexInt(-5), f)
}

func TestFlexInt_EnteroEntreComillas(t *testing.T) {
	var f FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"10"`), &f))
	assert.Equal(t, FlexInt(10), f)

	require.NoError(t, json.Unmarshal([]byte(`" -7 "`), &f))
	assert.Equal(t, FlexInt(-7), f, "espacios dentro de las comillas se toleran")
}

func TestFlexInt_Invalido(t *testing.T) {
	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &f), "decimales no son cantidades válidas")
	assert.Error(t, json.Unmarshal([]byte(`""`), &f))
}

func TestUpdateStockRequest_CampoAusente(t *testing.T) {
	var in UpdateStockRequest
	require.NoError(t, json.Unmarshal([]byte(`{"productName":"Widget","transactionType":"Add"}`), &in))
	assert.Nil(t, in.QuantityChange, "quantityChange ausente debe quedar nil para detectarlo en validación")
}

func TestUpdateStockRequest_Completo(t *testing.T) {
	var in UpdateStockRequest
	body := `{"productName":"Widget","quantityChange":"-3","transactionType":"Sell"}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	require.NotNil(t, in.QuantityChange)
	assert.Equal(t, FlexInt(-3), *in.QuantityChange)
	assert.Equal(t, "Sell", in.TransactionType)
}

func TestProductDTO_ImageURLNull(t *testing.T) {
	b, err := json.Marshal(ProductDTO{Name: "Widget", Quantity: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Widget","quantity":10,"imageUrl":null}`, string(b),
		"sin imagen válida el campo serializa como null")
}
