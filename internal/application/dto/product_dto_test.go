package dto_test

import (
	"strings"
	"testing"

	"github.com/losmayitos/appstore-api/internal/application/dto"
	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() dto.ProductForm {
	return dto.ProductForm{
		Name:        "Sal de mar",
		UnitMeasure: "gramos",
		NetContent:  500,
		Price:       decimal.NewFromFloat(12.50),
		Stock:       10,
	}
}

func fieldMessages(t *testing.T, err error) []string {
	t.Helper()
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "el error debe ser de validación")
	msgs := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func TestProductForm_Valida(t *testing.T) {
	assert.NoError(t, validForm().Validate())
}

// Los valores frontera del precio y el contenido neto: cero falla, el mínimo
// positivo pasa.
func TestProductForm_PrecioYContenidoFrontera(t *testing.T) {
	f := validForm()
	f.Price = decimal.Zero
	assert.Contains(t, fieldMessages(t, f.Validate()), "El precio es obligatorio")

	f = validForm()
	f.Price = decimal.NewFromFloat(0.01)
	assert.NoError(t, f.Validate())

	f = validForm()
	f.NetContent = 0
	msgs := fieldMessages(t, f.Validate())
	assert.Contains(t, msgs, "El contenido neto es obligatorio")

	f = validForm()
	f.NetContent = 1
	assert.NoError(t, f.Validate())
}

func TestProductForm_PrecioNegativo(t *testing.T) {
	f := validForm()
	f.Price = decimal.NewFromFloat(-3)
	assert.Contains(t, fieldMessages(t, f.Validate()), "El precio debe ser mayor a 0")
}

func TestProductForm_NombreObligatorioYTope(t *testing.T) {
	f := validForm()
	f.Name = ""
	assert.Contains(t, fieldMessages(t, f.Validate()), "El nombre es obligatorio")

	// el tope de la capa de validación es 50 (el esquema guarda 25; la
	// discrepancia viene del modelo original)
	f = validForm()
	f.Name = strings.Repeat("a", 50)
	assert.NoError(t, f.Validate())

	f.Name = strings.Repeat("a", 51)
	assert.Contains(t, fieldMessages(t, f.Validate()), "El nombre no puede exceder los 50 caracteres")
}

func TestProductForm_UnidadMedidaObligatoriaYTope(t *testing.T) {
	f := validForm()
	f.UnitMeasure = ""
	assert.Contains(t, fieldMessages(t, f.Validate()), "La unidad de medida es obligatoria")

	f = validForm()
	f.UnitMeasure = strings.Repeat("u", 26)
	assert.Contains(t, fieldMessages(t, f.Validate()), "La unidad de medida no puede exceder los 25 caracteres")
}

func TestProductForm_StockNegativo(t *testing.T) {
	f := validForm()
	f.Stock = -1
	assert.Contains(t, fieldMessages(t, f.Validate()), "El stock no puede ser negativo")

	f.Stock = 0
	assert.NoError(t, f.Validate(), "stock cero es válido (valor por defecto)")
}

func TestProductForm_AcumulaErroresPorCampo(t *testing.T) {
	f := dto.ProductForm{}
	ve, ok := domain.AsValidationError(f.Validate())
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(ve.Fields), 4, "todos los campos obligatorios deben reportarse")
}
