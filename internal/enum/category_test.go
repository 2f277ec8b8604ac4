package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCategory_Literals(t *testing.T) {
	for _, category := range Categories() {
		assert.Equal(t, category, DecodeCategory(category.String()))
	}
}

func TestDecodeCategory_ModelOutputNoise(t *testing.T) {
	assert.Equal(t, CategoryBilling, DecodeCategory("  Billing.\n"))
	assert.Equal(t, CategorySales, DecodeCategory(`"Sales"`))
	assert.Equal(t, CategoryTechnicalSupport, DecodeCategory("technical support"))
}

func TestDecodeCategory_SpanishAliases(t *testing.T) {
	assert.Equal(t, CategoryTechnicalSupport, DecodeCategory("Soporte Técnico"))
	assert.Equal(t, CategorySales, DecodeCategory("Ventas"))
	assert.Equal(t, CategoryBilling, DecodeCategory("Facturación"))
	assert.Equal(t, CategoryReturns, DecodeCategory("Devoluciones"))
	assert.Equal(t, CategoryOther, DecodeCategory("Otro"))
}

func TestDecodeCategory_FallsBackToOther(t *testing.T) {
	assert.Equal(t, CategoryOther, DecodeCategory(""))
	assert.Equal(t, CategoryOther, DecodeCategory("Spam"))
	assert.Equal(t, CategoryOther, DecodeCategory("I would classify this email as Billing"))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Billing"))
	assert.True(t, IsValidCategory("technical support"))
	assert.True(t, IsValidCategory(" Returns "))

	// aliases are decode-only, the API boundary takes canonical values
	assert.False(t, IsValidCategory("Ventas"))
	assert.False(t, IsValidCategory("Spam"))
	assert.False(t, IsValidCategory(""))
}
