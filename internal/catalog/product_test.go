package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "FRN-001", NormalizeSKU("  frn-001 "))
	assert.Equal(t, "ABC123", NormalizeSKU("abc123"))
}

func TestValidSKU(t *testing.T) {
	assert.True(t, ValidSKU("FRN-001"))
	assert.True(t, ValidSKU("A1-B2-C3"))
	assert.False(t, ValidSKU(""))
	assert.False(t, ValidSKU("frn-001")) // harus sudah dinormalisasi
	assert.False(t, ValidSKU("SKU 001"))
	assert.False(t, ValidSKU("SKU_001"))
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryElectronics, CategoryClothing, CategoryFood,
		CategoryFurniture, CategoryTools, CategoryOther} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("Gadgets").Valid())
	assert.False(t, Category("electronics").Valid()) // case sensitive
	assert.False(t, Category("").Valid())
}

func TestIsLowStock(t *testing.T) {
	p := Product{Quantity: 5, LowStockThreshold: 10}
	assert.True(t, p.IsLowStock())
	p.Quantity = 10
	assert.True(t, p.IsLowStock()) // batas termasuk
	p.Quantity = 11
	assert.False(t, p.IsLowStock())
}

func TestProductValidate(t *testing.T) {
	valid := func() Product {
		return Product{
			Name:              "Kursi Kayu",
			SKU:               "FRN-001",
			Category:          CategoryFurniture,
			PriceCents:        150_00,
			Quantity:          10,
			LowStockThreshold: 5,
		}
	}

	p := valid()
	require.NoError(t, p.Validate())

	p = valid()
	p.Name = ""
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.Name = strings.Repeat("x", 101)
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.SKU = "frn 001"
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.Category = "Misc"
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.PriceCents = -1
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.Quantity = -1
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)

	p = valid()
	p.LowStockThreshold = -1
	assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
}
