package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryFurniture   Category = "Furniture"
	CategoryTools       Category = "Tools"
	CategoryOther       Category = "Other"
)

var validCategories = map[Category]bool{
	CategoryElectronics: true,
	CategoryClothing:    true,
	CategoryFood:        true,
	CategoryFurniture:   true,
	CategoryTools:       true,
	CategoryOther:       true,
}

func (c Category) Valid() bool { return validCategories[c] }

// SKU: huruf besar, angka, dan strip.
var skuRe = regexp.MustCompile(`^[A-Z0-9-]+$`)

// NormalizeSKU trim + uppercase sebelum validasi/simpan.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func ValidSKU(sku string) bool { return sku != "" && skuRe.MatchString(sku) }

type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku"`
	Category          Category  `json:"category"`
	PriceCents        int64     `json:"price_cents"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	ImageURL          string    `json:"image_url,omitempty"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (p *Product) IsLowStock() bool { return p.Quantity <= p.LowStockThreshold }

// Validate dipanggil sebelum insert/update. SKU diasumsikan sudah dinormalisasi.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" || len(p.Name) > 100 {
		return fmt.Errorf("%w: name wajib diisi, maksimal 100 karakter", ErrInvalidProduct)
	}
	if !ValidSKU(p.SKU) {
		return fmt.Errorf("%w: sku hanya boleh huruf besar, angka, dan strip", ErrInvalidProduct)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: kategori %q tidak dikenal", ErrInvalidProduct, p.Category)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: harga tidak boleh negatif", ErrInvalidProduct)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity tidak boleh negatif", ErrInvalidProduct)
	}
	if p.LowStockThreshold < 0 {
		return fmt.Errorf("%w: low stock threshold tidak boleh negatif", ErrInvalidProduct)
	}
	return nil
}
