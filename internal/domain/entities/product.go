package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// CatalogCodePrefix prefixes every durable catalog identifier.
const CatalogCodePrefix = "PRD"

// Product is a durable catalog entry ("Relação de produtos"). Codes are
// globally unique and monotonically increasing in allocation order.
type Product struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	TaxCode     string  `json:"ncm"`
	UnitPrice   float64 `json:"preco"`
	Unit        string  `json:"unidade"`
}

// ProductReference is a catalog product attached to a quote with a requested
// quantity. Pricing is a pass-through of the stored unit price.
type ProductReference struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	TaxCode     string  `json:"ncm,omitempty"`
	UnitPrice   float64 `json:"precoUnitario"`
	Unit        string  `json:"unidade,omitempty"`
	Quantity    float64 `json:"quantidade"`
}

// HasCatalogCode reports whether code is a materialized PRD identifier.
func HasCatalogCode(code string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(code)), CatalogCodePrefix)
}

// FormatCatalogCode renders n as PRD00001-style.
func FormatCatalogCode(n int) string {
	return fmt.Sprintf("%s%05d", CatalogCodePrefix, n)
}

// ParseCatalogCode extracts the numeric part of a PRD code, 0 if malformed.
func ParseCatalogCode(code string) int {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !strings.HasPrefix(code, CatalogCodePrefix) {
		return 0
	}
	n, err := strconv.Atoi(code[len(CatalogCodePrefix):])
	if err != nil {
		return 0
	}
	return n
}
