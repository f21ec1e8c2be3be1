package response

import "metalurgica_xpto/internal/domain/entities"

type ProductResponse struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	TaxCode     string  `json:"ncm"`
	UnitPrice   float64 `json:"preco"`
	Unit        string  `json:"unidade"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Code:        p.Code,
		Description: p.Description,
		TaxCode:     p.TaxCode,
		UnitPrice:   p.UnitPrice,
		Unit:        p.Unit,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
