package request

// ProductUpdateRequest edits one catalog entry. The code comes from the URL.
type ProductUpdateRequest struct {
	Description string  `json:"descricao"`
	TaxCode     string  `json:"ncm"`
	UnitPrice   float64 `json:"preco"`
	Unit        string  `json:"unidade"`
}
