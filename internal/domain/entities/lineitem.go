package entities

// PricedLineItem is one billed line of a quote: a piece, a consolidated
// assembly, or a catalog product pass-through.
type PricedLineItem struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	Quantity    float64 `json:"quantidade"`
	UnitPrice   float64 `json:"precoUnitario"`
	Total       float64 `json:"precoTotal"`
}

// OrderProcess is a flat order-level charge, priced as
// hourly×hours + material×qty + fixed.
type OrderProcess struct {
	Description   string  `json:"descricao"`
	HourlyRate    float64 `json:"valorHora"`
	Hours         float64 `json:"horas"`
	MaterialPrice float64 `json:"valorMat"`
	MaterialQty   float64 `json:"qtdMat"`
	FixedPrice    float64 `json:"valorFixo"`
}

// Total prices one order-level process.
func (p OrderProcess) Total() float64 {
	return p.HourlyRate*p.Hours + p.MaterialPrice*p.MaterialQty + p.FixedPrice
}
