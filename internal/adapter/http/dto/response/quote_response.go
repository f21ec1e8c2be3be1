package response

import "metalurgica_xpto/internal/domain/entities"

// LineItemResponse is one billed line of the quote preview.
type LineItemResponse struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	Quantity    float64 `json:"quantidade"`
	UnitPrice   float64 `json:"precoUnitario"`
	Total       float64 `json:"precoTotal"`
}

// QuotePreviewResponse is the real-time pricing of a form before submission.
type QuotePreviewResponse struct {
	Items []LineItemResponse `json:"detalhamento"`
	Total float64            `json:"total"`
}

func FromLineItems(items []entities.PricedLineItem, total float64) QuotePreviewResponse {
	out := QuotePreviewResponse{
		Items: make([]LineItemResponse, 0, len(items)),
		Total: total,
	}
	for _, it := range items {
		out.Items = append(out.Items, LineItemResponse{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

// DailyIndexResponse carries the next free project-index letter.
type DailyIndexResponse struct {
	Date     string `json:"data"`
	Initials string `json:"iniciais"`
	Index    string `json:"indice"`
}
