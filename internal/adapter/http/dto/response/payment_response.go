package response

import (
	"time"

	"metalurgica_xpto/internal/domain/entities"
)

type DownPaymentResponse struct {
	ID          string    `json:"id"`
	ProjectCode string    `json:"projeto"`
	Amount      float64   `json:"valor"`
	Date        time.Time `json:"data"`
	Status      string    `json:"status"`
}

func FromDownPayment(p entities.DownPayment) DownPaymentResponse {
	return DownPaymentResponse{
		ID:          p.ID,
		ProjectCode: p.ProjectCode,
		Amount:      p.Amount,
		Date:        p.Date,
		Status:      string(p.Status),
	}
}

func FromDownPayments(payments []entities.DownPayment) []DownPaymentResponse {
	out := make([]DownPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDownPayment(p))
	}
	return out
}
