package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DownPayment is a payment ("sinal") registered against a converted order.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//
// MPPayloadRaw keeps the original provider body (JSON) for traceability;
// MPPayload is an optional parsed representation for debugging.
type DownPayment struct {
	ID          string        `json:"id"`
	ProjectCode string        `json:"projeto"`
	Amount      float64       `json:"valor"`
	Date        time.Time     `json:"data"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
