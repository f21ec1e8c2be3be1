package request

import "encoding/json"

// DownPaymentRequest registers a down payment against a converted order. The
// project code comes from the URL; MPPayload is forwarded to the gateway.
type DownPaymentRequest struct {
	Amount    float64         `json:"valor" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
