package request

// BoardStatusRequest moves a card to a new production stage.
type BoardStatusRequest struct {
	Client      string `json:"cliente" binding:"required"`
	ProjectCode string `json:"projeto" binding:"required"`
	NewStatus   string `json:"novoStatus" binding:"required"`
}

// BoardOrderRequest persists the manual card ordering of one bucket.
type BoardOrderRequest struct {
	Bucket string   `json:"coluna" binding:"required"`
	Keys   []string `json:"chaves"`
}
