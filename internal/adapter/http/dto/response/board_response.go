package response

import (
	"time"

	"metalurgica_xpto/internal/domain/entities"
)

// BoardCardResponse is one kanban card.
type BoardCardResponse struct {
	Client        string `json:"cliente"`
	ProjectCode   string `json:"projeto"`
	Description   string `json:"descricao"`
	Deadline      string `json:"prazo"`
	Notes         string `json:"observacoes,omitempty"`
	EstimatedTime string `json:"tempoEstimado,omitempty"`
	RealTime      string `json:"tempoReal,omitempty"`
}

// BoardResponse is bucket name → ordered cards, every bucket always present.
type BoardResponse map[string][]BoardCardResponse

func FromBoard(b entities.Board) BoardResponse {
	out := make(BoardResponse, len(b))
	for bucket, cards := range b {
		list := make([]BoardCardResponse, 0, len(cards))
		for _, c := range cards {
			list = append(list, BoardCardResponse{
				Client:        c.Client,
				ProjectCode:   c.ProjectCode,
				Description:   c.Description,
				Deadline:      c.Deadline,
				Notes:         c.Notes,
				EstimatedTime: c.EstimatedTime,
				RealTime:      c.RealTime,
			})
		}
		out[bucket] = list
	}
	return out
}

// StageLogResponse is one stage-time audit entry.
type StageLogResponse struct {
	Client          string    `json:"cliente"`
	ProjectCode     string    `json:"projeto"`
	Stage           string    `json:"processo"`
	StartedAt       time.Time `json:"inicio"`
	EndedAt         time.Time `json:"fim,omitempty"`
	DurationMinutes float64   `json:"duracao_minutos"`
	Open            bool      `json:"em_execucao"`
}

func FromStageLogs(logs []entities.StageLog) []StageLogResponse {
	out := make([]StageLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, StageLogResponse{
			Client:          l.Client,
			ProjectCode:     l.ProjectCode,
			Stage:           string(l.Stage),
			StartedAt:       l.StartedAt,
			EndedAt:         l.EndedAt,
			DurationMinutes: l.DurationMinutes,
			Open:            l.Open,
		})
	}
	return out
}
