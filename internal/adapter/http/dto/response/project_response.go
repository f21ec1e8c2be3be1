package response

import (
	"encoding/json"
	"time"

	"metalurgica_xpto/internal/domain/entities"
)

// ProjectResponse mirrors the 14-column project row.
type ProjectResponse struct {
	Client           string    `json:"cliente"`
	Description      string    `json:"descricao"`
	ClientContact    string    `json:"responsavel_cliente"`
	ProjectCode      string    `json:"projeto"`
	TotalValue       float64   `json:"valor_total"`
	Date             string    `json:"data"`
	ProcessesSummary string    `json:"processos"`
	PDFLink          string    `json:"link_pdf"`
	MemoLink         string    `json:"link_memoria"`
	QuoteStatus      string    `json:"status_orcamento"`
	ProductionStatus string    `json:"status_pedido"`
	Deadline         string    `json:"prazo"`
	Notes            string    `json:"observacoes"`
	SavedAt          time.Time `json:"data_salvo"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		Client:           p.Client,
		Description:      p.Description,
		ClientContact:    p.ClientContact,
		ProjectCode:      p.ProjectCode,
		TotalValue:       p.TotalValue,
		Date:             p.Date,
		ProcessesSummary: p.ProcessesSummary,
		PDFLink:          p.PDFLink,
		MemoLink:         p.MemoLink,
		QuoteStatus:      string(p.QuoteStatus),
		ProductionStatus: string(p.ProductionStatus),
		Deadline:         p.Deadline,
		Notes:            p.Notes,
		SavedAt:          p.SavedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// ProjectDetailResponse adds the round-tripped form payload to the row.
type ProjectDetailResponse struct {
	ProjectResponse
	Payload json.RawMessage `json:"dados"`
}

func FromProjectWithPayload(p entities.Project, payload entities.DraftPayload) ProjectDetailResponse {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = nil
	}
	return ProjectDetailResponse{
		ProjectResponse: FromProject(p),
		Payload:         raw,
	}
}

// DeleteResponse confirms a deletion and whether the record was still a draft.
type DeleteResponse struct {
	Deleted     bool   `json:"deleted"`
	WasDraft    bool   `json:"era_rascunho"`
	ProjectCode string `json:"projeto"`
}
