package entities

import (
	"encoding/json"
	"time"
)

// QuoteStatus is the commercial lifecycle of a project.
//
// Rascunho → Enviado → {Convertido em Pedido | Expirado/Perdido}

type QuoteStatus string

const (
	QuoteStatusRascunho   QuoteStatus = "Rascunho"
	QuoteStatusEnviado    QuoteStatus = "Enviado"
	QuoteStatusConvertido QuoteStatus = "Convertido em Pedido"
	QuoteStatusExpirado   QuoteStatus = "Expirado/Perdido"
)

// ProductionStatus is the shop-floor stage of a converted order. Empty until
// the quote is converted.

type ProductionStatus string

const (
	StageNone       ProductionStatus = ""
	StagePreparacao ProductionStatus = "Processo de Preparação MP / CAD / CAM"
	StageCorte      ProductionStatus = "Processo de Corte"
	StageDobra      ProductionStatus = "Processo de Dobra"
	StageAdicionais ProductionStatus = "Processos Adicionais"
	StageEnvio      ProductionStatus = "Envio / Coleta"
	StageFinalizado ProductionStatus = "Finalizado"
)

// ProductionStages lists the shop-floor stages in execution order,
// excluding the terminal Finalizado.
var ProductionStages = []ProductionStatus{
	StagePreparacao,
	StageCorte,
	StageDobra,
	StageAdicionais,
	StageEnvio,
}

// Client is the customer block carried inside a draft.
type Client struct {
	Name    string `json:"nome"`
	Contact string `json:"responsavel"`
	Doc     string `json:"cpf,omitempty"`
	Address string `json:"endereco,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Notes holds the free-text fields of the quote form. ProjectCode lives here
// because the code is typed alongside deadline and description.
type Notes struct {
	ProjectCode string `json:"projeto"`
	Description string `json:"descricao"`
	Deadline    string `json:"prazo"`
	Payment     string `json:"pagamento,omitempty"`
	Extra       string `json:"adicional,omitempty"`
}

// DraftPayload is the full editable quote form, round-tripped as JSON in the
// project row so a quote can be reopened and edited after submission.
type DraftPayload struct {
	Batches          []MaterialBatch    `json:"chapas"`
	Client           Client             `json:"cliente"`
	Notes            Notes              `json:"observacoes"`
	Products         []ProductReference `json:"produtosCadastrados"`
	OrderProcesses   []OrderProcess     `json:"processosPedido,omitempty"`
	SequentialNumber int                `json:"numeroSequencial,omitempty"`
}

// Project is the aggregate root: one row per project code.
//
// Storage model (DynamoDB):
//   - PK: project_code
//
// The structured columns are a denormalized cache of payload fields,
// regenerated on every write and never edited independently.
type Project struct {
	Client           string           `json:"cliente"`
	Description      string           `json:"descricao"`
	ClientContact    string           `json:"responsavel_cliente"`
	ProjectCode      string           `json:"projeto"`
	TotalValue       float64          `json:"valor_total"`
	Date             string           `json:"data"`
	ProcessesSummary string           `json:"processos"`
	PDFLink          string           `json:"link_pdf"`
	MemoLink         string           `json:"link_memoria"`
	QuoteStatus      QuoteStatus      `json:"status_orcamento"`
	ProductionStatus ProductionStatus `json:"status_pedido"`
	Deadline         string           `json:"prazo"`
	Notes            string           `json:"observacoes"`
	Payload          json.RawMessage  `json:"json_dados,omitempty"`
	SavedAt          time.Time        `json:"data_salvo,omitempty"`
}

// StageLog is one stage-time audit entry, keyed by client|project|stage.
// Duration is filled on exit together with the end timestamp.
type StageLog struct {
	Client          string           `json:"cliente"`
	ProjectCode     string           `json:"projeto"`
	Stage           ProductionStatus `json:"processo"`
	StartedAt       time.Time        `json:"inicio"`
	EndedAt         time.Time        `json:"fim,omitempty"`
	DurationMinutes float64          `json:"duracao_minutos,omitempty"`
	Open            bool             `json:"em_execucao"`
}
