package entities

// BoardBucketQuotes is the board column that holds draft quotes; the other
// columns are the production stages.
const BoardBucketQuotes = "Processo de Orçamento"

// BoardBuckets lists every board column in display order.
var BoardBuckets = []string{
	BoardBucketQuotes,
	string(StagePreparacao),
	string(StageCorte),
	string(StageDobra),
	string(StageAdicionais),
	string(StageEnvio),
}

// BoardCard is one project on the board. Key() is the identity the
// persisted per-bucket ordering refers to.
type BoardCard struct {
	Client        string `json:"cliente"`
	ProjectCode   string `json:"projeto"`
	Description   string `json:"descricao"`
	Deadline      string `json:"prazo"`
	Notes         string `json:"observacoes,omitempty"`
	EstimatedTime string `json:"tempoEstimado,omitempty"`
	RealTime      string `json:"tempoReal,omitempty"`
}

func (c BoardCard) Key() string {
	return c.Client + "|" + c.ProjectCode
}

// Board is the derived kanban view: status bucket → ordered cards. It is
// recomputed from project rows plus the optional persisted ordering and is
// never a second source of truth.
type Board map[string][]BoardCard

// NewBoard returns a board with every bucket present and empty.
func NewBoard() Board {
	b := make(Board, len(BoardBuckets))
	for _, name := range BoardBuckets {
		b[name] = []BoardCard{}
	}
	return b
}
