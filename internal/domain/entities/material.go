package entities

// MaterialKind identifies one of the sheet metals the calculation workbook
// knows how to price. Batches referencing any other material are skipped by
// the aggregator rather than rejected.

type MaterialKind string

const (
	MaterialAcoCarbono MaterialKind = "AÇO CARBONO"
	MaterialAluminio   MaterialKind = "ALUMÍNIO"
	MaterialInox200300 MaterialKind = "INOX 200 OU 300"
	MaterialInox400    MaterialKind = "INOX 400"
	MaterialLatao      MaterialKind = "LATÃO"
	MaterialCobre      MaterialKind = "COBRE"
)

// MaterialKinds lists the known materials in workbook row order. The order is
// significant: the oracle derives each material's row block from it.
var MaterialKinds = []MaterialKind{
	MaterialAcoCarbono,
	MaterialAluminio,
	MaterialInox200300,
	MaterialInox400,
	MaterialLatao,
	MaterialCobre,
}

func (m MaterialKind) Known() bool {
	for _, k := range MaterialKinds {
		if k == m {
			return true
		}
	}
	return false
}

// AdditionalProcess is a priced extra applied per unit of a piece
// (e.g. painting, galvanizing).
type AdditionalProcess struct {
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}

// Piece is one part cut from a batch. Price fields are written only by the
// aggregator and the catalog code only by the allocator.
type Piece struct {
	Description    string              `json:"descricao"`
	Code           string              `json:"codigo"`
	Length         float64             `json:"comprimento"`
	Width          float64             `json:"largura"`
	LotQty         float64             `json:"numPecasLote"`
	PiecesPerSheet float64             `json:"numPecasChapa"`
	CutTime        float64             `json:"tempoCorte"`
	BendCount      float64             `json:"numDobras"`
	BendTime       float64             `json:"tempoDobra"`
	BendSetup      float64             `json:"setupDobra"`
	ExtraHours     float64             `json:"tempoTotal"`
	Additionals    []AdditionalProcess `json:"adicionais,omitempty"`
	// AdditionalsTotal is the per-unit sum of Additionals, carried
	// denormalized in the draft the same way the form keeps it.
	AdditionalsTotal float64 `json:"adicionaisTotal"`
}

// MaterialBatch ("chapa") is one sheet of raw material with 1..N pieces.
// When IsAssembly is set the batch is billed as a single consolidated line.
type MaterialBatch struct {
	Material   MaterialKind `json:"material"`
	Length     float64      `json:"comprimento"`
	Width      float64      `json:"largura"`
	Thickness  float64      `json:"espessura"`
	IsAssembly bool         `json:"isConjunto"`
	AsmCode    string       `json:"codigoConjunto,omitempty"`
	AsmDesc    string       `json:"descricaoConjunto,omitempty"`
	AsmQty     float64      `json:"quantidadeConjunto,omitempty"`
	Pieces     []Piece      `json:"pecas"`
}
