package request

import (
	"strings"

	"metalurgica_xpto/internal/domain/entities"
)

// DraftRequest is the full quote form as the front end posts it. Field names
// match the form's JSON payload so a draft round-trips byte-for-byte.
type DraftRequest struct {
	Batches          []BatchRequest            `json:"chapas"`
	Client           ClientRequest             `json:"cliente"`
	Notes            NotesRequest              `json:"observacoes"`
	Products         []ProductReferenceRequest `json:"produtosCadastrados"`
	OrderProcesses   []OrderProcessRequest     `json:"processosPedido"`
	SequentialNumber int                       `json:"numeroSequencial"`

	// Links are filled by the submission flow, not the draft form.
	PDFLink  string `json:"linkPdf"`
	MemoLink string `json:"linkMemoria"`
}

type ClientRequest struct {
	Name    string `json:"nome"`
	Contact string `json:"responsavel"`
	Doc     string `json:"cpf"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
}

type NotesRequest struct {
	ProjectCode string `json:"projeto"`
	Description string `json:"descricao"`
	Deadline    string `json:"prazo"`
	Payment     string `json:"pagamento"`
	Extra       string `json:"adicional"`
}

type BatchRequest struct {
	Material   string         `json:"material"`
	Length     float64        `json:"comprimento"`
	Width      float64        `json:"largura"`
	Thickness  float64        `json:"espessura"`
	IsAssembly bool           `json:"isConjunto"`
	AsmCode    string         `json:"codigoConjunto"`
	AsmDesc    string         `json:"descricaoConjunto"`
	AsmQty     float64        `json:"quantidadeConjunto"`
	Pieces     []PieceRequest `json:"pecas"`
}

type PieceRequest struct {
	Description      string                     `json:"descricao"`
	Code             string                     `json:"codigo"`
	Length           float64                    `json:"comprimento"`
	Width            float64                    `json:"largura"`
	LotQty           float64                    `json:"numPecasLote"`
	PiecesPerSheet   float64                    `json:"numPecasChapa"`
	CutTime          float64                    `json:"tempoCorte"`
	BendCount        float64                    `json:"numDobras"`
	BendTime         float64                    `json:"tempoDobra"`
	BendSetup        float64                    `json:"setupDobra"`
	ExtraHours       float64                    `json:"tempoTotal"`
	Additionals      []AdditionalProcessRequest `json:"adicionais"`
	AdditionalsTotal float64                    `json:"adicionaisTotal"`
}

type AdditionalProcessRequest struct {
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}

type ProductReferenceRequest struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	TaxCode     string  `json:"ncm"`
	UnitPrice   float64 `json:"precoUnitario"`
	Unit        string  `json:"unidade"`
	Quantity    float64 `json:"quantidade"`
}

type OrderProcessRequest struct {
	Description   string  `json:"descricao"`
	HourlyRate    float64 `json:"valorHora"`
	Hours         float64 `json:"horas"`
	MaterialPrice float64 `json:"valorMat"`
	MaterialQty   float64 `json:"qtdMat"`
	FixedPrice    float64 `json:"valorFixo"`
}

// ToPayload converts the request into the domain draft payload.
func (r DraftRequest) ToPayload() entities.DraftPayload {
	payload := entities.DraftPayload{
		Client: entities.Client{
			Name:    strings.TrimSpace(r.Client.Name),
			Contact: strings.TrimSpace(r.Client.Contact),
			Doc:     r.Client.Doc,
			Address: r.Client.Address,
			Phone:   r.Client.Phone,
			Email:   r.Client.Email,
		},
		Notes: entities.Notes{
			ProjectCode: strings.TrimSpace(r.Notes.ProjectCode),
			Description: strings.TrimSpace(r.Notes.Description),
			Deadline:    r.Notes.Deadline,
			Payment:     r.Notes.Payment,
			Extra:       r.Notes.Extra,
		},
		SequentialNumber: r.SequentialNumber,
	}

	for _, b := range r.Batches {
		batch := entities.MaterialBatch{
			Material:   entities.MaterialKind(strings.ToUpper(strings.TrimSpace(b.Material))),
			Length:     b.Length,
			Width:      b.Width,
			Thickness:  b.Thickness,
			IsAssembly: b.IsAssembly,
			AsmCode:    b.AsmCode,
			AsmDesc:    b.AsmDesc,
			AsmQty:     b.AsmQty,
		}
		for _, p := range b.Pieces {
			piece := entities.Piece{
				Description:      p.Description,
				Code:             p.Code,
				Length:           p.Length,
				Width:            p.Width,
				LotQty:           p.LotQty,
				PiecesPerSheet:   p.PiecesPerSheet,
				CutTime:          p.CutTime,
				BendCount:        p.BendCount,
				BendTime:         p.BendTime,
				BendSetup:        p.BendSetup,
				ExtraHours:       p.ExtraHours,
				AdditionalsTotal: p.AdditionalsTotal,
			}
			for _, a := range p.Additionals {
				piece.Additionals = append(piece.Additionals, entities.AdditionalProcess{Name: a.Name, Price: a.Price})
			}
			batch.Pieces = append(batch.Pieces, piece)
		}
		payload.Batches = append(payload.Batches, batch)
	}

	for _, p := range r.Products {
		payload.Products = append(payload.Products, entities.ProductReference{
			Code:        p.Code,
			Description: p.Description,
			TaxCode:     p.TaxCode,
			UnitPrice:   p.UnitPrice,
			Unit:        p.Unit,
			Quantity:    p.Quantity,
		})
	}

	for _, p := range r.OrderProcesses {
		payload.OrderProcesses = append(payload.OrderProcesses, entities.OrderProcess{
			Description:   p.Description,
			HourlyRate:    p.HourlyRate,
			Hours:         p.Hours,
			MaterialPrice: p.MaterialPrice,
			MaterialQty:   p.MaterialQty,
			FixedPrice:    p.FixedPrice,
		})
	}

	return payload
}
