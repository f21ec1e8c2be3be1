package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrInvalidProjectCode   = errors.New("invalid project code")
	ErrInvalidClientName    = errors.New("invalid client name")
	ErrInvalidDescription   = errors.New("invalid description")
)

// ProjectStats is the read-only dashboard projection.
type ProjectStats struct {
	Quotes    int `json:"orcamentos"`
	Orders    int `json:"pedidos"`
	Drafts    int `json:"rascunhos"`
	Products  int `json:"produtos"`
	Finalized int `json:"finalizados"`
}

// IProjectUseCase exposes the quote/order record operations.
//
//   - SaveDraft persists the editable form without allocating identifiers.
//   - SubmitQuote allocates codes + sequential number and marks Enviado.
//   - SaveAsOrder registers a project directly as a converted order.
//   - Load round-trips the form payload, rebuilding a minimal one from the
//     structured columns when the stored JSON is unusable.

type IProjectUseCase interface {
	SaveDraft(ctx context.Context, payload entities.DraftPayload) (entities.Project, error)
	SubmitQuote(ctx context.Context, payload entities.DraftPayload, pdfLink, memoLink string) (entities.Project, error)
	SaveAsOrder(ctx context.Context, payload entities.DraftPayload) (entities.Project, error)
	Load(ctx context.Context, code string) (entities.Project, entities.DraftPayload, error)
	List(ctx context.Context) ([]entities.Project, error)
	Delete(ctx context.Context, code string) (wasDraft bool, err error)
	Stats(ctx context.Context) (ProjectStats, error)
}

type ProjectUseCase struct {
	repo       interfaces.IProjectRepository
	catalog    interfaces.IProductRepository
	oracle     interfaces.IPricingOracle
	folders    interfaces.IFolderLifecycle
	aggregator IAggregatorUseCase
	allocator  IAllocatorUseCase
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	catalog interfaces.IProductRepository,
	oracle interfaces.IPricingOracle,
	folders interfaces.IFolderLifecycle,
	aggregator IAggregatorUseCase,
	allocator IAllocatorUseCase,
) *ProjectUseCase {
	return &ProjectUseCase{
		repo:       repo,
		catalog:    catalog,
		oracle:     oracle,
		folders:    folders,
		aggregator: aggregator,
		allocator:  allocator,
	}
}

func (u *ProjectUseCase) SaveDraft(ctx context.Context, payload entities.DraftPayload) (entities.Project, error) {
	if err := validatePayload(payload); err != nil {
		return entities.Project{}, err
	}

	existing, err := u.repo.GetByCode(ctx, payload.Notes.ProjectCode)
	if err != nil {
		return entities.Project{}, err
	}

	p, err := u.buildProject(ctx, payload, existing)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ProjectCode == "" {
		p.QuoteStatus = entities.QuoteStatusRascunho
	}

	log.Printf("[project][usecase] saving draft code=%s client=%q", p.ProjectCode, p.Client)
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) SubmitQuote(ctx context.Context, payload entities.DraftPayload, pdfLink, memoLink string) (entities.Project, error) {
	if err := validatePayload(payload); err != nil {
		return entities.Project{}, err
	}

	existing, err := u.repo.GetByCode(ctx, payload.Notes.ProjectCode)
	if err != nil {
		return entities.Project{}, err
	}
	payload = carryAllocatedIdentifiers(payload, existing)

	payload, err = u.allocator.AssignCatalogCodes(ctx, payload)
	if err != nil {
		return entities.Project{}, err
	}
	if payload.SequentialNumber == 0 {
		n, err := u.allocator.NextOrderNumber(ctx)
		if err != nil {
			return entities.Project{}, err
		}
		payload.SequentialNumber = n
	}

	p, err := u.buildProject(ctx, payload, existing)
	if err != nil {
		return entities.Project{}, err
	}
	if p.QuoteStatus == "" || p.QuoteStatus == entities.QuoteStatusRascunho {
		p.QuoteStatus = entities.QuoteStatusEnviado
	}
	if pdfLink != "" {
		p.PDFLink = pdfLink
	}
	if memoLink != "" {
		p.MemoLink = memoLink
	}

	// Folder creation never blocks the submission.
	if _, err := u.folders.EnsureProjectFolder(ctx, p.ProjectCode, p.Client, p.Description, p.Date, false); err != nil {
		log.Printf("[project][usecase] folder creation failed code=%s err=%v", p.ProjectCode, err)
	}

	log.Printf("[project][usecase] submitting quote code=%s number=%d total=%.2f", p.ProjectCode, payload.SequentialNumber, p.TotalValue)
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) SaveAsOrder(ctx context.Context, payload entities.DraftPayload) (entities.Project, error) {
	if err := validatePayload(payload); err != nil {
		return entities.Project{}, err
	}

	existing, err := u.repo.GetByCode(ctx, payload.Notes.ProjectCode)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ProjectCode != "" {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	payload, err = u.allocator.AssignCatalogCodes(ctx, payload)
	if err != nil {
		return entities.Project{}, err
	}
	if payload.SequentialNumber == 0 {
		n, err := u.allocator.NextOrderNumber(ctx)
		if err != nil {
			return entities.Project{}, err
		}
		payload.SequentialNumber = n
	}

	p, err := u.buildProject(ctx, payload, entities.Project{})
	if err != nil {
		return entities.Project{}, err
	}
	p.QuoteStatus = entities.QuoteStatusConvertido
	p.ProductionStatus = initialStageFor(p.ProcessesSummary)

	if _, err := u.folders.EnsureProjectFolder(ctx, p.ProjectCode, p.Client, p.Description, p.Date, true); err != nil {
		log.Printf("[project][usecase] folder creation failed code=%s err=%v", p.ProjectCode, err)
	}

	log.Printf("[project][usecase] saving as order code=%s stage=%q", p.ProjectCode, p.ProductionStatus)
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) Load(ctx context.Context, code string) (entities.Project, entities.DraftPayload, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Project{}, entities.DraftPayload{}, ErrInvalidProjectCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Project{}, entities.DraftPayload{}, err
	}
	if p.ProjectCode == "" {
		return entities.Project{}, entities.DraftPayload{}, ErrProjectNotFound
	}

	var payload entities.DraftPayload
	if len(p.Payload) > 0 {
		if err := json.Unmarshal(p.Payload, &payload); err != nil {
			log.Printf("[project][usecase] malformed payload code=%s err=%v, rebuilding from columns", code, err)
			payload = entities.DraftPayload{}
		}
	}
	if payload.Notes.ProjectCode == "" {
		payload = payloadFromColumns(p, payload)
	}
	return p, payload, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) Delete(ctx context.Context, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, ErrInvalidProjectCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if p.ProjectCode == "" {
		return false, ErrProjectNotFound
	}

	if err := u.repo.Delete(ctx, code); err != nil {
		return false, err
	}
	log.Printf("[project][usecase] deleted code=%s status=%q", code, p.QuoteStatus)
	return p.QuoteStatus == entities.QuoteStatusRascunho, nil
}

func (u *ProjectUseCase) Stats(ctx context.Context) (ProjectStats, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return ProjectStats{}, err
	}
	products, err := u.catalog.List(ctx)
	if err != nil {
		return ProjectStats{}, err
	}

	stats := ProjectStats{Products: len(products)}
	for _, p := range projects {
		switch p.QuoteStatus {
		case entities.QuoteStatusRascunho:
			stats.Drafts++
		case entities.QuoteStatusEnviado:
			stats.Quotes++
		case entities.QuoteStatusConvertido:
			if p.ProductionStatus == entities.StageFinalizado {
				stats.Finalized++
			} else {
				stats.Orders++
			}
		}
	}
	return stats, nil
}

// buildProject regenerates the structured row from the payload. Statuses,
// links and the notes column are copied from the existing row: only the
// lifecycle writes statuses, and re-saving a form must not erase them.
func (u *ProjectUseCase) buildProject(ctx context.Context, payload entities.DraftPayload, existing entities.Project) (entities.Project, error) {
	_, total, err := u.aggregator.Aggregate(ctx, payload)
	if err != nil {
		return entities.Project{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.Project{}, err
	}

	p := entities.Project{
		Client:           payload.Client.Name,
		Description:      payload.Notes.Description,
		ClientContact:    payload.Client.Contact,
		ProjectCode:      payload.Notes.ProjectCode,
		TotalValue:       total,
		Date:             time.Now().Format("02/01/2006"),
		ProcessesSummary: u.processesSummary(ctx, payload.Batches),
		Deadline:         payload.Notes.Deadline,
		Payload:          raw,
		SavedAt:          time.Now().UTC(),
	}
	if existing.ProjectCode != "" {
		p.QuoteStatus = existing.QuoteStatus
		p.ProductionStatus = existing.ProductionStatus
		p.Notes = existing.Notes
		p.PDFLink = existing.PDFLink
		p.MemoLink = existing.MemoLink
		if existing.Date != "" {
			p.Date = existing.Date
		}
	}
	return p, nil
}

// processesSummary renders "Corte: X.XXh, Dobra: Y.YYh, Adicionais: Z.ZZh"
// from the workbook hour totals, one read per material, counted once per
// piece. Zero buckets are omitted.
func (u *ProjectUseCase) processesSummary(ctx context.Context, batches []entities.MaterialBatch) string {
	hours := make(map[entities.MaterialKind]interfaces.ProcessHours)

	var cut, bend, extra float64
	for _, batch := range batches {
		if !batch.Material.Known() {
			continue
		}
		h, ok := hours[batch.Material]
		if !ok {
			var err error
			h, err = u.oracle.ProcessHours(ctx, batch.Material)
			if err != nil {
				log.Printf("[project][usecase] process hours failed material=%s err=%v", batch.Material, err)
			}
			hours[batch.Material] = h
		}
		for _, piece := range batch.Pieces {
			cut += h.Cut
			bend += h.Bend
			extra += piece.ExtraHours
		}
	}

	var parts []string
	if cut > 0 {
		parts = append(parts, fmt.Sprintf("Corte: %.2fh", cut))
	}
	if bend > 0 {
		parts = append(parts, fmt.Sprintf("Dobra: %.2fh", bend))
	}
	if extra > 0 {
		parts = append(parts, fmt.Sprintf("Adicionais: %.2fh", extra))
	}
	return strings.Join(parts, ", ")
}

func validatePayload(payload entities.DraftPayload) error {
	if strings.TrimSpace(payload.Notes.ProjectCode) == "" {
		return ErrInvalidProjectCode
	}
	if strings.TrimSpace(payload.Client.Name) == "" {
		return ErrInvalidClientName
	}
	if strings.TrimSpace(payload.Notes.Description) == "" {
		return ErrInvalidDescription
	}
	return nil
}

// carryAllocatedIdentifiers copies identifiers a previous submission already
// allocated into the incoming form when it lacks them: the stored sequential
// number, and PRD codes matched back onto pieces and product references by
// description. Without it, re-submitting an unchanged draft would burn a
// fresh number and duplicate catalog entries on every submission.
func carryAllocatedIdentifiers(payload entities.DraftPayload, existing entities.Project) entities.DraftPayload {
	if existing.ProjectCode == "" || len(existing.Payload) == 0 {
		return payload
	}
	var stored entities.DraftPayload
	if err := json.Unmarshal(existing.Payload, &stored); err != nil {
		log.Printf("[project][usecase] stored payload unreadable code=%s err=%v", existing.ProjectCode, err)
		return payload
	}

	if payload.SequentialNumber == 0 {
		payload.SequentialNumber = stored.SequentialNumber
	}

	pieceCodes := make(map[string]string)
	for _, batch := range stored.Batches {
		for _, piece := range batch.Pieces {
			if entities.HasCatalogCode(piece.Code) {
				pieceCodes[string(batch.Material)+"|"+piece.Description] = piece.Code
			}
		}
	}
	productCodes := make(map[string]string)
	for _, ref := range stored.Products {
		if entities.HasCatalogCode(ref.Code) {
			productCodes[ref.Description] = ref.Code
		}
	}
	if len(pieceCodes) == 0 && len(productCodes) == 0 {
		return payload
	}

	payload.Batches = cloneBatches(payload.Batches)
	for bi := range payload.Batches {
		for pi := range payload.Batches[bi].Pieces {
			piece := &payload.Batches[bi].Pieces[pi]
			if piece.Code != "" {
				continue
			}
			if code, ok := pieceCodes[string(payload.Batches[bi].Material)+"|"+piece.Description]; ok {
				piece.Code = code
			}
		}
	}
	payload.Products = append([]entities.ProductReference(nil), payload.Products...)
	for i := range payload.Products {
		if payload.Products[i].Code != "" {
			continue
		}
		if code, ok := productCodes[payload.Products[i].Description]; ok {
			payload.Products[i].Code = code
		}
	}
	return payload
}

func cloneBatches(batches []entities.MaterialBatch) []entities.MaterialBatch {
	out := make([]entities.MaterialBatch, len(batches))
	copy(out, batches)
	for i := range out {
		pieces := make([]entities.Piece, len(out[i].Pieces))
		copy(pieces, out[i].Pieces)
		out[i].Pieces = pieces
	}
	return out
}

// payloadFromColumns rebuilds a minimal editable form from the structured
// columns when the stored JSON is missing or unusable.
func payloadFromColumns(p entities.Project, base entities.DraftPayload) entities.DraftPayload {
	base.Client.Name = p.Client
	base.Client.Contact = p.ClientContact
	base.Notes.ProjectCode = p.ProjectCode
	base.Notes.Description = p.Description
	base.Notes.Deadline = p.Deadline
	return base
}
