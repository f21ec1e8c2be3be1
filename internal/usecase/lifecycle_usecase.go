package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrProjectNotConverted = errors.New("project is not a converted order")
	ErrInvalidBoardBucket  = errors.New("unknown board bucket")
	ErrMissingClientOrCode = errors.New("missing client or project code")
)

// ILifecycleUseCase drives the two status tracks of a project.
//
// Quote track: Rascunho → Enviado → {Convertido em Pedido | Expirado/Perdido}.
// Production track: empty → Preparação → Corte → Dobra → Adicionais →
// Envio/Coleta → Finalizado, entered through ConvertToOrder or a first board
// move and advanced only through UpdateBoardStatus.

type ILifecycleUseCase interface {
	MarkExpired(ctx context.Context, code string) (entities.Project, error)
	ConvertToOrder(ctx context.Context, code string) (entities.Project, error)
	UpdateBoardStatus(ctx context.Context, client, code string, newStatus entities.ProductionStatus) (entities.Project, error)
	Board(ctx context.Context) (entities.Board, error)
	SaveBoardOrder(ctx context.Context, bucket string, keys []string) error
	StageTimes(ctx context.Context, client, code string) ([]entities.StageLog, error)
}

type LifecycleUseCase struct {
	repo      interfaces.IProjectRepository
	folders   interfaces.IFolderLifecycle
	stageLogs interfaces.IStageLogRepository
	ordering  interfaces.IBoardOrderRepository
	now       func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	repo interfaces.IProjectRepository,
	folders interfaces.IFolderLifecycle,
	stageLogs interfaces.IStageLogRepository,
	ordering interfaces.IBoardOrderRepository,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		repo:      repo,
		folders:   folders,
		stageLogs: stageLogs,
		ordering:  ordering,
		now:       time.Now,
	}
}

// MarkExpired closes a sent quote that was lost or timed out.
func (u *LifecycleUseCase) MarkExpired(ctx context.Context, code string) (entities.Project, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Project{}, ErrInvalidProjectCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ProjectCode == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if p.QuoteStatus != entities.QuoteStatusEnviado {
		return entities.Project{}, ErrInvalidTransition
	}

	log.Printf("[lifecycle][usecase] marking expired code=%s", code)
	return u.repo.UpdateQuoteStatus(ctx, code, entities.QuoteStatusExpirado)
}

// ConvertToOrder accepts a sent quote: quote status flips to Convertido em
// Pedido, the backing folder is renamed COT→PED and the project lands on the
// first production stage its processes summary actually lists. Folder rename
// and stage timing are best-effort and never block the conversion.
func (u *LifecycleUseCase) ConvertToOrder(ctx context.Context, code string) (entities.Project, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Project{}, ErrInvalidProjectCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ProjectCode == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if p.QuoteStatus != entities.QuoteStatusEnviado {
		return entities.Project{}, ErrInvalidTransition
	}

	if _, err := u.repo.UpdateQuoteStatus(ctx, code, entities.QuoteStatusConvertido); err != nil {
		return entities.Project{}, err
	}
	if ok, err := u.folders.PromoteToOrder(ctx, code); err != nil {
		log.Printf("[lifecycle][usecase] folder promotion failed code=%s err=%v", code, err)
	} else if !ok {
		log.Printf("[lifecycle][usecase] no folder to promote code=%s", code)
	}

	stage := initialStageFor(p.ProcessesSummary)
	if err := u.stageLogs.OpenStage(ctx, p.Client, code, stage, u.now()); err != nil {
		log.Printf("[lifecycle][usecase] stage open failed code=%s stage=%q err=%v", code, stage, err)
	}

	log.Printf("[lifecycle][usecase] quote converted code=%s stage=%q", code, stage)
	return u.repo.UpdateProductionStatus(ctx, code, stage)
}

// UpdateBoardStatus moves a card to a new production stage. Moving a quote
// into its first stage converts it: quote status flips to Convertido em
// Pedido and the backing folder is renamed COT→PED. Folder rename and stage
// timing are best-effort and never block the status change.
func (u *LifecycleUseCase) UpdateBoardStatus(ctx context.Context, client, code string, newStatus entities.ProductionStatus) (entities.Project, error) {
	client = strings.TrimSpace(client)
	code = strings.TrimSpace(code)
	if client == "" || code == "" {
		return entities.Project{}, ErrMissingClientOrCode
	}
	if !validStage(newStatus) {
		return entities.Project{}, ErrInvalidStatus
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ProjectCode == "" || p.Client != client {
		return entities.Project{}, ErrProjectNotFound
	}

	previous := p.ProductionStatus

	if previous == entities.StageNone && p.QuoteStatus != entities.QuoteStatusConvertido {
		if _, err := u.repo.UpdateQuoteStatus(ctx, code, entities.QuoteStatusConvertido); err != nil {
			return entities.Project{}, err
		}
		if ok, err := u.folders.PromoteToOrder(ctx, code); err != nil {
			log.Printf("[lifecycle][usecase] folder promotion failed code=%s err=%v", code, err)
		} else if !ok {
			log.Printf("[lifecycle][usecase] no folder to promote code=%s", code)
		}
	}

	now := u.now()
	if previous != entities.StageNone && previous != newStatus {
		if err := u.stageLogs.CloseStage(ctx, client, code, previous, now); err != nil {
			log.Printf("[lifecycle][usecase] stage close failed code=%s stage=%q err=%v", code, previous, err)
		}
	}
	if newStatus != entities.StageFinalizado && newStatus != previous {
		if err := u.stageLogs.OpenStage(ctx, client, code, newStatus, now); err != nil {
			log.Printf("[lifecycle][usecase] stage open failed code=%s stage=%q err=%v", code, newStatus, err)
		}
	}

	log.Printf("[lifecycle][usecase] board status updated code=%s from=%q to=%q", code, previous, newStatus)
	return u.repo.UpdateProductionStatus(ctx, code, newStatus)
}

// Board projects the project rows into the kanban view: draft quotes in the
// quotes bucket, active orders in their stage bucket, finished orders
// nowhere. The persisted per-bucket ordering is applied on top; cards it does
// not know keep their row order at the end.
func (u *LifecycleUseCase) Board(ctx context.Context) (entities.Board, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	board := entities.NewBoard()
	for _, p := range projects {
		if p.ProductionStatus == entities.StageNone {
			if p.QuoteStatus == entities.QuoteStatusRascunho {
				board[entities.BoardBucketQuotes] = append(board[entities.BoardBucketQuotes], entities.BoardCard{
					Client:      p.Client,
					ProjectCode: p.ProjectCode,
					Description: p.Description,
					Deadline:    p.Deadline,
				})
			}
			continue
		}
		if p.ProductionStatus == entities.StageFinalizado {
			continue
		}

		bucket := string(p.ProductionStatus)
		card := entities.BoardCard{
			Client:        p.Client,
			ProjectCode:   p.ProjectCode,
			Description:   p.Description,
			Deadline:      p.Deadline,
			Notes:         p.Notes,
			EstimatedTime: estimatedTime(p.ProcessesSummary, p.ProductionStatus),
			RealTime:      u.realTime(ctx, p),
		}
		board[bucket] = append(board[bucket], card)
	}

	orders, err := u.ordering.GetAll(ctx)
	if err != nil {
		log.Printf("[lifecycle][usecase] board ordering unavailable err=%v", err)
		return board, nil
	}
	for bucket, keys := range orders {
		if cards, ok := board[bucket]; ok {
			board[bucket] = reorderCards(cards, keys)
		}
	}
	return board, nil
}

func (u *LifecycleUseCase) SaveBoardOrder(ctx context.Context, bucket string, keys []string) error {
	if !validBucket(bucket) {
		return ErrInvalidBoardBucket
	}
	return u.ordering.Save(ctx, bucket, keys)
}

func (u *LifecycleUseCase) StageTimes(ctx context.Context, client, code string) ([]entities.StageLog, error) {
	client = strings.TrimSpace(client)
	code = strings.TrimSpace(code)
	if client == "" || code == "" {
		return nil, ErrMissingClientOrCode
	}
	return u.stageLogs.ListByProject(ctx, client, code)
}

// realTime reports the closed duration of the project's current stage,
// "" while the stage is still running or unlogged.
func (u *LifecycleUseCase) realTime(ctx context.Context, p entities.Project) string {
	logs, err := u.stageLogs.ListByProject(ctx, p.Client, p.ProjectCode)
	if err != nil {
		log.Printf("[lifecycle][usecase] stage logs unavailable code=%s err=%v", p.ProjectCode, err)
		return ""
	}
	for _, l := range logs {
		if l.Stage == p.ProductionStatus && !l.Open && l.DurationMinutes > 0 {
			return fmt.Sprintf("%.2fh", l.DurationMinutes/60)
		}
	}
	return ""
}

var initialStagePatterns = []struct {
	re    *regexp.Regexp
	stage entities.ProductionStatus
}{
	{regexp.MustCompile(`(?i)prepara|mp|cad|cam`), entities.StagePreparacao},
	{regexp.MustCompile(`(?i)corte`), entities.StageCorte},
	{regexp.MustCompile(`(?i)dobra`), entities.StageDobra},
	{regexp.MustCompile(`(?i)adicio`), entities.StageAdicionais},
	{regexp.MustCompile(`(?i)envio|coleta`), entities.StageEnvio},
}

// initialStageFor picks the first production stage whose process the summary
// actually lists; preparation is the default when nothing matches.
func initialStageFor(summary string) entities.ProductionStatus {
	for _, p := range initialStagePatterns {
		if p.re.MatchString(summary) {
			return p.stage
		}
	}
	return entities.StagePreparacao
}

var estimatePatterns = map[entities.ProductionStatus]*regexp.Regexp{
	entities.StageCorte:      regexp.MustCompile(`(?i)corte\s*:?\s*([\d.,]+h?)`),
	entities.StageDobra:      regexp.MustCompile(`(?i)dobra\s*:?\s*([\d.,]+h?)`),
	entities.StageAdicionais: regexp.MustCompile(`(?i)adici\w*\s*:?\s*([\d.,]+h?)`),
}

// estimatedTime pulls the stage's hour figure out of the processes summary.
func estimatedTime(summary string, stage entities.ProductionStatus) string {
	re, ok := estimatePatterns[stage]
	if !ok {
		return ""
	}
	m := re.FindStringSubmatch(summary)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// reorderCards applies the saved key order; cards absent from it keep their
// relative order at the end.
func reorderCards(cards []entities.BoardCard, keys []string) []entities.BoardCard {
	byKey := make(map[string]int, len(cards))
	for i, c := range cards {
		byKey[c.Key()] = i
	}

	taken := make(map[int]bool, len(cards))
	out := make([]entities.BoardCard, 0, len(cards))
	for _, k := range keys {
		if i, ok := byKey[k]; ok && !taken[i] {
			out = append(out, cards[i])
			taken[i] = true
		}
	}
	for i, c := range cards {
		if !taken[i] {
			out = append(out, c)
		}
	}
	return out
}

func validStage(s entities.ProductionStatus) bool {
	if s == entities.StageFinalizado {
		return true
	}
	for _, stage := range entities.ProductionStages {
		if s == stage {
			return true
		}
	}
	return false
}

func validBucket(bucket string) bool {
	for _, b := range entities.BoardBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}
