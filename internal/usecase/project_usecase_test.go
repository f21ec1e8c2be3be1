package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"
	mock_interfaces "metalurgica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type projectFixture struct {
	repo     *mock_interfaces.MockIProjectRepository
	catalog  *mock_interfaces.MockIProductRepository
	oracle   *mock_interfaces.MockIPricingOracle
	folders  *mock_interfaces.MockIFolderLifecycle
	counters *mock_interfaces.MockICounterStore
	usecase  *ProjectUseCase
}

func newProjectFixture(ctrl *gomock.Controller) projectFixture {
	f := projectFixture{
		repo:     mock_interfaces.NewMockIProjectRepository(ctrl),
		catalog:  mock_interfaces.NewMockIProductRepository(ctrl),
		oracle:   mock_interfaces.NewMockIPricingOracle(ctrl),
		folders:  mock_interfaces.NewMockIFolderLifecycle(ctrl),
		counters: mock_interfaces.NewMockICounterStore(ctrl),
	}
	aggregator := NewAggregatorUseCase(f.oracle)
	allocator := NewAllocatorUseCase(f.counters, f.repo, f.catalog)
	f.usecase = NewProjectUseCase(f.repo, f.catalog, f.oracle, f.folders, aggregator, allocator)
	return f
}

func minimalPayload() entities.DraftPayload {
	return entities.DraftPayload{
		Client: entities.Client{Name: "ACME", Contact: "João"},
		Notes:  entities.Notes{ProjectCode: "260202aBR", Description: "Suporte de bomba", Deadline: "15 dias"},
	}
}

func TestProjectUseCase_SaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects payload without project code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		payload := minimalPayload()
		payload.Notes.ProjectCode = " "
		if _, err := f.usecase.SaveDraft(ctx, payload); !errors.Is(err, ErrInvalidProjectCode) {
			t.Fatalf("expected ErrInvalidProjectCode, got %v", err)
		}
	})

	t.Run("rejects payload without client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		payload := minimalPayload()
		payload.Client.Name = ""
		if _, err := f.usecase.SaveDraft(ctx, payload); !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("new project starts as Rascunho", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteStatus != entities.QuoteStatusRascunho {
					t.Fatalf("expected Rascunho, got %q", p.QuoteStatus)
				}
				if p.ProjectCode != "260202aBR" || p.Client != "ACME" {
					t.Fatalf("unexpected row: %+v", p)
				}
				if len(p.Payload) == 0 {
					t.Fatal("payload JSON must be stored")
				}
				return p, nil
			})

		if _, err := f.usecase.SaveDraft(ctx, minimalPayload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-saving preserves the protected columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		existing := entities.Project{
			ProjectCode:      "260202aBR",
			QuoteStatus:      entities.QuoteStatusEnviado,
			ProductionStatus: entities.StageCorte,
			Notes:            "ligação feita dia 3",
			PDFLink:          "https://files/cot.pdf",
			MemoLink:         "https://files/memoria.xlsx",
			Date:             "01/01/2026",
		}

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(existing, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteStatus != existing.QuoteStatus || p.ProductionStatus != existing.ProductionStatus {
					t.Fatalf("statuses must survive a re-save: %+v", p)
				}
				if p.Notes != existing.Notes || p.PDFLink != existing.PDFLink || p.MemoLink != existing.MemoLink {
					t.Fatalf("protected columns were overwritten: %+v", p)
				}
				if p.Date != "01/01/2026" {
					t.Fatalf("original date must be kept, got %q", p.Date)
				}
				return p, nil
			})

		if _, err := f.usecase.SaveDraft(ctx, minimalPayload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_SubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates a sequential number and marks Enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.counters.EXPECT().Next(gomock.Any(), "numero_orcamento", 1463).Return(1464, nil)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), "260202aBR", "ACME", "Suporte de bomba", gomock.Any(), false).Return("260202aBR COT ACME - Suporte de bomba", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteStatus != entities.QuoteStatusEnviado {
					t.Fatalf("expected Enviado, got %q", p.QuoteStatus)
				}
				if p.PDFLink != "https://files/cot.pdf" {
					t.Fatalf("pdf link not set: %+v", p)
				}
				var payload entities.DraftPayload
				if err := json.Unmarshal(p.Payload, &payload); err != nil {
					t.Fatalf("stored payload unreadable: %v", err)
				}
				if payload.SequentialNumber != 1464 {
					t.Fatalf("expected sequential 1464, got %d", payload.SequentialNumber)
				}
				return p, nil
			})

		if _, err := f.usecase.SubmitQuote(ctx, minimalPayload(), "https://files/cot.pdf", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps an already assigned sequential number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return("", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil })

		payload := minimalPayload()
		payload.SequentialNumber = 1500
		if _, err := f.usecase.SubmitQuote(ctx, payload, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-submitting reuses the identifiers allocated before", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := minimalPayload()
		stored.SequentialNumber = 1464
		stored.Batches = []entities.MaterialBatch{{
			Material: entities.MaterialAluminio,
			Pieces:   []entities.Piece{{Description: "Tampa", Code: "PRD00042", LotQty: 2}},
		}}
		raw, _ := json.Marshal(stored)

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{
			ProjectCode: "260202aBR",
			QuoteStatus: entities.QuoteStatusEnviado,
			Payload:     raw,
		}, nil)
		f.oracle.EXPECT().Price(gomock.Any(), gomock.Any(), gomock.Any()).Return(10.0, nil).AnyTimes()
		f.oracle.EXPECT().ProcessHours(gomock.Any(), gomock.Any()).Return(interfaces.ProcessHours{}, nil).AnyTimes()
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return("", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				var payload entities.DraftPayload
				if err := json.Unmarshal(p.Payload, &payload); err != nil {
					t.Fatalf("stored payload unreadable: %v", err)
				}
				if payload.SequentialNumber != 1464 {
					t.Fatalf("sequential number must survive a re-submission, got %d", payload.SequentialNumber)
				}
				if payload.Batches[0].Pieces[0].Code != "PRD00042" {
					t.Fatalf("piece must keep its PRD code, got %q", payload.Batches[0].Pieces[0].Code)
				}
				return p, nil
			})

		// The incoming form carries neither the number nor the PRD code:
		// no counter increment and no catalog write may happen.
		payload := minimalPayload()
		payload.Batches = []entities.MaterialBatch{{
			Material: entities.MaterialAluminio,
			Pieces:   []entities.Piece{{Description: "Tampa", LotQty: 2}},
		}}
		if _, err := f.usecase.SubmitQuote(ctx, payload, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("folder failure does not block the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return("", errors.New("s3 down"))
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil })

		payload := minimalPayload()
		payload.SequentialNumber = 1500
		if _, err := f.usecase.SubmitQuote(ctx, payload, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_SaveAsOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses an existing project code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{ProjectCode: "260202aBR"}, nil)

		if _, err := f.usecase.SaveAsOrder(ctx, minimalPayload()); !errors.Is(err, ErrProjectAlreadyExists) {
			t.Fatalf("expected ErrProjectAlreadyExists, got %v", err)
		}
	})

	t.Run("initial stage follows the processes the pieces require", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.counters.EXPECT().Next(gomock.Any(), "numero_orcamento", 1463).Return(1471, nil)
		f.oracle.EXPECT().Price(gomock.Any(), gomock.Any(), gomock.Any()).Return(10.0, nil).AnyTimes()
		f.oracle.EXPECT().ProcessHours(gomock.Any(), entities.MaterialAluminio).Return(interfaces.ProcessHours{Cut: 1.5}, nil).AnyTimes()
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).Return("", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ProductionStatus != entities.StageCorte {
					t.Fatalf("expected corte stage, got %q", p.ProductionStatus)
				}
				return p, nil
			})

		payload := minimalPayload()
		payload.Batches = []entities.MaterialBatch{{
			Material: entities.MaterialAluminio,
			Pieces:   []entities.Piece{{Description: "Tampa", Code: "PRD00042", LotQty: 2}},
		}}
		if _, err := f.usecase.SaveAsOrder(ctx, payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("registers directly as a converted order in preparation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{}, nil)
		f.counters.EXPECT().Next(gomock.Any(), "numero_orcamento", 1463).Return(1470, nil)
		f.folders.EXPECT().EnsureProjectFolder(gomock.Any(), "260202aBR", "ACME", "Suporte de bomba", gomock.Any(), true).Return("260202aBR PED ACME - Suporte de bomba", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteStatus != entities.QuoteStatusConvertido {
					t.Fatalf("expected Convertido, got %q", p.QuoteStatus)
				}
				if p.ProductionStatus != entities.StagePreparacao {
					t.Fatalf("expected preparation stage, got %q", p.ProductionStatus)
				}
				return p, nil
			})

		if _, err := f.usecase.SaveAsOrder(ctx, minimalPayload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "nope").Return(entities.Project{}, nil)

		if _, _, err := f.usecase.Load(ctx, "nope"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("round-trips the stored form payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := minimalPayload()
		stored.Batches = []entities.MaterialBatch{{Material: entities.MaterialAluminio, Pieces: []entities.Piece{{Description: "Tampa", LotQty: 2}}}}
		raw, _ := json.Marshal(stored)

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{ProjectCode: "260202aBR", Payload: raw}, nil)

		_, payload, err := f.usecase.Load(ctx, "260202aBR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.Client.Name != "ACME" || len(payload.Batches) != 1 {
			t.Fatalf("payload did not round-trip: %+v", payload)
		}
	})

	t.Run("rebuilds a minimal form when the stored JSON is unusable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{
			ProjectCode:   "260202aBR",
			Client:        "ACME",
			ClientContact: "João",
			Description:   "Suporte de bomba",
			Deadline:      "15 dias",
			Payload:       json.RawMessage("{broken"),
		}, nil)

		_, payload, err := f.usecase.Load(ctx, "260202aBR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.Notes.ProjectCode != "260202aBR" || payload.Client.Name != "ACME" {
			t.Fatalf("column fallback missing: %+v", payload)
		}
		if payload.Notes.Description != "Suporte de bomba" || payload.Notes.Deadline != "15 dias" {
			t.Fatalf("column fallback incomplete: %+v", payload)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "nope").Return(entities.Project{}, nil)

		if _, err := f.usecase.Delete(ctx, "nope"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("reports whether the deleted project was a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newProjectFixture(ctrl)
		f.repo.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{ProjectCode: "260202aBR", QuoteStatus: entities.QuoteStatusRascunho}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "260202aBR").Return(nil)

		wasDraft, err := f.usecase.Delete(ctx, "260202aBR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !wasDraft {
			t.Fatal("expected wasDraft true")
		}
	})
}

func TestProjectUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProjectFixture(ctrl)
	f.repo.EXPECT().List(gomock.Any()).Return([]entities.Project{
		{ProjectCode: "a", QuoteStatus: entities.QuoteStatusRascunho},
		{ProjectCode: "b", QuoteStatus: entities.QuoteStatusEnviado},
		{ProjectCode: "c", QuoteStatus: entities.QuoteStatusConvertido, ProductionStatus: entities.StageCorte},
		{ProjectCode: "d", QuoteStatus: entities.QuoteStatusConvertido, ProductionStatus: entities.StageFinalizado},
		{ProjectCode: "e", QuoteStatus: entities.QuoteStatusExpirado},
	}, nil)
	f.catalog.EXPECT().List(gomock.Any()).Return([]entities.Product{{Code: "PRD00001"}, {Code: "PRD00002"}}, nil)

	stats, err := f.usecase.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ProjectStats{Quotes: 1, Orders: 1, Drafts: 1, Products: 2, Finalized: 1}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}
