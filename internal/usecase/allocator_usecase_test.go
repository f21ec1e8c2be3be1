package usecase

import (
	"context"
	"errors"
	"testing"

	"metalurgica_xpto/internal/domain/entities"
	mock_interfaces "metalurgica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAllocatorUseCase_NextOrderNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counters := mock_interfaces.NewMockICounterStore(ctrl)
	counters.EXPECT().Next(gomock.Any(), "numero_orcamento", 1463).Return(1464, nil)

	u := NewAllocatorUseCase(counters, mock_interfaces.NewMockIProjectRepository(ctrl), mock_interfaces.NewMockIProductRepository(ctrl))
	n, err := u.NextOrderNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1464 {
		t.Fatalf("expected 1464, got %d", n)
	}
}

func TestAllocatorUseCase_NextDailyIndex(t *testing.T) {
	ctx := context.Background()

	newAllocator := func(ctrl *gomock.Controller, projects *mock_interfaces.MockIProjectRepository) *AllocatorUseCase {
		return NewAllocatorUseCase(mock_interfaces.NewMockICounterStore(ctrl), projects, mock_interfaces.NewMockIProductRepository(ctrl))
	}

	t.Run("rejects malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u := newAllocator(ctrl, mock_interfaces.NewMockIProjectRepository(ctrl))
		if _, err := u.NextDailyIndex(ctx, "2602", "BR"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("rejects empty initials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u := newAllocator(ctrl, mock_interfaces.NewMockIProjectRepository(ctrl))
		if _, err := u.NextDailyIndex(ctx, "260202", "  "); !errors.Is(err, ErrInvalidInitials) {
			t.Fatalf("expected ErrInvalidInitials, got %v", err)
		}
	})

	t.Run("returns the first free letter for the date and initials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ProjectCode: "260202aBR"},
			{ProjectCode: "260202BBR"}, // uppercase letters count too
			{ProjectCode: "260202aXX"}, // other initials
			{ProjectCode: "250101cBR"}, // other date
		}, nil)

		u := newAllocator(ctrl, projects)
		idx, err := u.NextDailyIndex(ctx, "260202", "BR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx != "c" {
			t.Fatalf("expected c, got %q", idx)
		}
	})

	t.Run("fails loudly when all 26 letters are taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var taken []entities.Project
		for c := byte('a'); c <= 'z'; c++ {
			taken = append(taken, entities.Project{ProjectCode: "260202" + string(c) + "BR"})
		}
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		projects.EXPECT().List(gomock.Any()).Return(taken, nil)

		u := newAllocator(ctrl, projects)
		if _, err := u.NextDailyIndex(ctx, "260202", "BR"); !errors.Is(err, ErrDailyIndexExhausted) {
			t.Fatalf("expected ErrDailyIndexExhausted, got %v", err)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		projects.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		u := newAllocator(ctrl, projects)
		if _, err := u.NextDailyIndex(ctx, "260202", "BR"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAllocatorUseCase_AssignCatalogCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns max+1 codes and registers each item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := mock_interfaces.NewMockIProductRepository(ctrl)
		catalog.EXPECT().List(gomock.Any()).Return([]entities.Product{
			{Code: "PRD00007"},
			{Code: "PRD00009"},
		}, nil)
		catalog.EXPECT().Upsert(gomock.Any(), entities.Product{Code: "PRD00010", Description: "Suporte"}).Return(nil)
		catalog.EXPECT().Upsert(gomock.Any(), entities.Product{Code: "PRD00011", Description: "Parafuso", TaxCode: "7318.15.00", UnitPrice: 2, Unit: "un"}).Return(nil)

		u := NewAllocatorUseCase(mock_interfaces.NewMockICounterStore(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl), catalog)
		payload := entities.DraftPayload{
			Batches: []entities.MaterialBatch{{
				Material: entities.MaterialAcoCarbono,
				Pieces: []entities.Piece{
					{Description: "Tampa", Code: "PRD00005"},
					{Description: "Suporte"},
				},
			}},
			Products: []entities.ProductReference{
				{Description: "Parafuso", TaxCode: "7318.15.00", UnitPrice: 2, Unit: "un"},
			},
		}

		out, err := u.AssignCatalogCodes(ctx, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pieces := out.Batches[0].Pieces
		if pieces[0].Code != "PRD00005" {
			t.Fatalf("existing code must be kept, got %q", pieces[0].Code)
		}
		if pieces[1].Code != "PRD00010" {
			t.Fatalf("expected PRD00010, got %q", pieces[1].Code)
		}
		if out.Products[0].Code != "PRD00011" {
			t.Fatalf("expected PRD00011, got %q", out.Products[0].Code)
		}
		if payload.Batches[0].Pieces[1].Code != "" || payload.Products[0].Code != "" {
			t.Fatal("input payload must not be mutated")
		}
	})

	t.Run("leaves a fully coded payload untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := mock_interfaces.NewMockIProductRepository(ctrl)

		u := NewAllocatorUseCase(mock_interfaces.NewMockICounterStore(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl), catalog)
		out, err := u.AssignCatalogCodes(ctx, entities.DraftPayload{
			Products: []entities.ProductReference{{Code: "PRD00001", Description: "Parafuso"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Products[0].Code != "PRD00001" {
			t.Fatalf("unexpected code %q", out.Products[0].Code)
		}
	})

	t.Run("fails when the code space is exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := mock_interfaces.NewMockIProductRepository(ctrl)
		catalog.EXPECT().List(gomock.Any()).Return([]entities.Product{{Code: "PRD99999"}}, nil)

		u := NewAllocatorUseCase(mock_interfaces.NewMockICounterStore(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl), catalog)
		_, err := u.AssignCatalogCodes(ctx, entities.DraftPayload{
			Products: []entities.ProductReference{{Description: "Um a mais"}},
		})
		if !errors.Is(err, ErrCatalogCodeExhausted) {
			t.Fatalf("expected ErrCatalogCodeExhausted, got %v", err)
		}
	})

	t.Run("stops when the catalog write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := mock_interfaces.NewMockIProductRepository(ctrl)
		catalog.EXPECT().List(gomock.Any()).Return(nil, nil)
		catalog.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		u := NewAllocatorUseCase(mock_interfaces.NewMockICounterStore(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl), catalog)
		_, err := u.AssignCatalogCodes(ctx, entities.DraftPayload{
			Products: []entities.ProductReference{{Description: "Suporte"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
