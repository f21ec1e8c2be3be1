package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"metalurgica_xpto/internal/domain/entities"
	mock_interfaces "metalurgica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	repo     *mock_interfaces.MockIPaymentRepository
	projects *mock_interfaces.MockIProjectRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	usecase  *PaymentUseCase
}

func newPaymentFixture(ctrl *gomock.Controller) paymentFixture {
	f := paymentFixture{
		repo:     mock_interfaces.NewMockIPaymentRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.usecase = NewPaymentUseCase(f.repo, f.projects, f.gateway)
	return f
}

func convertedProject() entities.Project {
	return entities.Project{
		ProjectCode: "260202aBR",
		Client:      "ACME",
		QuoteStatus: entities.QuoteStatusConvertido,
	}
}

func TestPaymentUseCase_RegisterDownPayment(t *testing.T) {
	ctx := context.Background()
	validPayload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@acme.com"}}`)

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 0, validPayload); !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("rejects an unreadable gateway payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		f := newPaymentFixture(ctrl)
		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 100, json.RawMessage("{broken")); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("only converted orders take a down payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(entities.Project{ProjectCode: "260202aBR", QuoteStatus: entities.QuoteStatusEnviado}, nil)

		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 100, validPayload); !errors.Is(err, ErrProjectNotConverted) {
			t.Fatalf("expected ErrProjectNotConverted, got %v", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "nope").Return(entities.Project{}, nil)

		if _, err := f.usecase.RegisterDownPayment(ctx, "nope", 100, validPayload); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("enriches the payload and stores the approved payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(convertedProject(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload unreadable: %v", err)
				}
				if m["external_reference"] != "260202aBR" {
					t.Fatalf("external_reference not set: %v", m)
				}
				if m["transaction_amount"] != 500.0 {
					t.Fatalf("transaction_amount not forced: %v", m)
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, dp entities.DownPayment) (entities.DownPayment, error) {
				if dp.ID != "mp-123" || dp.ProjectCode != "260202aBR" || dp.Amount != 500 {
					t.Fatalf("unexpected payment: %+v", dp)
				}
				if dp.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected Aprovado, got %q", dp.Status)
				}
				return dp, nil
			})

		created, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 500, validPayload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-123" {
			t.Fatalf("unexpected id %q", created.ID)
		}
	})

	t.Run("non-approved provider status stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(convertedProject(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "in_process", json.RawMessage(`{"id":"mp-9"}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, dp entities.DownPayment) (entities.DownPayment, error) {
				if dp.Status != entities.PaymentStatusPendente {
					t.Fatalf("expected Pendente, got %q", dp.Status)
				}
				return dp, nil
			})

		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 100, validPayload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("maps gateway authentication failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(convertedProject(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 100, validPayload); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("maps gateway validation failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.projects.EXPECT().GetByCode(gomock.Any(), "260202aBR").Return(convertedProject(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		if _, err := f.usecase.RegisterDownPayment(ctx, "260202aBR", 100, validPayload); !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByProject(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a project code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		if _, err := f.usecase.ListByProject(ctx, "  "); !errors.Is(err, ErrInvalidProjectCode) {
			t.Fatalf("expected ErrInvalidProjectCode, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPaymentFixture(ctrl)
		f.repo.EXPECT().ListByProject(gomock.Any(), "260202aBR").Return([]entities.DownPayment{{ID: "mp-1"}}, nil)

		payments, err := f.usecase.ListByProject(ctx, "260202aBR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
	})
}
