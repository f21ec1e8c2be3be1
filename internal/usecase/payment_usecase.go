package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrInvalidPaymentAmount       = errors.New("invalid payment amount")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase registers down payments ("sinal") against converted orders.
// A project still in quote status cannot take a payment.

type IPaymentUseCase interface {
	RegisterDownPayment(ctx context.Context, projectCode string, amount float64, mpPayload json.RawMessage) (entities.DownPayment, error)
	ListByProject(ctx context.Context, projectCode string) ([]entities.DownPayment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	projects interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, projects interfaces.IProjectRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, projects: projects, gateway: gateway}
}

func (u *PaymentUseCase) RegisterDownPayment(ctx context.Context, projectCode string, amount float64, mpPayload json.RawMessage) (entities.DownPayment, error) {
	log.Printf("[payment][usecase] down payment start code=%q amount=%.2f payload_len=%d", projectCode, amount, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()

	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		return entities.DownPayment{}, ErrInvalidProjectCode
	}
	if amount <= 0 {
		return entities.DownPayment{}, ErrInvalidPaymentAmount
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload code=%s", projectCode)
			return entities.DownPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	p, err := u.projects.GetByCode(ctx, projectCode)
	if err != nil {
		return entities.DownPayment{}, err
	}
	if p.ProjectCode == "" {
		return entities.DownPayment{}, ErrProjectNotFound
	}
	if p.QuoteStatus != entities.QuoteStatusConvertido {
		log.Printf("[payment][usecase] project not converted code=%s status=%q", projectCode, p.QuoteStatus)
		return entities.DownPayment{}, ErrProjectNotConverted
	}

	// Mercado Pago reconciles events through external_reference; the amount
	// sent to the gateway is always the one validated here.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = projectCode
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Sinal pedido %s", projectCode)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed code=%s err=%v", projectCode, err)
		if isGatewayUnauthorized(err) {
			return entities.DownPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.DownPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.DownPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success code=%s provider_payment_id=%s provider_status=%s", projectCode, providerID, providerStatus)

	if providerID == "" {
		providerID = uuid.NewString()
	}

	status := entities.PaymentStatusAprovado
	if providerStatus != "approved" {
		status = entities.PaymentStatusPendente
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed code=%s err=%v", projectCode, err)
	}

	created, err := u.repo.Create(ctx, entities.DownPayment{
		ID:           providerID,
		ProjectCode:  projectCode,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	})
	if err != nil {
		log.Printf("[payment][usecase] repository create failed code=%s payment_id=%s err=%v", projectCode, providerID, err)
		return entities.DownPayment{}, err
	}
	log.Printf("[payment][usecase] down payment success code=%s payment_id=%s status=%s", projectCode, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) ListByProject(ctx context.Context, projectCode string) ([]entities.DownPayment, error) {
	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		return nil, ErrInvalidProjectCode
	}
	return u.repo.ListByProject(ctx, projectCode)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
