package payment

import (
	"context"
	"errors"
	"math"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest, userID uint) (*domain.CreatePaymentIntentResponse, error)
		ConfirmPayment(ctx context.Context, req domain.ConfirmPaymentRequest, userID uint) (*domain.ConfirmPaymentResponse, error)
		GetPaymentHistory(ctx context.Context, userID uint) ([]*domain.PaymentHistoryEntry, error)
	}

	paymentService struct {
		paymentRepository PaymentRepository
		gateway           PaymentGateway
	}
)

func NewPaymentService(paymentRepository PaymentRepository, gateway PaymentGateway) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		gateway:           gateway,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest, userID uint) (*domain.CreatePaymentIntentResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	orderID := uuid.New().String()
	grossAmount := int64(math.Round(req.Amount))

	token, err := s.gateway.CreateTransaction(orderID, grossAmount)
	if err != nil {
		return nil, domain.ErrPaymentGateway
	}

	payment := &entities.Payment{
		UserID:     userID,
		ItemID:     req.ItemID,
		OrderID:    orderID,
		Amount:     req.Amount,
		Currency:   currency,
		RentalDays: req.RentalDays,
		Status:     "pending",
		SnapToken:  token,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &domain.CreatePaymentIntentResponse{
		ClientSecret:    token,
		PaymentIntentID: orderID,
	}, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, req domain.ConfirmPaymentRequest, userID uint) (*domain.ConfirmPaymentResponse, error) {
	payment, err := s.paymentRepository.GetPaymentByOrderID(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.UserID != userID {
		return nil, domain.ErrUserNotAllowed
	}

	status, err := s.gateway.GetTransactionStatus(payment.OrderID)
	if err != nil {
		return nil, domain.ErrPaymentGateway
	}

	switch status {
	case "capture", "settlement":
		if err := s.paymentRepository.UpdatePaymentStatus(ctx, payment.OrderID, "succeeded"); err != nil {
			return nil, err
		}
		return &domain.ConfirmPaymentResponse{
			Success: true,
			Message: domain.MessageSuccessConfirmPay,
			TransactionDetails: domain.TransactionDetails{
				ItemID:     payment.ItemID,
				Amount:     payment.Amount,
				Currency:   payment.Currency,
				RentalDays: payment.RentalDays,
			},
		}, nil
	case "deny", "cancel", "expire", "failure":
		if err := s.paymentRepository.UpdatePaymentStatus(ctx, payment.OrderID, "failed"); err != nil {
			return nil, err
		}
		return nil, domain.ErrPaymentNotSuccessful
	default:
		// pending, authorize and anything unrecognized stay pending.
		return nil, domain.ErrPaymentNotSuccessful
	}
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, userID uint) ([]*domain.PaymentHistoryEntry, error) {
	payments, err := s.paymentRepository.GetPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]*domain.PaymentHistoryEntry, 0, len(payments))
	for _, p := range payments {
		history = append(history, &domain.PaymentHistoryEntry{
			ID:         p.ID,
			ItemID:     p.ItemID,
			OrderID:    p.OrderID,
			Amount:     p.Amount,
			Currency:   p.Currency,
			RentalDays: p.RentalDays,
			Status:     p.Status,
			Date:       p.CreatedAt,
		})
	}
	return history, nil
}
