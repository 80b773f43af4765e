package payment

import (
	"context"

	"github.com/Om136/rentals/entities"
	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreatePayment(ctx context.Context, payment *entities.Payment) error
		GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
		UpdatePaymentStatus(ctx context.Context, orderID string, status string) error
		GetPaymentsByUser(ctx context.Context, userID uint) ([]*entities.Payment, error)
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}

func (r *paymentRepository) GetPaymentsByUser(ctx context.Context, userID uint) ([]*entities.Payment, error) {
	var payments []*entities.Payment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
