package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateIntent  = "payment intent created successfully"
	MessageSuccessConfirmPay    = "payment confirmed successfully"
	MessageSuccessGetPayHistory = "payment history retrieved successfully"

	MessageFailedCreateIntent  = "failed to create payment intent"
	MessageFailedConfirmPay    = "failed to confirm payment"
	MessageFailedGetPayHistory = "failed to fetch payment history"

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrPaymentGateway       = errors.New("payment gateway error")
)

type (
	CreatePaymentIntentRequest struct {
		Amount     float64 `json:"amount" validate:"required,gt=0"`
		Currency   string  `json:"currency" validate:"omitempty,iso4217"`
		ItemID     uint    `json:"itemId" validate:"required"`
		RentalDays int     `json:"rentalDays" validate:"omitempty,gte=0"`
	}

	CreatePaymentIntentResponse struct {
		ClientSecret    string `json:"clientSecret"`
		PaymentIntentID string `json:"paymentIntentId"`
	}

	ConfirmPaymentRequest struct {
		PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	}

	TransactionDetails struct {
		ItemID     uint    `json:"itemId"`
		Amount     float64 `json:"amount"`
		Currency   string  `json:"currency"`
		RentalDays int     `json:"rentalDays,omitempty"`
	}

	ConfirmPaymentResponse struct {
		Success            bool               `json:"success"`
		Message            string             `json:"message"`
		TransactionDetails TransactionDetails `json:"transactionDetails"`
	}

	PaymentHistoryEntry struct {
		ID         uint      `json:"id"`
		ItemID     uint      `json:"item_id"`
		OrderID    string    `json:"order_id"`
		Amount     float64   `json:"amount"`
		Currency   string    `json:"currency"`
		RentalDays int       `json:"rental_days"`
		Status     string    `json:"status"`
		Date       time.Time `json:"date"`
	}
)
