package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"microtask-backend/internal/gateway"
	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("price must be greater than zero")

type PaymentService struct {
	db      *gorm.DB
	gateway gateway.Driver
}

func NewPaymentService(db *gorm.DB, gw gateway.Driver) *PaymentService {
	return &PaymentService{db: db, gateway: gw}
}

// CreateIntent opens a gateway payment intent for price USD and returns the
// client secret. The gateway is not called for non-positive prices.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidAmount
	}

	// Round rather than truncate: 19.99*100 is 1998.999... in float64.
	secret, err := s.gateway.CreateIntent(ctx, int64(math.Round(price*100)), "usd")
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

// RecordPayment appends a ledger row and credits the user's balance by the
// purchased coins, both inside one transaction.
func (s *PaymentService) RecordPayment(payment *models.Payment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		result := tx.Model(&models.User{}).
			Where("email = ?", payment.Email).
			Update("balance", gorm.Expr("balance + ?", payment.Coins))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// FindPaymentsByEmail returns a user's payment ledger, newest first.
func (s *PaymentService) FindPaymentsByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("email = ?", email).
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
