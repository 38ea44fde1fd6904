package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"microtask-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// fakeGateway records intent calls instead of reaching a real provider.
type fakeGateway struct {
	calls    int
	amount   int64
	currency string
	secret   string
	err      error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.calls++
	f.amount = amount
	f.currency = currency
	return f.secret, f.err
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	db := setupTestDB(t)
	gw := &fakeGateway{secret: "pi_secret"}
	svc := NewPaymentService(db, gw)

	tests := []struct {
		name  string
		price float64
	}{
		{name: "zero price", price: 0},
		{name: "negative price", price: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateIntent(context.Background(), tt.price)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
	assert.Equal(t, 0, gw.calls, "gateway must not be called for invalid prices")
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{name: "exact cents", price: 9.99, want: 999},
		// 19.99*100 sits just below 1999 in float64; truncation loses a cent.
		{name: "price with float error", price: 19.99, want: 1999},
		{name: "whole dollars", price: 50, want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{secret: "pi_secret"}
			svc := NewPaymentService(db, gw)

			secret, err := svc.CreateIntent(context.Background(), tt.price)
			assert.NoError(t, err)
			assert.Equal(t, "pi_secret", secret)
			assert.Equal(t, 1, gw.calls)
			assert.Equal(t, tt.want, gw.amount)
			assert.Equal(t, "usd", gw.currency)
		})
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	db := setupTestDB(t)
	gw := &fakeGateway{err: errors.New("provider down")}
	svc := NewPaymentService(db, gw)

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPaymentAppendsAndCredits(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewPaymentService(db, &fakeGateway{})

	seedUser(t, users, "topup@example.com", models.RoleWorker, 10)

	payment := &models.Payment{
		Email:         "topup@example.com",
		TransactionID: "txn_1",
		Price:         9.99,
		Coins:         100,
	}
	assert.NoError(t, svc.RecordPayment(payment))

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Equal(t, int64(1), count)

	user, err := users.FindUserByEmail("topup@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 110.0, user.Balance, "balance credited by exactly coins")
}

func TestRecordPaymentUnknownUserRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, &fakeGateway{})

	err := svc.RecordPayment(&models.Payment{
		Email:         "ghost@example.com",
		TransactionID: "txn_ghost",
		Coins:         50,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Equal(t, int64(0), count, "ledger row must roll back when the credit fails")
}

func TestPaymentHistoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, &fakeGateway{})

	base := time.Now().Add(-time.Hour)
	rows := []models.Payment{
		{Email: "h@example.com", TransactionID: "txn_a", Coins: 10, CreatedAt: base},
		{Email: "h@example.com", TransactionID: "txn_b", Coins: 20, CreatedAt: base.Add(time.Minute)},
		{Email: "elsewhere@example.com", TransactionID: "txn_c", Coins: 30, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	history, err := svc.FindPaymentsByEmail("h@example.com")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "txn_b", history[0].TransactionID)
	assert.Equal(t, "txn_a", history[1].TransactionID)
}
