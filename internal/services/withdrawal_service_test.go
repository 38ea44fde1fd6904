package services

import (
	"testing"

	"microtask-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateWithdrawRequest(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewWithdrawalService(db)

	seedUser(t, users, "worker@example.com", models.RoleWorker, 100)

	err := svc.CreateRequest(&models.WithdrawRequest{
		WorkerEmail:    "worker@example.com",
		WithdrawalCoin: 200,
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	req := &models.WithdrawRequest{
		WorkerEmail:      "worker@example.com",
		WithdrawalCoin:   60,
		WithdrawalAmount: 3,
		PaymentSystem:    "bkash",
	}
	assert.NoError(t, svc.CreateRequest(req))
	assert.Equal(t, models.WithdrawPending, req.Status)

	// Filing does not touch the balance.
	worker, err := users.FindUserByEmail("worker@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, worker.Balance)
}

func TestCreateWithdrawRequestUnknownWorker(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWithdrawalService(db)

	err := svc.CreateRequest(&models.WithdrawRequest{
		WorkerEmail:    "ghost@example.com",
		WithdrawalCoin: 10,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApproveWithdrawalDebitsOnce(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewWithdrawalService(db)

	seedUser(t, users, "worker@example.com", models.RoleWorker, 100)

	req := &models.WithdrawRequest{
		WorkerEmail:      "worker@example.com",
		WithdrawalCoin:   60,
		WithdrawalAmount: 3,
	}
	assert.NoError(t, svc.CreateRequest(req))

	approved, err := svc.Approve(req.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawApproved, approved.Status)

	worker, err := users.FindUserByEmail("worker@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 40.0, worker.Balance)

	// A second approval must not debit again.
	_, err = svc.Approve(req.ID)
	assert.ErrorIs(t, err, ErrWithdrawalDecided)

	worker, err = users.FindUserByEmail("worker@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 40.0, worker.Balance)
}

func TestApproveWithdrawalInsufficientBalanceRollsBack(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewWithdrawalService(db)

	seedUser(t, users, "worker@example.com", models.RoleWorker, 100)

	req := &models.WithdrawRequest{WorkerEmail: "worker@example.com", WithdrawalCoin: 80}
	assert.NoError(t, svc.CreateRequest(req))

	// The balance shrank between filing and approval.
	assert.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "worker@example.com").
		Update("balance", 20).Error)

	_, err := svc.Approve(req.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The status flip rolled back with the failed debit.
	var reloaded models.WithdrawRequest
	assert.NoError(t, db.First(&reloaded, req.ID).Error)
	assert.Equal(t, models.WithdrawPending, reloaded.Status)

	worker, err := users.FindUserByEmail("worker@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 20.0, worker.Balance)
}

func TestApproveWithdrawalNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWithdrawalService(db)

	_, err := svc.Approve(777)
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)
}

func TestFindPendingWithdrawals(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewWithdrawalService(db)

	seedUser(t, users, "worker@example.com", models.RoleWorker, 100)

	first := &models.WithdrawRequest{WorkerEmail: "worker@example.com", WithdrawalCoin: 10}
	second := &models.WithdrawRequest{WorkerEmail: "worker@example.com", WithdrawalCoin: 20}
	assert.NoError(t, svc.CreateRequest(first))
	assert.NoError(t, svc.CreateRequest(second))

	_, err := svc.Approve(first.ID)
	assert.NoError(t, err)

	pending, err := svc.FindPending()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}
