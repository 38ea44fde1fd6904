package services

import (
	"errors"

	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWithdrawalNotFound = errors.New("withdraw request not found")
	ErrWithdrawalDecided  = errors.New("withdraw request has already been approved")
)

type WithdrawalService struct {
	db *gorm.DB
}

func NewWithdrawalService(db *gorm.DB) *WithdrawalService {
	return &WithdrawalService{db: db}
}

// CreateRequest files a pending withdraw request. The requested coins must
// not exceed the worker's current balance; the balance itself is only
// debited when an admin approves.
func (s *WithdrawalService) CreateRequest(req *models.WithdrawRequest) error {
	var worker models.User
	err := s.db.Where("email = ?", req.WorkerEmail).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if req.WithdrawalCoin > worker.Balance {
		return ErrInsufficientBalance
	}

	req.Status = models.WithdrawPending
	return s.db.Create(req).Error
}

// FindPending returns withdraw requests awaiting admin approval.
func (s *WithdrawalService) FindPending() ([]models.WithdrawRequest, error) {
	var requests []models.WithdrawRequest
	err := s.db.Where("status = ?", models.WithdrawPending).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve marks a request approved and debits the worker's balance by the
// requested coins. Both updates are guarded: the status flip only matches
// pending rows and the debit refuses to drive the balance negative.
func (s *WithdrawalService) Approve(id uint) (*models.WithdrawRequest, error) {
	var req models.WithdrawRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&req, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWithdrawalNotFound
		}
		if err != nil {
			return err
		}

		result := tx.Model(&models.WithdrawRequest{}).
			Where("id = ? AND status = ?", id, models.WithdrawPending).
			Update("status", models.WithdrawApproved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrWithdrawalDecided
		}
		req.Status = models.WithdrawApproved

		var worker models.User
		err = tx.Where("email = ?", req.WorkerEmail).First(&worker).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		result = tx.Model(&models.User{}).
			Where("email = ? AND balance >= ?", req.WorkerEmail, req.WithdrawalCoin).
			Update("balance", gorm.Expr("balance - ?", req.WithdrawalCoin))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
