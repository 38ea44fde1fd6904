package services

import (
	"errors"

	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNoWorkerSlots      = errors.New("task has no remaining worker slots")
	// ErrAlreadyDecided is returned when a submission is approved or rejected
	// a second time. Replaying an approval would double-credit the worker.
	ErrAlreadyDecided = errors.New("submission has already been decided")
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// CreateSubmission records a worker's claim against a task and consumes one
// of the task's open slots. The slot decrement is guarded so the last slot
// cannot be taken twice under concurrent submissions.
func (s *SubmissionService) CreateSubmission(sub *models.Submission) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		err := tx.First(&task, sub.TaskID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		if err != nil {
			return err
		}

		result := tx.Model(&models.Task{}).
			Where("id = ? AND required_workers > 0", sub.TaskID).
			Update("required_workers", gorm.Expr("required_workers - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoWorkerSlots
		}

		sub.TaskTitle = task.Title
		sub.BuyerEmail = task.BuyerEmail
		sub.PayableAmount = task.PayableAmount
		sub.Status = models.SubmissionPending
		return tx.Create(sub).Error
	})
}

// FindPendingByBuyer returns pending submissions awaiting a buyer's decision.
func (s *SubmissionService) FindPendingByBuyer(buyerEmail string) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("buyer_email = ? AND status = ?", buyerEmail, models.SubmissionPending).
		Order("created_at desc").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Approve marks a submission approved and credits the worker by the
// submission's payable amount. The status flip only matches pending rows, so
// a replayed approval fails instead of crediting twice.
func (s *SubmissionService) Approve(id uint) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.decide(tx, id, &sub, models.SubmissionApproved); err != nil {
			return err
		}

		result := tx.Model(&models.User{}).
			Where("email = ?", sub.WorkerEmail).
			Update("balance", gorm.Expr("balance + ?", sub.PayableAmount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Reject marks a submission rejected and hands the consumed slot back to the
// task.
func (s *SubmissionService) Reject(id uint) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.decide(tx, id, &sub, models.SubmissionRejected); err != nil {
			return err
		}

		return tx.Model(&models.Task{}).
			Where("id = ?", sub.TaskID).
			Update("required_workers", gorm.Expr("required_workers + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// decide loads the submission, checks the transition is legal, and flips the
// status. The UPDATE still matches only pending rows so a concurrent decision
// between the read and the write cannot slip through.
func (s *SubmissionService) decide(tx *gorm.DB, id uint, sub *models.Submission, target models.SubmissionStatus) error {
	err := tx.First(sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubmissionNotFound
	}
	if err != nil {
		return err
	}
	if !sub.Status.CanTransitionTo(target) {
		return ErrAlreadyDecided
	}

	result := tx.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, models.SubmissionPending).
		Update("status", target)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyDecided
	}
	sub.Status = target
	return nil
}

// WorkerStats summarizes a worker's submission history.
type WorkerStats struct {
	TotalSubmissions   int64   `json:"totalSubmissions"`
	PendingSubmissions int64   `json:"pendingSubmissions"`
	TotalEarnings      float64 `json:"totalEarnings"`
}

func (s *SubmissionService) GetWorkerStats(email string) (*WorkerStats, error) {
	var stats WorkerStats

	if err := s.db.Model(&models.Submission{}).
		Where("worker_email = ?", email).
		Count(&stats.TotalSubmissions).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Submission{}).
		Where("worker_email = ? AND status = ?", email, models.SubmissionPending).
		Count(&stats.PendingSubmissions).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Submission{}).
		Where("worker_email = ? AND status = ?", email, models.SubmissionApproved).
		Select("COALESCE(SUM(payable_amount), 0)").
		Scan(&stats.TotalEarnings).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// FindApprovedByWorker returns a worker's approved submissions, newest first.
func (s *SubmissionService) FindApprovedByWorker(email string) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("worker_email = ? AND status = ?", email, models.SubmissionApproved).
		Order("created_at desc").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
