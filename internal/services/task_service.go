package services

import (
	"errors"

	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// CreateTask posts a task and debits the buyer in one transaction. The debit
// is a guarded update (balance >= cost), so concurrent posts cannot both pass
// the check. Cost equal to the balance is accepted and leaves the buyer at
// zero.
func (s *TaskService) CreateTask(task *models.Task) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var buyer models.User
		err := tx.Where("email = ?", task.BuyerEmail).First(&buyer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		cost := task.TotalCost()
		result := tx.Model(&models.User{}).
			Where("email = ? AND balance >= ?", task.BuyerEmail, cost).
			Update("balance", gorm.Expr("balance - ?", cost))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		task.TotalPayableAmount = cost
		return tx.Create(task).Error
	})
}

// FindTasksByBuyer returns a buyer's own tasks, newest first.
func (s *TaskService) FindTasksByBuyer(email string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("buyer_email = ?", email).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOpenTasks returns tasks that still have worker slots, newest first.
func (s *TaskService) FindOpenTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("required_workers > 0").
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) FindTaskByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) DeleteTask(id uint) error {
	result := s.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
