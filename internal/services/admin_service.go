package services

import (
	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

// AdminStats are platform-wide aggregates, recomputed on every call.
type AdminStats struct {
	TotalWorker        int64   `json:"totalWorker"`
	TotalBuyer         int64   `json:"totalBuyer"`
	TotalAvailableCoin float64 `json:"totalAvailableCoin"`
	TotalPayments      int64   `json:"totalPayments"`
}

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetStats() (*AdminStats, error) {
	var stats AdminStats

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleWorker).
		Count(&stats.TotalWorker).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleBuyer).
		Count(&stats.TotalBuyer).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.TotalAvailableCoin).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Payment{}).
		Count(&stats.TotalPayments).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
