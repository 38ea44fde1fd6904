package services

import (
	"errors"
	"strings"

	"microtask-backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpsertUser inserts a user on first contact or refreshes profile fields on
// subsequent logins. Balance and CreatedAt are only written on insert; the
// signup bonus depends on the role at that moment.
func (s *UserService) UpsertUser(email, name, image string, role models.Role) (*models.User, bool, error) {
	role = models.Role(strings.ToLower(string(role)))

	var user models.User
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				Email:   email,
				Name:    name,
				Image:   image,
				Role:    role,
				Balance: models.InitialBalance(role),
			}
			created = true
			return tx.Create(&user).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":  name,
			"image": image,
			"role":  role,
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &user, created, nil
}

func (s *UserService) FindUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateRole changes a user's role. The role is lower-cased before storage.
func (s *UserService) UpdateRole(id uint, role models.Role) (*models.User, error) {
	role = models.Role(strings.ToLower(string(role)))

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}
