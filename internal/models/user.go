package models

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// WorkerSignupBonus is credited to workers on first registration.
const WorkerSignupBonus = 10

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'buyer'" json:"role"`
	Balance   float64   `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitialBalance returns the signup credit for a role.
func InitialBalance(role Role) float64 {
	if role == RoleWorker {
		return WorkerSignupBonus
	}
	return 0
}
