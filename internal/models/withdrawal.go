package models

import "time"

type WithdrawStatus string

const (
	WithdrawPending  WithdrawStatus = "pending"
	WithdrawApproved WithdrawStatus = "approved"
)

// WithdrawRequest is a worker's request to cash out part of their balance.
// WithdrawalCoin is the credit amount debited on approval; WithdrawalAmount
// is the corresponding payout in the external payment system.
type WithdrawRequest struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	WorkerEmail      string         `gorm:"index;not null" json:"worker_email"`
	WorkerName       string         `json:"worker_name"`
	WithdrawalCoin   float64        `gorm:"not null" json:"withdrawal_coin"`
	WithdrawalAmount float64        `gorm:"not null" json:"withdrawal_amount"`
	PaymentSystem    string         `json:"payment_system"`
	AccountNumber    string         `json:"account_number"`
	Status           WithdrawStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt        time.Time      `json:"withdraw_date"`
	UpdatedAt        time.Time      `json:"-"`
}
