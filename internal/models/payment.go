package models

import "time"

// Payment is an append-only ledger row for a completed top-up. Price is the
// charged amount in USD, Coins the credits added to the user's balance.
type Payment struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Email         string    `gorm:"index;not null" json:"email"`
	TransactionID string    `gorm:"uniqueIndex;not null" json:"transactionId"`
	Price         float64   `gorm:"not null" json:"price"`
	Coins         float64   `gorm:"not null" json:"coins"`
	CreatedAt     time.Time `json:"date"`
}
