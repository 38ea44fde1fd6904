package models

import "time"

// SubmissionStatus models the submission lifecycle. pending is the only
// non-terminal state; approved and rejected are terminal.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// CanTransitionTo reports whether moving to the target status is legal.
func (s SubmissionStatus) CanTransitionTo(target SubmissionStatus) bool {
	if s != SubmissionPending {
		return false
	}
	return target == SubmissionApproved || target == SubmissionRejected
}

// Submission is a worker's claim of completed work against a task, awaiting
// the buyer's decision.
type Submission struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	TaskID        uint             `gorm:"index;not null" json:"task_id"`
	TaskTitle     string           `json:"task_title"`
	WorkerEmail   string           `gorm:"index;not null" json:"worker_email"`
	WorkerName    string           `json:"worker_name"`
	BuyerEmail    string           `gorm:"index;not null" json:"buyer_email"`
	PayableAmount float64          `gorm:"not null" json:"payable_amount"`
	Detail        string           `gorm:"type:text" json:"submission_detail"`
	Status        SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
