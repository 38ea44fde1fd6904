package models

import "time"

// Task is a unit of purchasable work posted by a buyer. RequiredWorkers
// tracks the remaining open slots: it is decremented when a worker submits
// and handed back when a submission is rejected.
type Task struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	BuyerEmail         string    `gorm:"index;not null" json:"buyer_email"`
	Title              string    `json:"title"`
	Detail             string    `gorm:"type:text" json:"detail"`
	SubmissionInfo     string    `gorm:"type:text" json:"submission_info"`
	ImageURL           string    `json:"task_image_url"`
	RequiredWorkers    int       `gorm:"not null" json:"required_workers"`
	PayableAmount      float64   `gorm:"not null" json:"payable_amount"`
	TotalPayableAmount float64   `gorm:"not null" json:"total_payable_amount"`
	CompletionDate     string    `json:"completion_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// TotalCost is the full price of a task at posting time.
func (t *Task) TotalCost() float64 {
	return float64(t.RequiredWorkers) * t.PayableAmount
}

func (Task) TableName() string {
	return "tasks"
}
