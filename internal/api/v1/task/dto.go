package task

type CreateTaskRequest struct {
	BuyerEmail      string  `json:"buyer_email" binding:"required,email"`
	Title           string  `json:"task_title"`
	Detail          string  `json:"task_detail"`
	SubmissionInfo  string  `json:"submission_info"`
	ImageURL        string  `json:"task_image_url"`
	RequiredWorkers int     `json:"required_workers" binding:"required,gt=0"`
	PayableAmount   float64 `json:"payable_amount" binding:"required,gt=0"`
	CompletionDate  string  `json:"completion_date"`
}
