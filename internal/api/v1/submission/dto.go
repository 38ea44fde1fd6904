package submission

type CreateSubmissionRequest struct {
	TaskID      uint   `json:"task_id" binding:"required"`
	WorkerEmail string `json:"worker_email" binding:"required,email"`
	WorkerName  string `json:"worker_name"`
	Detail      string `json:"submission_detail"`
}
