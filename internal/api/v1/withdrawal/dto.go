package withdrawal

type CreateWithdrawRequest struct {
	WorkerEmail      string  `json:"worker_email" binding:"required,email"`
	WorkerName       string  `json:"worker_name"`
	WithdrawalCoin   float64 `json:"withdrawal_coin" binding:"required,gt=0"`
	WithdrawalAmount float64 `json:"withdrawal_amount" binding:"required,gt=0"`
	PaymentSystem    string  `json:"payment_system"`
	AccountNumber    string  `json:"account_number"`
}
