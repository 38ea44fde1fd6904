package payment

type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Price         float64 `json:"price"`
	Coins         float64 `json:"coins" binding:"required,gt=0"`
}
