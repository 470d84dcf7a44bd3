package request

type CreateOrderRequest struct {
	Amount     int64  `json:"amount" binding:"required"`
	Currency   string `json:"currency"`
	Purpose    string `json:"purpose"`
	PayerName  string `json:"payer_name"`
	PayerEmail string `json:"payer_email"`
	Anonymous  bool   `json:"anonymous"`
}
