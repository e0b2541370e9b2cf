package entity

// Transaction is a payment-gateway transaction as returned by the gateway's
// read API. Amounts arrive in the gateway's minor units (kobo).
type Transaction struct {
	ID        int64   `json:"id"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Channel   string  `json:"channel"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	PaidAt    string  `json:"paid_at"`
}
