package entity

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable sales receipt.
// It is not persisted anywhere; it is composed from an order at print time
// and discarded after the document is emitted.
type Receipt struct {
	StoreName string        `json:"store_name"`
	Title     string        `json:"title"`
	OrderID   string        `json:"order_id"`
	Items     []ReceiptItem `json:"items"`
	SubTotal  float64       `json:"sub_total"`
	// Discount is shown (as a negative amount) only when DiscountApplied is
	// true and the amount is positive.
	Discount        float64 `json:"discount"`
	DiscountApplied bool    `json:"discount_applied"`
	Total           float64 `json:"total"`
	Currency        string  `json:"currency"`
	// PrintedDate and PrintedTime are captured at generation time, not order time.
	PrintedDate  string `json:"printed_date"`
	PrintedTime  string `json:"printed_time"`
	ServedBy     string `json:"served_by"`
	ThankYouLine string `json:"thank_you_line"`
	FooterLine   string `json:"footer_line"`
}
