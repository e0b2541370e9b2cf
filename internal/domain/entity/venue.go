package entity

// Venue is a store or restaurant document referenced by orders. The two live
// in separate collections but share a shape; only Name matters for order
// display, the rest backs the restaurants list view.
type Venue struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Logo   string `json:"logo,omitempty"`
}
