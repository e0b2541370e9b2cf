package entity

import "time"

// Order is the display model projected from a raw orders document.
// All fields are defaulted at the projection boundary; nothing downstream
// needs to re-check shapes. Orders are read-only in this service.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	StoreID         string      `json:"store_id,omitempty"`
	RestaurantID    string      `json:"restaurant_id,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	DiscountAmount  float64     `json:"discount_amount"`
	DiscountApplied bool        `json:"discount_applied"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"created_at"`
	ModifiedAt      string      `json:"modified_at"`
	ModifiedBy      string      `json:"modified_by"`
	Items           []OrderItem `json:"items,omitempty"`

	// CreatedAtTime is the parsed form of CreatedAt, kept only for sorting.
	// Orders with an unparseable CreatedAt carry the zero time and sort last
	// in descending order.
	CreatedAtTime time.Time `json:"-"`
}

// HasVenue reports whether the order references a store or a restaurant.
func (o *Order) HasVenue() bool {
	return o.StoreID != "" || o.RestaurantID != ""
}

// OrderItem is a line item embedded in an order document. Quantity and Price
// may be absent in the source document; arithmetic treats a missing quantity
// as 1 and a missing price as 0 without mutating the item.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

// LineTotal returns price x quantity with arithmetic defaults applied.
func (i OrderItem) LineTotal() float64 {
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	price := i.Price
	if price < 0 {
		price = 0
	}
	return price * float64(qty)
}
