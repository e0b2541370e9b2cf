package service

import "strconv"

// DiscountNotApplied is shown in the detail view when no discount is in
// effect for an order.
const DiscountNotApplied = "Not Applied"

// OrderDetail is the presented form of one selected order. Subtotal is the
// sum of item line totals; Total is the stored order total and is shown
// independently of the subtotal, with no reconciliation between the two.
type OrderDetail struct {
	Order           OrderView `json:"order"`
	Subtotal        float64   `json:"subtotal"`
	SubtotalDisplay string    `json:"subtotal_display"`
	DiscountDisplay string    `json:"discount_display"`
	Total           float64   `json:"total"`
	TotalDisplay    string    `json:"total_display"`
}

// PresentOrder computes the detail view for one order.
func PresentOrder(o OrderView) OrderDetail {
	subtotal := 0.0
	for _, item := range o.Items {
		subtotal += item.LineTotal()
	}

	discount := DiscountNotApplied
	if o.DiscountApplied && o.DiscountAmount > 0 {
		discount = FormatAmount(o.DiscountAmount)
	}

	return OrderDetail{
		Order:           o,
		Subtotal:        subtotal,
		SubtotalDisplay: FormatAmount(subtotal),
		DiscountDisplay: discount,
		Total:           o.TotalAmount,
		TotalDisplay:    FormatAmount(o.TotalAmount),
	}
}

// FormatAmount renders a currency amount with exactly two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// OrderBrowser holds the view state of the orders screen: the full resolved
// order set plus the current search text, sort direction and selection. All
// state changes go through the named transitions below; the underlying order
// set is never mutated after construction.
type OrderBrowser struct {
	Orders         []OrderView  `json:"orders"`
	Search         string       `json:"search"`
	SortDescending bool         `json:"sort_descending"`
	Selected       *OrderDetail `json:"selected,omitempty"`
	DetailOpen     bool         `json:"detail_open"`
}

// NewOrderBrowser creates a browser over a freshly fetched order set.
// The default sort shows the most recent orders first.
func NewOrderBrowser(orders []OrderView) *OrderBrowser {
	return &OrderBrowser{
		Orders:         orders,
		SortDescending: true,
	}
}

// SetSearch updates the search text.
func (b *OrderBrowser) SetSearch(search string) {
	b.Search = search
}

// ToggleSort flips the chronological sort direction.
func (b *OrderBrowser) ToggleSort() {
	b.SortDescending = !b.SortDescending
}

// SelectOrder opens the detail view for the order with the given id,
// replacing any existing selection. It reports whether the order was found
// in the current set.
func (b *OrderBrowser) SelectOrder(id string) bool {
	for _, o := range b.Orders {
		if o.ID == id {
			detail := PresentOrder(o)
			b.Selected = &detail
			b.DetailOpen = true
			return true
		}
	}
	return false
}

// CloseDetail clears the selection and hides the detail view.
func (b *OrderBrowser) CloseDetail() {
	b.Selected = nil
	b.DetailOpen = false
}

// Visible returns the orders matching the current search and sort state,
// re-derived from the full set on every call.
func (b *OrderBrowser) Visible() []OrderView {
	return FilterOrders(b.Orders, b.Search, b.SortDescending)
}
