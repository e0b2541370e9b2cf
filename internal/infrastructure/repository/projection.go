package repository

import (
	"time"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
)

// displayTimeLayout is the canonical display form for normalized timestamps.
const displayTimeLayout = "02/01/2006, 15:04:05"

// timeParseLayouts are tried in order when a timestamp arrives as a
// pre-formatted string. Strings matching none of them keep the zero time for
// sorting but still display as-is.
var timeParseLayouts = []string{
	time.RFC3339,
	displayTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ProjectOrder converts a raw orders document into a display model. Every
// field is defaulted individually; a malformed field never rejects the
// record.
func ProjectOrder(id string, data map[string]interface{}) entity.Order {
	o := entity.Order{
		ID:              id,
		CustomerName:    stringField(data, "customerName"),
		CustomerEmail:   stringField(data, "customerEmail"),
		StoreID:         stringField(data, "storeId"),
		RestaurantID:    stringField(data, "restaurantId"),
		TotalAmount:     numberField(data, "totalAmount"),
		DiscountAmount:  numberField(data, "discountAmount"),
		DiscountApplied: boolField(data, "discountApplied"),
		Status:          stringField(data, "status"),
		ModifiedBy:      stringField(data, "modifiedBy"),
		Items:           projectItems(data["items"]),
	}

	if o.Status == "" {
		o.Status = "Pending"
	}
	if o.TotalAmount < 0 {
		o.TotalAmount = 0
	}
	if o.DiscountAmount < 0 {
		o.DiscountAmount = 0
	}

	o.CreatedAt, o.CreatedAtTime = normalizeTimestamp(data["createdAt"])
	o.ModifiedAt, _ = normalizeTimestamp(data["modifiedAt"])

	return o
}

// projectVenue converts a stores/restaurants document into a display model.
func projectVenue(id string, data map[string]interface{}) entity.Venue {
	v := entity.Venue{
		ID:     id,
		Name:   stringField(data, "name"),
		Email:  stringField(data, "email"),
		Phone:  stringField(data, "phone"),
		Status: stringField(data, "status"),
		Logo:   stringField(data, "logo"),
	}
	if v.Name == "" {
		v.Name = "No Name"
	}
	if v.Status == "" {
		v.Status = "Active"
	}
	return v
}

// projectUser converts a users document into a display model.
func projectUser(id string, data map[string]interface{}) entity.User {
	u := entity.User{
		ID:     id,
		Name:   stringField(data, "name"),
		Email:  stringField(data, "email"),
		Role:   stringField(data, "role"),
		Status: stringField(data, "status"),
		Avatar: stringField(data, "avatar"),
	}
	if u.Name == "" {
		u.Name = "No Name"
	}
	if u.Email == "" {
		u.Email = "No Email"
	}
	if u.Role == "" {
		u.Role = "User"
	}
	if u.Status == "" {
		u.Status = "Active"
	}
	return u
}

// projectAgent converts an agents document into a display model.
func projectAgent(id string, data map[string]interface{}) entity.Agent {
	a := entity.Agent{
		ID:         id,
		Name:       stringField(data, "name"),
		Email:      stringField(data, "email"),
		Phone:      stringField(data, "phone"),
		IsVerified: boolField(data, "isVerified"),
		Avatar:     stringField(data, "avatar"),
	}
	if a.Name == "" {
		a.Name = "No Name"
	}
	return a
}

// projectAdmin converts an admins document into a staff account.
func projectAdmin(id string, data map[string]interface{}) entity.Admin {
	return entity.Admin{
		ID:           id,
		Name:         stringField(data, "name"),
		Email:        stringField(data, "email"),
		PasswordHash: stringField(data, "passwordHash"),
	}
}

func projectItems(raw interface{}) []entity.OrderItem {
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		item := entity.OrderItem{
			Name:     stringField(m, "name"),
			Quantity: int(numberField(m, "quantity")),
			Price:    numberField(m, "price"),
			ImageURL: stringField(m, "imageUrl"),
		}
		if item.Price < 0 {
			item.Price = 0
		}
		items = append(items, item)
	}
	return items
}

// normalizeTimestamp accepts either a structured timestamp (decoded by the
// store client as time.Time) or a pre-formatted string, and returns the
// display string plus a best-effort parsed instant used only for sorting.
// Absent or unrecognized values display as "".
func normalizeTimestamp(raw interface{}) (string, time.Time) {
	switch v := raw.(type) {
	case time.Time:
		local := v.Local()
		return local.Format(displayTimeLayout), local
	case string:
		for _, layout := range timeParseLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return v, t
			}
		}
		return v, time.Time{}
	default:
		return "", time.Time{}
	}
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func numberField(data map[string]interface{}, key string) float64 {
	switch n := data[key].(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func boolField(data map[string]interface{}, key string) bool {
	b, ok := data[key].(bool)
	return ok && b
}
