package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectOrder_Defaults(t *testing.T) {
	o := ProjectOrder("order-1", map[string]interface{}{})

	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "", o.CustomerName)
	assert.Equal(t, "", o.CustomerEmail)
	assert.Equal(t, 0.0, o.TotalAmount)
	assert.Equal(t, 0.0, o.DiscountAmount)
	assert.False(t, o.DiscountApplied)
	assert.Equal(t, "Pending", o.Status)
	assert.Equal(t, "", o.CreatedAt)
	assert.True(t, o.CreatedAtTime.IsZero())
	assert.Nil(t, o.Items)
}

func TestProjectOrder_FullDocument(t *testing.T) {
	created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)

	o := ProjectOrder("order-2", map[string]interface{}{
		"customerName":    "Chidi Okafor",
		"customerEmail":   "chidi@example.com",
		"storeId":         "store-7",
		"totalAmount":     150.5,
		"discountAmount":  10.0,
		"discountApplied": true,
		"status":          "Delivered",
		"createdAt":       created,
		"modifiedBy":      "ops@gbmfoods.com",
		"items": []interface{}{
			map[string]interface{}{"name": "Jollof Rice", "quantity": int64(2), "price": 50.0},
			map[string]interface{}{"name": "Suya", "quantity": 1, "price": 50.5},
		},
	})

	assert.Equal(t, "Chidi Okafor", o.CustomerName)
	assert.Equal(t, "store-7", o.StoreID)
	assert.Equal(t, 150.5, o.TotalAmount)
	assert.True(t, o.DiscountApplied)
	assert.Equal(t, "Delivered", o.Status)
	assert.Equal(t, "15/03/2024, 09:30:00", o.CreatedAt)
	assert.True(t, o.CreatedAtTime.Equal(created))

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Jollof Rice", o.Items[0].Name)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 50.0, o.Items[0].Price)
	assert.Equal(t, 1, o.Items[1].Quantity)
}

func TestProjectOrder_MalformedFieldsNeverReject(t *testing.T) {
	// Every field of the wrong type falls back to its default; the record
	// itself is always kept.
	o := ProjectOrder("order-3", map[string]interface{}{
		"customerName":    42,
		"totalAmount":     "not a number",
		"discountApplied": "yes",
		"status":          nil,
		"items":           "not a list",
		"createdAt":       12345,
	})

	assert.Equal(t, "order-3", o.ID)
	assert.Equal(t, "", o.CustomerName)
	assert.Equal(t, 0.0, o.TotalAmount)
	assert.False(t, o.DiscountApplied)
	assert.Equal(t, "Pending", o.Status)
	assert.Nil(t, o.Items)
	assert.Equal(t, "", o.CreatedAt)
	assert.True(t, o.CreatedAtTime.IsZero())
}

func TestProjectOrder_NegativeAmountsClampToZero(t *testing.T) {
	o := ProjectOrder("order-4", map[string]interface{}{
		"totalAmount":    -20.0,
		"discountAmount": -5.0,
	})

	assert.Equal(t, 0.0, o.TotalAmount)
	assert.Equal(t, 0.0, o.DiscountAmount)
}

func TestProjectOrder_SkipsMalformedItems(t *testing.T) {
	o := ProjectOrder("order-5", map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"name": "Moi Moi", "quantity": 3, "price": 4.0},
			"garbage",
			map[string]interface{}{"name": "Free Sample", "price": -2.0},
		},
	})

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Moi Moi", o.Items[0].Name)
	// Negative price is clamped; missing quantity stays 0 here and is only
	// defaulted to 1 inside line total arithmetic.
	assert.Equal(t, 0.0, o.Items[1].Price)
	assert.Equal(t, 0, o.Items[1].Quantity)
}

func TestNormalizeTimestamp_StructuredTime(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 45, 6, 0, time.Local)

	display, instant := normalizeTimestamp(ts)

	assert.Equal(t, "02/01/2024, 13:45:06", display)
	assert.True(t, instant.Equal(ts))
}

func TestNormalizeTimestamp_StringPassthrough(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		parseable bool
	}{
		{"rfc3339", "2024-01-02T13:45:06Z", true},
		{"display layout", "02/01/2024, 13:45:06", true},
		{"date only", "2024-01-02", true},
		{"unrecognized", "last Tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, instant := normalizeTimestamp(tt.raw)

			// Strings always display verbatim.
			assert.Equal(t, tt.raw, display)
			assert.Equal(t, tt.parseable, !instant.IsZero())
		})
	}
}

func TestNormalizeTimestamp_Absent(t *testing.T) {
	display, instant := normalizeTimestamp(nil)

	assert.Equal(t, "", display)
	assert.True(t, instant.IsZero())
}

func TestProjectVenue_Defaults(t *testing.T) {
	v := projectVenue("store-1", map[string]interface{}{})

	assert.Equal(t, "No Name", v.Name)
	assert.Equal(t, "Active", v.Status)
}

func TestProjectUser_Defaults(t *testing.T) {
	u := projectUser("user-1", map[string]interface{}{})

	assert.Equal(t, "No Name", u.Name)
	assert.Equal(t, "No Email", u.Email)
	assert.Equal(t, "User", u.Role)
	assert.Equal(t, "Active", u.Status)
}
