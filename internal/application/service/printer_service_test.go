package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gbmfoods/admin-api/internal/config"
	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPrinter captures everything sent to it and can be told to fail.
type recordingPrinter struct {
	jobs     [][]byte
	printErr error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.printErr != nil {
		return p.printErr
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) IsConnected() bool {
	return p.printErr == nil
}

func testReceiptConfig() config.ReceiptConfig {
	return config.ReceiptConfig{
		StoreName:    "GBM Foods",
		Currency:     "$",
		ThankYouLine: "Thank you for your patronage!",
		FooterLine:   "GBM Foods Marketplace - gbmfoods.com",
	}
}

func TestBuildReceipt_ItemsAndTotals(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)

	order := entity.Order{
		ID:          "ORD-123",
		TotalAmount: 99.9,
		ModifiedBy:  "jane@gbmfoods.com",
		Items: []entity.OrderItem{
			{Name: "Jollof Rice", Quantity: 2, Price: 10},
			{Name: "Suya", Quantity: 1, Price: 5},
		},
	}

	r := BuildReceipt(order, testReceiptConfig(), now)

	assert.Equal(t, "GBM Foods", r.StoreName)
	assert.Equal(t, "SALES RECEIPT", r.Title)
	assert.Equal(t, "ORD-123", r.OrderID)

	require.Len(t, r.Items, 2)
	assert.Equal(t, 20.0, r.Items[0].Total)
	assert.Equal(t, 5.0, r.Items[1].Total)
	assert.Equal(t, 25.0, r.SubTotal)
	// Stored total, independent of the item sum.
	assert.Equal(t, 99.9, r.Total)

	assert.Equal(t, "15/03/2024", r.PrintedDate)
	assert.Equal(t, "14:30:45", r.PrintedTime)
	assert.Equal(t, "jane@gbmfoods.com", r.ServedBy)
}

func TestBuildReceipt_EmptyItemsSynthesizesLine(t *testing.T) {
	order := entity.Order{ID: "ORD-9", TotalAmount: 75.5}

	r := BuildReceipt(order, testReceiptConfig(), time.Now())

	require.Len(t, r.Items, 1)
	assert.Equal(t, "Order ORD-9", r.Items[0].Name)
	assert.Equal(t, 1, r.Items[0].Quantity)
	assert.Equal(t, 75.5, r.Items[0].UnitPrice)
	assert.Equal(t, 75.5, r.Items[0].Total)
	assert.Equal(t, 75.5, r.SubTotal)
}

func TestBuildReceipt_DiscountGating(t *testing.T) {
	cfg := testReceiptConfig()

	applied := BuildReceipt(entity.Order{
		ID: "a", DiscountApplied: true, DiscountAmount: 50,
	}, cfg, time.Now())
	assert.True(t, applied.DiscountApplied)
	assert.Equal(t, 50.0, applied.Discount)

	flagOnly := BuildReceipt(entity.Order{
		ID: "b", DiscountApplied: true,
	}, cfg, time.Now())
	assert.False(t, flagOnly.DiscountApplied)
	assert.Equal(t, 0.0, flagOnly.Discount)

	amountOnly := BuildReceipt(entity.Order{
		ID: "c", DiscountAmount: 50,
	}, cfg, time.Now())
	assert.False(t, amountOnly.DiscountApplied)
}

func TestBuildReceipt_ServedByFallback(t *testing.T) {
	r := BuildReceipt(entity.Order{ID: "a"}, testReceiptConfig(), time.Now())

	assert.Equal(t, "Admin", r.ServedBy)
}

func TestFormatReceipt_Layout(t *testing.T) {
	r := &entity.Receipt{
		StoreName:       "GBM Foods",
		Title:           "SALES RECEIPT",
		OrderID:         "ORD-123",
		Currency:        "$",
		SubTotal:        100,
		Discount:        50,
		DiscountApplied: true,
		Total:           50,
		PrintedDate:     "15/03/2024",
		PrintedTime:     "14:30:45",
		ServedBy:        "Admin",
		ThankYouLine:    "Thank you for your patronage!",
		FooterLine:      "GBM Foods Marketplace - gbmfoods.com",
		Items: []entity.ReceiptItem{
			{Name: "Jollof Rice", Quantity: 2, UnitPrice: 50, Total: 100},
		},
	}

	out := string(FormatReceipt(r))

	assert.Contains(t, out, "GBM Foods")
	assert.Contains(t, out, "SALES RECEIPT")
	assert.Contains(t, out, "2x  Jollof Rice")
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "-$50.00")
	assert.Contains(t, out, "Served by:")
	assert.Contains(t, out, "Thank you for your patronage!")
}

func TestFormatReceipt_NoDiscountLineWhenNotApplied(t *testing.T) {
	r := &entity.Receipt{
		StoreName: "GBM Foods",
		Title:     "SALES RECEIPT",
		Currency:  "$",
		SubTotal:  100,
		Total:     100,
		Items:     []entity.ReceiptItem{{Name: "Suya", Quantity: 1, Total: 100}},
	}

	out := string(FormatReceipt(r))

	assert.False(t, strings.Contains(out, "Discount:"))
}

func TestPrintOrderReceipt_SendsToPrinter(t *testing.T) {
	p := &recordingPrinter{}
	repo := &fakeOrderRepo{orders: []entity.Order{{
		ID:          "ORD-1",
		TotalAmount: 30,
		Items:       []entity.OrderItem{{Name: "Suya", Quantity: 3, Price: 10}},
	}}}
	svc := NewPrinterService(p, repo, testReceiptConfig(), "usb")

	receipt, err := svc.PrintOrderReceipt(context.Background(), "ORD-1")

	require.NoError(t, err)
	assert.Equal(t, "ORD-1", receipt.OrderID)
	require.Len(t, p.jobs, 1)
	assert.Contains(t, string(p.jobs[0]), "3x  Suya")
}

func TestPrintOrderReceipt_PrintFailureIsSilent(t *testing.T) {
	p := &recordingPrinter{printErr: errors.New("device not found")}
	repo := &fakeOrderRepo{orders: []entity.Order{{ID: "ORD-1", TotalAmount: 30}}}
	svc := NewPrinterService(p, repo, testReceiptConfig(), "usb")

	receipt, err := svc.PrintOrderReceipt(context.Background(), "ORD-1")

	// The receipt is still produced; the failed print never surfaces.
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "ORD-1", receipt.OrderID)
}

func TestPrintOrderReceipt_OrderNotFound(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeOrderRepo{}, testReceiptConfig(), "usb")

	receipt, err := svc.PrintOrderReceipt(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetStatus(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeOrderRepo{}, testReceiptConfig(), "network")
	status := svc.GetStatus()

	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)

	none := NewPrinterService(&recordingPrinter{}, &fakeOrderRepo{}, testReceiptConfig(), "none")
	assert.False(t, none.GetStatus().Configured)
}
