package service

import (
	"context"
	"time"

	"github.com/gbmfoods/admin-api/internal/config"
	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"github.com/gbmfoods/admin-api/pkg/printer"
	"go.uber.org/zap"
)

// receiptTitle is the fixed title printed under the brand mark.
const receiptTitle = "SALES RECEIPT"

// servedByFallback is used when an order carries no modifiedBy actor.
const servedByFallback = "Admin"

// PrinterService composes sales receipts from orders and emits them to the
// print surface.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	receiptCfg  config.ReceiptConfig
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	receiptCfg config.ReceiptConfig,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		receiptCfg:  receiptCfg,
		printerType: printerType,
	}
}

// PrinterStatus reports print surface health.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. The receipt is returned so the
// handler can render it as JSON when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	order := entity.Order{
		ID:          "TEST-0001",
		TotalAmount: 20,
		Status:      "Delivered",
		Items: []entity.OrderItem{
			{Name: "Test Item 1", Quantity: 1, Price: 10},
			{Name: "Test Item 2", Quantity: 2, Price: 5},
		},
	}

	receipt := BuildReceipt(order, s.receiptCfg, time.Now())
	s.emit(receipt, order.ID)
	return receipt, nil
}

// PrintOrderReceipt fetches an order and prints its receipt. A print surface
// that cannot be reached is a silent no-op: the receipt is still returned and
// the caller never sees an error for it.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		logger.L().Error("order fetch failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, apperror.NewUpstreamError("Failed to fetch orders")
	}

	receipt := BuildReceipt(*order, s.receiptCfg, time.Now())
	s.emit(receipt, orderID)
	return receipt, nil
}

func (s *PrinterService) emit(r *entity.Receipt, orderID string) {
	if err := s.printer.Print(FormatReceipt(r)); err != nil {
		logger.L().Warn("receipt print skipped",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

// BuildReceipt composes a printable receipt from an order. The printed date
// and time are captured from now, not from the order. An order without items
// yields a single synthesized line carrying the order id and the stored
// total.
func BuildReceipt(order entity.Order, cfg config.ReceiptConfig, now time.Time) *entity.Receipt {
	receipt := &entity.Receipt{
		StoreName:       cfg.StoreName,
		Title:           receiptTitle,
		OrderID:         order.ID,
		Currency:        cfg.Currency,
		Total:           order.TotalAmount,
		DiscountApplied: order.DiscountApplied && order.DiscountAmount > 0,
		PrintedDate:     now.Format("02/01/2006"),
		PrintedTime:     now.Format("15:04:05"),
		ServedBy:        order.ModifiedBy,
		ThankYouLine:    cfg.ThankYouLine,
		FooterLine:      cfg.FooterLine,
	}

	if receipt.DiscountApplied {
		receipt.Discount = order.DiscountAmount
	}
	if receipt.ServedBy == "" {
		receipt.ServedBy = servedByFallback
	}

	if len(order.Items) == 0 {
		receipt.Items = []entity.ReceiptItem{{
			Name:      "Order " + order.ID,
			Quantity:  1,
			UnitPrice: order.TotalAmount,
			Total:     order.TotalAmount,
		}}
		receipt.SubTotal = order.TotalAmount
		return receipt
	}

	for _, item := range order.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lineTotal := item.LineTotal()
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.Price,
			Total:     lineTotal,
		})
		receipt.SubTotal += lineTotal
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars
	money := func(v float64) string { return r.Currency + FormatAmount(v) }

	// Brand header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.StoreName).
		SetFontSize(printer.FontNormal).
		Text(r.Title).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Total))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", money(r.SubTotal))
	if r.DiscountApplied {
		doc.KeyValue("Discount:", "-"+money(r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", money(r.Total)).
		SetBold(false).
		Separator('-')

	// Footer block
	doc.KeyValue("Order:", r.OrderID).
		KeyValue("Date:", r.PrintedDate).
		KeyValue("Time:", r.PrintedTime).
		KeyValue("Served by:", r.ServedBy).
		LineFeed().
		SetAlign(printer.AlignCenter).
		Text(r.ThankYouLine).
		Text(r.FooterLine).
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
