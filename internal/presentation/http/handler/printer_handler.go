package handler

import (
	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type PrinterHandler struct {
	printerService *service.PrinterService
}

func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status reports the configured printer type and connection state
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// Test prints a short test receipt on the configured printer
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test receipt sent", receipt)
}

// PrintReceipt builds a sales receipt for the order and sends it to the
// printer. The receipt is returned even when printing is unavailable so
// the dashboard can always show a preview.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Order ID is required")
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt generated", receipt)
}
