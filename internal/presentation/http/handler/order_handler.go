package handler

import (
	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderListResponse is the payload for the order browsing endpoint.
type OrderListResponse struct {
	Orders []service.OrderView `json:"orders"`
	Total  int                 `json:"total"`
	Search string              `json:"search"`
	Sort   string              `json:"sort"`
}

// List returns all orders with resolved venue names, filtered by the
// optional search term and sorted by creation time. Sort defaults to
// newest first; pass sort=asc for oldest first.
func (h *OrderHandler) List(c *gin.Context) {
	browser, err := h.orderService.BrowseOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	browser.SetSearch(c.Query("search"))
	if c.Query("sort") == "asc" {
		browser.ToggleSort()
	}

	orders := browser.Visible()

	sort := "desc"
	if !browser.SortDescending {
		sort = "asc"
	}

	response.OK(c, "Orders retrieved successfully", OrderListResponse{
		Orders: orders,
		Total:  len(orders),
		Search: browser.Search,
		Sort:   sort,
	})
}

// Get returns the detail view for a single order, with subtotal,
// discount and total already formatted for display.
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Order ID is required")
		return
	}

	detail, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", detail)
}
