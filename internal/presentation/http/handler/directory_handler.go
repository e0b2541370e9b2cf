package handler

import (
	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the user, agent and restaurant listing pages.
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users, err := h.directoryService.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", gin.H{
		"users": users,
		"total": len(users),
	})
}

func (h *DirectoryHandler) ListAgents(c *gin.Context) {
	agents, err := h.directoryService.ListAgents(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agents retrieved successfully", gin.H{
		"agents": agents,
		"total":  len(agents),
	})
}

func (h *DirectoryHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.directoryService.ListRestaurants(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurants retrieved successfully", gin.H{
		"restaurants": restaurants,
		"total":       len(restaurants),
	})
}
