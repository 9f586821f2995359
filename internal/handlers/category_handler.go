package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payday/internal/models"
)

// CategoryHandler serves the recommended category lists.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the recommended bill and expense categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bill_categories":    models.BillCategories,
		"expense_categories": models.ExpenseCategories,
	})
}
