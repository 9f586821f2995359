package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "payday/internal/errors"
	"payday/internal/pagination"
	"payday/internal/services"
)

// ExpenseHandler handles imported-expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpensesRequest holds the query parameters for listing expenses.
type ListExpensesRequest struct {
	pagination.PageRequest
	Category       string `form:"category" binding:"omitempty,expense_category"`
	FromDate       string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate         string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	DuplicatesOnly bool   `form:"duplicates_only"`
}

// UpdateExpenseCategoryRequest represents the request payload for recategorizing
// a single expense.
type UpdateExpenseCategoryRequest struct {
	Category string `json:"category" binding:"required,expense_category"`
}

// BulkCategoryRequest represents the request payload for recategorizing many
// expenses at once.
type BulkCategoryRequest struct {
	ExpenseIDs []uint `json:"expense_ids" binding:"required,min=1"`
	Category   string `json:"category" binding:"required,expense_category"`
}

// BulkDeleteRequest represents the request payload for deleting many expenses.
type BulkDeleteRequest struct {
	ExpenseIDs []uint `json:"expense_ids" binding:"required,min=1"`
}

// GetExpenses lists expenses with optional category, date-range, and
// duplicate filters.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var req ListExpensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	req.Defaults()

	filter := services.ExpenseFilter{DuplicatesOnly: req.DuplicatesOnly}
	if req.Category != "" {
		filter.Category = &req.Category
	}
	if req.FromDate != "" {
		from, _ := time.Parse("2006-01-02", req.FromDate)
		filter.FromDate = &from
	}
	if req.ToDate != "" {
		to, _ := time.Parse("2006-01-02", req.ToDate)
		filter.ToDate = &to
	}

	resp, err := h.expenseService.GetExpenses(req.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetExpenseByID retrieves a single expense.
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateCategory recategorizes a single expense.
func (h *ExpenseHandler) UpdateCategory(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateCategory(expenseID, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// BulkUpdateCategory recategorizes many expenses at once.
func (h *ExpenseHandler) BulkUpdateCategory(c *gin.Context) {
	var req BulkCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.expenseService.BulkUpdateCategory(req.ExpenseIDs, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteExpense removes a single expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// BulkDeleteExpenses removes many expenses at once.
func (h *ExpenseHandler) BulkDeleteExpenses(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deleted, err := h.expenseService.BulkDeleteExpenses(req.ExpenseIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
