package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "payday/internal/errors"
	"payday/internal/services"
)

// PaycheckHandler handles recorded-paycheck requests.
type PaycheckHandler struct {
	paycheckService services.PaycheckServicer
}

// NewPaycheckHandler creates a new PaycheckHandler.
func NewPaycheckHandler(paycheckService services.PaycheckServicer) *PaycheckHandler {
	return &PaycheckHandler{paycheckService: paycheckService}
}

// CreatePaycheckRequest represents the request payload for recording a paycheck.
type CreatePaycheckRequest struct {
	Source  string  `json:"source" binding:"omitempty,max=100"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	PayDate string  `json:"pay_date" binding:"required,datetime=2006-01-02"`
}

// UpdatePaycheckRequest represents the request payload for updating a paycheck.
type UpdatePaycheckRequest struct {
	Source  string   `json:"source" binding:"omitempty,max=100"`
	Amount  *float64 `json:"amount" binding:"omitempty,gt=0"`
	PayDate *string  `json:"pay_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreatePaycheck records a received or expected paycheck.
func (h *PaycheckHandler) CreatePaycheck(c *gin.Context) {
	var req CreatePaycheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payDate, _ := time.Parse("2006-01-02", req.PayDate)
	paycheck, err := h.paycheckService.CreatePaycheck(req.Source, req.Amount, payDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"paycheck": paycheck})
}

// GetPaychecks lists paychecks, most recent first. An optional ?month=2006-01
// query narrows the list to one calendar month.
func (h *PaycheckHandler) GetPaychecks(c *gin.Context) {
	var month *time.Time
	if m := c.Query("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month, expected YYYY-MM"))
			return
		}
		month = &parsed
	}

	paychecks, err := h.paycheckService.GetPaychecks(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paychecks": paychecks})
}

// GetPaycheckByID retrieves a single paycheck.
func (h *PaycheckHandler) GetPaycheckByID(c *gin.Context) {
	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheck, err := h.paycheckService.GetPaycheckByID(paycheckID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paycheck": paycheck})
}

// UpdatePaycheck updates a paycheck's fields.
func (h *PaycheckHandler) UpdatePaycheck(c *gin.Context) {
	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaycheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var payDate *time.Time
	if req.PayDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.PayDate)
		payDate = &parsed
	}

	paycheck, err := h.paycheckService.UpdatePaycheck(paycheckID, req.Source, req.Amount, payDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paycheck": paycheck})
}

// DeletePaycheck removes a paycheck.
func (h *PaycheckHandler) DeletePaycheck(c *gin.Context) {
	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paycheckService.DeletePaycheck(paycheckID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paycheck deleted successfully"})
}
