package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "payday/internal/errors"
	"payday/internal/schedule"
	"payday/internal/services"
)

// BillHandler handles recurring-bill requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for creating a bill.
type CreateBillRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Category string  `json:"category" binding:"omitempty,bill_category"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	DueDay   int     `json:"due_day" binding:"required,due_day"`
}

// UpdateBillRequest represents the request payload for updating a bill.
// All fields are optional; absent fields are left unchanged.
type UpdateBillRequest struct {
	Name     string   `json:"name" binding:"omitempty,min=1,max=100"`
	Category string   `json:"category" binding:"omitempty,bill_category"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	DueDay   *int     `json:"due_day" binding:"omitempty,due_day"`
	IsActive *bool    `json:"is_active"`
}

// billView pairs a bill with its projected next due date so clients never
// re-implement the month-clamping rules.
func billView(bill any, nextDue time.Time) gin.H {
	return gin.H{"bill": bill, "next_due_date": nextDue.Format("2006-01-02")}
}

// CreateBill handles the creation of a new recurring bill.
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(req.Name, req.Category, req.Amount, req.DueDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, billView(bill, schedule.NextDueDate(bill.DueDay, time.Now())))
}

// GetBills lists all bills with their projected next due dates.
func (h *BillHandler) GetBills(c *gin.Context) {
	bills, err := h.billService.GetBills()
	if err != nil {
		respondWithError(c, err)
		return
	}

	today := time.Now()
	views := make([]gin.H, 0, len(bills))
	for i := range bills {
		views = append(views, billView(&bills[i], schedule.NextDueDate(bills[i].DueDay, today)))
	}
	c.JSON(http.StatusOK, gin.H{"bills": views})
}

// GetBillByID retrieves a single bill.
func (h *BillHandler) GetBillByID(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, billView(bill, schedule.NextDueDate(bill.DueDay, time.Now())))
}

// UpdateBill updates a bill's fields.
func (h *BillHandler) UpdateBill(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBill(billID, req.Name, req.Category, req.Amount, req.DueDay, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, billView(bill, schedule.NextDueDate(bill.DueDay, time.Now())))
}

// DeleteBill removes a bill.
func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

// MarkPaid records that the bill's current cycle has been settled.
func (h *BillHandler) MarkPaid(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.MarkPaid(billID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, billView(bill, schedule.NextDueDate(bill.DueDay, time.Now())))
}

// MarkUnpaid clears the settled marker, putting the bill back on the dashboard.
func (h *BillHandler) MarkUnpaid(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.MarkUnpaid(billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, billView(bill, schedule.NextDueDate(bill.DueDay, time.Now())))
}
