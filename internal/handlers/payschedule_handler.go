package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "payday/internal/errors"
	"payday/internal/services"
)

// PayScheduleHandler handles pay-schedule configuration requests.
type PayScheduleHandler struct {
	payScheduleService services.PayScheduleServicer
}

// NewPayScheduleHandler creates a new PayScheduleHandler.
func NewPayScheduleHandler(payScheduleService services.PayScheduleServicer) *PayScheduleHandler {
	return &PayScheduleHandler{payScheduleService: payScheduleService}
}

// SavePayScheduleRequest represents the request payload for anchoring the
// bi-weekly cycle to a known payday.
type SavePayScheduleRequest struct {
	AnchorPayday string `json:"anchor_payday" binding:"required,datetime=2006-01-02"`
}

// SavePaySchedule records a new anchor payday. Earlier anchors are kept for
// history; the latest one wins.
func (h *PayScheduleHandler) SavePaySchedule(c *gin.Context) {
	var req SavePayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	anchor, _ := time.Parse("2006-01-02", req.AnchorPayday)
	sched, err := h.payScheduleService.Save(anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pay_schedule": sched})
}

// GetPaySchedule returns the active anchor payday.
func (h *PayScheduleHandler) GetPaySchedule(c *gin.Context) {
	sched, err := h.payScheduleService.Current()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pay_schedule": sched})
}

// GetCurrentPeriod returns the 14-day pay period containing today. When no
// schedule has been saved the trailing fallback window is returned instead
// of an error, flagged so clients can prompt for an anchor.
func (h *PayScheduleHandler) GetCurrentPeriod(c *gin.Context) {
	period, err := h.payScheduleService.CurrentPeriod(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}
