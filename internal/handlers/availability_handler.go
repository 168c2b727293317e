package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	ucBooking "github.com/salusbook/api-prenotazioni/internal/usecase/booking"
)

// ======================================================
// HANDLER — AVAILABILITY
// ======================================================

type AvailabilityHandler struct {
	addSlotUC    *ucBooking.AddSlot
	revokeSlotUC *ucBooking.RevokeSlot
	listDatesUC  *ucBooking.ListAvailableDates
	listTimesUC  *ucBooking.ListAvailableTimes
}

func NewAvailabilityHandler(
	addSlotUC *ucBooking.AddSlot,
	revokeSlotUC *ucBooking.RevokeSlot,
	listDatesUC *ucBooking.ListAvailableDates,
	listTimesUC *ucBooking.ListAvailableTimes,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		addSlotUC:    addSlotUC,
		revokeSlotUC: revokeSlotUC,
		listDatesUC:  listDatesUC,
		listTimesUC:  listTimesUC,
	}
}

// --------- Requests ---------

type AddSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// --------- Handlers ---------

// POST /professionals/:id/availability
func (h *AvailabilityHandler) AddSlot(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.addSlotUC.Execute(c.Request.Context(), domain.AddSlotInput{
		ProfessionalID: professionalID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

// GET /professionals/:id/availability?from=YYYY-MM-DD
func (h *AvailabilityHandler) ListDates(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	dates, err := h.listDatesUC.Execute(
		c.Request.Context(),
		professionalID,
		c.Query("from"),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_dates": dates})
}

// GET /professionals/:id/availability/times?date=YYYY-MM-DD
func (h *AvailabilityHandler) ListTimes(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	times, err := h.listTimesUC.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_times": times})
}

// DELETE /availability/:id
func (h *AvailabilityHandler) Revoke(c *gin.Context) {
	slotID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.revokeSlotUC.Execute(c.Request.Context(), slotID); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability revoked"})
}
