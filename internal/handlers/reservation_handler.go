package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/httpresp"
	ucBooking "github.com/salusbook/api-prenotazioni/internal/usecase/booking"
)

// ======================================================
// HANDLER — RESERVATIONS
// ======================================================

type ReservationHandler struct {
	registry domain.ReservationRegistry

	createUC     *ucBooking.CreateReservation
	updateUC     *ucBooking.UpdateReservation
	cancelUC     *ucBooking.CancelReservation
	listByUserUC *ucBooking.ListUserReservations
}

func NewReservationHandler(
	registry domain.ReservationRegistry,
	createUC *ucBooking.CreateReservation,
	updateUC *ucBooking.UpdateReservation,
	cancelUC *ucBooking.CancelReservation,
	listByUserUC *ucBooking.ListUserReservations,
) *ReservationHandler {
	return &ReservationHandler{
		registry:     registry,
		createUC:     createUC,
		updateUC:     updateUC,
		cancelUC:     cancelUC,
		listByUserUC: listByUserUC,
	}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Status         string `json:"status"`
}

type UpdateReservationRequest struct {
	UserID *uint   `json:"user_id"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
}

// --------- Handlers ---------

// POST /reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), domain.CreateReservationInput{
		UserID:         req.UserID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.ID, "reservation": res})
}

// GET /reservations
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.registry.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	httpresp.List(c, reservations)
}

// GET /reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.registry.Get(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// PUT /reservations/:id
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), id, domain.ReservationUpdate{
		UserID: req.UserID,
		Date:   req.Date,
		Time:   req.Time,
		Status: req.Status,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// DELETE /reservations/:id
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

// GET /reservations/user/:id
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.listByUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}
