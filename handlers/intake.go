package handlers

import (
	"errors"
	"net/http"

	"brightwater/models"
	"brightwater/services/intake"
	"brightwater/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler exposes the contact and booking submission endpoints.
type IntakeHandler struct {
	Svc    intake.Service
	Logger *zap.Logger
}

func NewIntakeHandler(svc intake.Service, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{Svc: svc, Logger: logger}
}

// SubmitContactHandler handles POST /contact.
func (h *IntakeHandler) SubmitContactHandler(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	outcome, err := h.Svc.SubmitContact(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "SubmitContact", err)
		return
	}

	c.JSON(http.StatusOK, models.ContactResponse{
		Success:     true,
		Message:     outcome.Message,
		ReferenceID: outcome.ReferenceID,
	})
}

// SubmitBookingHandler handles POST /bookings.
func (h *IntakeHandler) SubmitBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	outcome, err := h.Svc.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "SubmitBooking", err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success:           true,
		Message:           outcome.Message,
		BookingID:         outcome.BookingID,
		ConfirmationToken: outcome.ConfirmationToken,
	})
}

// respondError maps a validation failure to a 400 with field detail and
// anything else to the opaque 500 body.
func (h *IntakeHandler) respondError(c *gin.Context, op string, err error) {
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please check the form fields and try again.",
			"errors":  verr.Violations,
		})
		return
	}

	h.Logger.Error(op+": unexpected failure", zap.Error(err))
	utils.JSONFailure(c, http.StatusInternalServerError, utils.GenericFailureMessage)
}
