package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"digital-reception-api/internal/models"
	"digital-reception-api/internal/service"
)

// User-facing workflow messages
const (
	msgAlreadyReceived     = "You have already received the brochure"
	msgAlreadyReceivedHint = "You have already signed up and received the brochure at this email. Check your inbox or spam folder."
	msgBrochureSent        = "The brochure has been sent to your email address!"
	msgSendFailed          = "Failed to send email"
	msgSendFailedHint      = "Your details were saved, but the email could not be sent. We will contact you shortly."
	msgServerError         = "Server error"
	msgServerErrorHint     = "Something went wrong. Please try again later."
)

// Signup handles newsletter signup and brochure fulfillment
func (h *Handlers) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Shape mismatches fail closed into the validation branch.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	meta := service.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if meta.IP == "" {
		meta.IP = "unknown"
	}
	if meta.UserAgent == "" {
		meta.UserAgent = "unknown"
	}

	_, err := h.signup.Signup(c.Request.Context(), &req, meta)
	if err == nil {
		c.JSON(http.StatusCreated, SignupResponse{
			Success: true,
			Message: msgBrochureSent,
		})
		return
	}

	var verr *service.ValidationError
	var ferr *service.FulfillmentError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Reason})
	case errors.Is(err, service.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, ConflictResponse{
			Error:         msgAlreadyReceived,
			Message:       msgAlreadyReceivedHint,
			AlreadyExists: true,
		})
	case errors.As(err, &ferr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   msgSendFailed,
			Message: msgSendFailedHint,
		})
	default:
		logrus.Errorf("Newsletter signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   msgServerError,
			Message: msgServerErrorHint,
		})
	}
}

// GetStats returns aggregate subscriber counts
func (h *Handlers) GetStats(c *gin.Context) {
	stats, err := h.signup.Stats(c.Request.Context())
	if err != nil {
		logrus.Errorf("Failed to fetch subscriber stats: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgServerError})
		return
	}
	c.JSON(http.StatusOK, stats)
}
