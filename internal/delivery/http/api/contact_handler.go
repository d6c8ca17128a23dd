package api

import (
	"fmt"

	"go-jetlab-backend/internal/delivery/http/response"
	"go-jetlab-backend/internal/domain"
	"go-jetlab-backend/pkg/apperror"
	"go-jetlab-backend/pkg/logger"
	"go-jetlab-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	submissionUC  domain.SubmissionUsecase
	fallbackEmail string
}

// NewContactHandler registers the contact form route (public, no auth).
func NewContactHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase, fallbackEmail string) {
	handler := &ContactHandler{
		submissionUC:  submissionUC,
		fallbackEmail: fallbackEmail,
	}

	public.POST("/contact", handler.Submit)
}

// Submit relays a contact form as an email to the operator inbox.
func (h *ContactHandler) Submit(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.Invalid(validation.FirstError(err)))
		return
	}

	messageID, err := h.submissionUC.SendContact(c.Request.Context(), &sub)
	if err != nil {
		logger.Log.Error("contact form delivery failed", "error", err, "request_id", c.GetString("RequestID"))
		c.Error(apperror.Delivery(
			fmt.Sprintf("Failed to send the contact form. Please email us directly at %s.", h.fallbackEmail), err))
		return
	}

	response.Sent(c, "Contact form sent successfully", messageID)
}
