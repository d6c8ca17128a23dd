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

type NewsletterHandler struct {
	submissionUC  domain.SubmissionUsecase
	fallbackEmail string
}

// NewNewsletterHandler registers the newsletter signup route (public, no auth).
func NewNewsletterHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase, fallbackEmail string) {
	handler := &NewsletterHandler{
		submissionUC:  submissionUC,
		fallbackEmail: fallbackEmail,
	}

	public.POST("/newsletter", handler.Subscribe)
}

// Subscribe relays a newsletter signup as an email to the operator inbox.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var sub domain.NewsletterSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.Invalid(validation.FirstError(err)))
		return
	}

	messageID, err := h.submissionUC.SubscribeNewsletter(c.Request.Context(), &sub)
	if err != nil {
		logger.Log.Error("newsletter subscription delivery failed", "error", err, "request_id", c.GetString("RequestID"))
		c.Error(apperror.Delivery(
			fmt.Sprintf("Failed to subscribe to the newsletter. Please email us directly at %s.", h.fallbackEmail), err))
		return
	}

	response.Sent(c, "Newsletter subscription confirmed", messageID)
}
