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

type QuizHandler struct {
	submissionUC  domain.SubmissionUsecase
	fallbackEmail string
}

// NewQuizHandler registers the consultation quiz route (public, no auth).
func NewQuizHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase, fallbackEmail string) {
	handler := &QuizHandler{
		submissionUC:  submissionUC,
		fallbackEmail: fallbackEmail,
	}

	public.POST("/quiz", handler.Submit)
}

// Submit relays a consultation quiz as an email to the operator inbox.
func (h *QuizHandler) Submit(c *gin.Context) {
	var sub domain.QuizSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.Invalid(validation.FirstError(err)))
		return
	}

	messageID, err := h.submissionUC.SendQuiz(c.Request.Context(), &sub)
	if err != nil {
		logger.Log.Error("quiz form delivery failed", "error", err, "request_id", c.GetString("RequestID"))
		c.Error(apperror.Delivery(
			fmt.Sprintf("Failed to send the consultation request. Please email us directly at %s.", h.fallbackEmail), err))
		return
	}

	response.Sent(c, "Consultation request sent successfully", messageID)
}
