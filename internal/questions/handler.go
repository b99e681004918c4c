package questions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfqa-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ask", h.ask)
}

type askRequest struct {
	DocumentID int64  `json:"document_id"`
	Question   string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("documentId", req.DocumentID)

	answer, err := h.Svc.Ask(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			// Flat body kept for API clients that match on it.
			respond.JSON(c, http.StatusNotFound, gin.H{"error": "Document not found"})
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		case errors.Is(err, ErrAnswerTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "qa_timeout", "question answering timed out", nil)
		case errors.Is(err, ErrAnswerFailed):
			respond.Error(c, http.StatusBadGateway, "qa_error", "question answering failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	respond.OK(c, askResponse{Answer: answer})
}
