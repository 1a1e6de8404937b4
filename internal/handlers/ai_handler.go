package handlers

import (
	"context"
	"errors"
	"net/http"

	"quizhub/internal/ai"
	"quizhub/internal/models"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	Generator *ai.Generator
}

func NewAIHandler(g *ai.Generator) *AIHandler {
	return &AIHandler{Generator: g}
}

// Generate forwards the instruction to the text service and returns reviewed
// drafts. An unparseable reply is a 200 with the raw text so the admin can fix
// it by hand; only upstream failures are 5xx.
func (h *AIHandler) Generate(c *gin.Context) {
	var req ai.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drafts, err := h.Generator.Generate(context.Background(), &req)
	if err != nil {
		var verr *models.ValidationError
		var unparseable *ai.UnparseableError
		var upstream *ai.UpstreamError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		case errors.As(err, &unparseable):
			c.JSON(http.StatusOK, gin.H{"error": unparseable.Error(), "raw": unparseable.Raw})
		case errors.As(err, &upstream):
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ai.ReviewAll(drafts, req.Instruction()))
}
