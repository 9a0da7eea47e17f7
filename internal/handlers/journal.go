package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/services"
	"github.com/studyring/reputation-backend/pkg/response"
)

type JournalHandler struct {
	journalService *services.JournalService
}

func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// List returns recorded ledger events, newest first.
// GET /api/journal
func (h *JournalHandler) List(c *gin.Context) {
	var req services.JournalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.journalService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, result)
}
