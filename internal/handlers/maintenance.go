package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/internal/middleware"
	"github.com/studyring/reputation-backend/internal/services"
	"github.com/studyring/reputation-backend/pkg/response"
)

type MaintenanceHandler struct {
	ledgerService *services.LedgerService
}

func NewMaintenanceHandler(ledgerService *services.LedgerService) *MaintenanceHandler {
	return &MaintenanceHandler{ledgerService: ledgerService}
}

type expireRequest struct {
	Limit int `json:"limit"`
}

// Expire runs one bounded expire sweep immediately. A zero or missing
// limit sweeps nothing; limits above the batch cap are clamped.
// POST /api/maintenance/expire
func (h *MaintenanceHandler) Expire(c *gin.Context) {
	var req expireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.ExpireOldRatings(caller(c), middleware.GetRequestID(c), req.Limit)
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Success(c, result)
}

// Recalculate rebuilds one account's reputation from its live ratings.
// POST /api/maintenance/recalculate/:account
func (h *MaintenanceHandler) Recalculate(c *gin.Context) {
	id, ok := pathID(c, "account")
	if !ok {
		return
	}

	score, err := h.ledgerService.ForceRecalculate(caller(c), middleware.GetRequestID(c), ledger.AccountID(id))
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Success(c, score)
}
