package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/internal/middleware"
	"github.com/studyring/reputation-backend/internal/services"
	"github.com/studyring/reputation-backend/pkg/response"
)

type ReputationHandler struct {
	ledgerService *services.LedgerService
}

func NewReputationHandler(ledgerService *services.LedgerService) *ReputationHandler {
	return &ReputationHandler{ledgerService: ledgerService}
}

// Get returns an account's reputation. Reading recomputes from the live
// rating set first, so stale ratings expire before the score is served.
// GET /api/accounts/:id/reputation
func (h *ReputationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	score := h.ledgerService.GetReputation(middleware.GetRequestID(c), ledger.AccountID(id))
	response.Success(c, score)
}

// ListRatings returns an account's active received rating IDs, optionally
// filtered by kind.
// GET /api/accounts/:id/ratings
func (h *ReputationHandler) ListRatings(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account := ledger.AccountID(id)
	if kindParam := c.Query("kind"); kindParam != "" {
		kind, ok := ledger.ParseRatingKind(kindParam)
		if !ok {
			response.BadRequest(c, "unknown rating kind: "+kindParam)
			return
		}
		ids := h.ledgerService.RatingsByKind(account, kind)
		response.Success(c, gin.H{"rating_ids": ids, "total": len(ids)})
		return
	}

	ids := h.ledgerService.ActiveRatings(account)
	response.Success(c, gin.H{"rating_ids": ids, "total": len(ids)})
}
