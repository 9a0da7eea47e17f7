package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/internal/middleware"
	"github.com/studyring/reputation-backend/internal/services"
	"github.com/studyring/reputation-backend/pkg/response"
)

type RatingHandler struct {
	ledgerService *services.LedgerService
}

func NewRatingHandler(ledgerService *services.LedgerService) *RatingHandler {
	return &RatingHandler{ledgerService: ledgerService}
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func caller(c *gin.Context) ledger.AccountID {
	return ledger.AccountID(middleware.GetUserID(c))
}

// Create submits a rating. An empty kind means a general rating; the
// detailed kinds participate in bidirectional pairing when an
// interaction ID is given.
// POST /api/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req services.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.CreateRating(caller(c), middleware.GetRequestID(c), &req)
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Created(c, result)
}

// CreatePeer submits a peer rating inside a group activity.
// POST /api/peer-ratings
func (h *RatingHandler) CreatePeer(c *gin.Context) {
	var req services.CreatePeerRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.CreatePeerRating(caller(c), middleware.GetRequestID(c), &req)
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Created(c, result)
}

// Update revises the caller's own rating while it is still active.
// PUT /api/ratings/:id
func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.UpdateRating(caller(c), middleware.GetRequestID(c), ledger.RatingID(id), &req)
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Success(c, result)
}

// Get returns a single rating by ID.
// GET /api/ratings/:id
func (h *RatingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rating, found := h.ledgerService.GetRating(ledger.RatingID(id))
	if !found {
		response.NotFound(c, "rating not found")
		return
	}

	response.Success(c, rating)
}

// AddResponse appends a threaded reply under a rating's comment.
// POST /api/ratings/:id/responses
func (h *RatingHandler) AddResponse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	respID, err := h.ledgerService.AddCommentResponse(caller(c), middleware.GetRequestID(c), ledger.RatingID(id), &req)
	if err != nil {
		ledgerError(c, err)
		return
	}

	response.Created(c, gin.H{"response_id": respID})
}

// ListResponses returns a rating's reply thread in insertion order.
// GET /api/ratings/:id/responses
func (h *RatingHandler) ListResponses(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	responses := h.ledgerService.CommentResponses(ledger.RatingID(id))
	response.Success(c, gin.H{"responses": responses, "total": len(responses)})
}

// GetPair returns the student/tutor rating pair for an interaction.
// GET /api/interactions/:id/pair
func (h *RatingHandler) GetPair(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pair, found := h.ledgerService.Pair(ledger.InteractionID(id))
	if !found {
		response.NotFound(c, "no ratings recorded for interaction")
		return
	}

	response.Success(c, gin.H{"pair": pair, "complete": pair.Complete()})
}

// CheckPeerRating reports whether rater already rated rated within an
// activity. Direction matters: rating back is a separate record.
// GET /api/group-activities/:id/rated
func (h *RatingHandler) CheckPeerRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rater, err := strconv.ParseUint(c.Query("rater"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid rater")
		return
	}
	rated, err := strconv.ParseUint(c.Query("rated"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid rated")
		return
	}

	exists := h.ledgerService.HasPeerRating(
		ledger.AccountID(rater), ledger.AccountID(rated), ledger.GroupActivityID(id))
	response.Success(c, gin.H{"exists": exists})
}
