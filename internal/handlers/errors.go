package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/pkg/response"
)

// ledgerError translates engine sentinel errors into HTTP responses.
// Input problems are 400, missing records 404, permission failures 403,
// uniqueness and capacity violations 409, and writes rejected because a
// rating's window closed are 422.
func ledgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrRatingNotFound):
		response.Error(c, response.NewNotFound(err.Error()))
	case errors.Is(err, ledger.ErrNotAuthorized):
		response.Error(c, response.NewForbidden(err.Error()))
	case errors.Is(err, ledger.ErrAlreadyRatedPeer),
		errors.Is(err, ledger.ErrBidirectionalRatingExists),
		errors.Is(err, ledger.ErrTooManyRatings),
		errors.Is(err, ledger.ErrTooManyResponses):
		response.Error(c, response.NewConflict(err.Error()))
	case errors.Is(err, ledger.ErrRatingExpired):
		response.Error(c, response.NewUnprocessable(err.Error()))
	case errors.Is(err, ledger.ErrInvalidRatingScore),
		errors.Is(err, ledger.ErrInvalidAspectScore),
		errors.Is(err, ledger.ErrCommentTooLong),
		errors.Is(err, ledger.ErrCannotRateSelf),
		errors.Is(err, ledger.ErrInvalidRatingType):
		response.Error(c, response.NewBadRequest(err.Error()))
	default:
		response.Error(c, response.NewServerError(err.Error()))
	}
}
