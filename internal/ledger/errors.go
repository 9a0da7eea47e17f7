package ledger

import "errors"

// Command failures. Every error aborts the command with no partial effect;
// callers compare with errors.Is.
var (
	// Input errors
	ErrInvalidRatingScore = errors.New("rating score must be between 1 and 5")
	ErrInvalidAspectScore = errors.New("aspect score must be between 1 and 5")
	ErrCommentTooLong     = errors.New("comment exceeds maximum length")
	ErrCannotRateSelf     = errors.New("cannot rate yourself")

	// State errors
	ErrRatingNotFound            = errors.New("rating not found")
	ErrRatingExpired             = errors.New("rating is inactive or expired")
	ErrBidirectionalRatingExists = errors.New("rating for this direction already exists")
	ErrAlreadyRatedPeer          = errors.New("peer already rated in this group activity")
	ErrInvalidRatingType         = errors.New("invalid rating type for this operation")

	// Authorization errors
	ErrNotAuthorized = errors.New("not authorized")

	// Resource-limit errors
	ErrTooManyResponses = errors.New("comment response limit reached")
	ErrTooManyRatings   = errors.New("rating index capacity reached")

	// Arithmetic errors. Accumulations saturate, so this stays unreachable
	// through the public API.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
