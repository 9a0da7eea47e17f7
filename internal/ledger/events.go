package ledger

// Event is a notification emitted by a successful command. The ledger
// returns emitted events to the caller; delivery (journal, log, channel)
// is the host's decision.
type Event interface {
	// EventName returns a stable dotted identifier for the event kind.
	EventName() string
}

// RatingCreated is emitted after a new rating is stored and the rated
// account's reputation has been recalculated.
type RatingCreated struct {
	RatingID      RatingID       `json:"rating_id"`
	Rater         AccountID      `json:"rater"`
	Rated         AccountID      `json:"rated"`
	Score         uint8          `json:"score"`
	Kind          RatingKind     `json:"kind"`
	InteractionID *InteractionID `json:"interaction_id,omitempty"`
}

func (RatingCreated) EventName() string { return "rating.created" }

// RatingUpdated is emitted after the original rater changes a rating.
type RatingUpdated struct {
	RatingID RatingID `json:"rating_id"`
	NewScore uint8    `json:"new_score"`
}

func (RatingUpdated) EventName() string { return "rating.updated" }

// RatingExpired is emitted exactly once per rating, when its active flag
// flips, either lazily during recalculation or by the batch sweep.
type RatingExpired struct {
	RatingID RatingID  `json:"rating_id"`
	Rated    AccountID `json:"rated"`
}

func (RatingExpired) EventName() string { return "rating.expired" }

// ReputationUpdated is emitted every time an account's score is rebuilt.
type ReputationUpdated struct {
	Account      AccountID `json:"account"`
	NewScore     uint32    `json:"new_score"`
	TotalRatings uint32    `json:"total_ratings"`
}

func (ReputationUpdated) EventName() string { return "reputation.updated" }

// CommentResponseAdded is emitted when a response is appended to a thread.
type CommentResponseAdded struct {
	RatingID   RatingID   `json:"rating_id"`
	ResponseID ResponseID `json:"response_id"`
	Responder  AccountID  `json:"responder"`
}

func (CommentResponseAdded) EventName() string { return "comment.response_added" }

// PeerRatingCreated is emitted alongside RatingCreated for peer ratings.
type PeerRatingCreated struct {
	RatingID        RatingID        `json:"rating_id"`
	GroupActivityID GroupActivityID `json:"group_activity_id"`
	Rater           AccountID       `json:"rater"`
	Rated           AccountID       `json:"rated"`
}

func (PeerRatingCreated) EventName() string { return "rating.peer_created" }

// BidirectionalRatingCompleted is emitted exactly once, when the second
// half of a session pair lands.
type BidirectionalRatingCompleted struct {
	InteractionID InteractionID `json:"interaction_id"`
	StudentRating RatingID      `json:"student_rating"`
	TutorRating   RatingID      `json:"tutor_rating"`
}

func (BidirectionalRatingCompleted) EventName() string { return "rating.pair_completed" }
