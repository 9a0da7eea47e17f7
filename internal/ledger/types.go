package ledger

// Tick is the logical time unit supplied by the host with every command.
// It is monotonically non-decreasing and drives expiration and decay math;
// the ledger never reads a wall clock.
type Tick uint64

// AccountID identifies a participant. Resolution of a caller to an
// AccountID is the host's concern (authentication boundary).
type AccountID uint64

// RatingID identifies a rating. Assigned monotonically starting at 1.
type RatingID uint64

// ResponseID identifies a comment response. Monotonic, process-wide.
type ResponseID uint64

// InteractionID references a learning interaction (opaque, issued externally).
type InteractionID uint64

// GroupActivityID references a group activity (opaque, issued externally).
type GroupActivityID uint64

// RatingKind distinguishes the different kinds of ratings.
type RatingKind uint8

const (
	// KindGeneral is a plain rating with no pairing or dedup semantics.
	KindGeneral RatingKind = iota
	// KindStudentToTutor is the student's half of a session pair.
	KindStudentToTutor
	// KindTutorToStudent is the tutor's half of a session pair.
	KindTutorToStudent
	// KindPeerToPeer is a group-activity peer rating, deduplicated per activity.
	KindPeerToPeer
)

func (k RatingKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindStudentToTutor:
		return "student_to_tutor"
	case KindTutorToStudent:
		return "tutor_to_student"
	case KindPeerToPeer:
		return "peer_to_peer"
	default:
		return "unknown"
	}
}

// ParseRatingKind parses the string form produced by String.
func ParseRatingKind(s string) (RatingKind, bool) {
	switch s {
	case "general":
		return KindGeneral, true
	case "student_to_tutor":
		return KindStudentToTutor, true
	case "tutor_to_student":
		return KindTutorToStudent, true
	case "peer_to_peer":
		return KindPeerToPeer, true
	}
	return KindGeneral, false
}

// Aspects holds optional multi-dimensional scores. Each present value must
// be within [MinScore, MaxScore].
type Aspects struct {
	Communication *uint8 `json:"communication,omitempty"`
	Knowledge     *uint8 `json:"knowledge,omitempty"`
	Punctuality   *uint8 `json:"punctuality,omitempty"`
	Engagement    *uint8 `json:"engagement,omitempty"`
	Helpfulness   *uint8 `json:"helpfulness,omitempty"`
}

// Rating is the canonical feedback record. Owned by the ledger; callers
// receive copies. Once Active flips to false it is never reactivated, and
// ExpiresAt is fixed at creation.
type Rating struct {
	ID              RatingID         `json:"id"`
	Rater           AccountID        `json:"rater"`
	Rated           AccountID        `json:"rated"`
	Score           uint8            `json:"score"`
	Comment         string           `json:"comment"`
	InteractionID   *InteractionID   `json:"interaction_id,omitempty"`
	GroupActivityID *GroupActivityID `json:"group_activity_id,omitempty"`
	Kind            RatingKind       `json:"kind"`
	CreatedAt       Tick             `json:"created_at"`
	ExpiresAt       Tick             `json:"expires_at"`
	Active          bool             `json:"active"`
	Aspects         *Aspects         `json:"aspects,omitempty"`
}

// ReputationScore is the derived per-account aggregate, rebuilt from scratch
// on every recalculation. Scores are integer score*100 to avoid fractions.
type ReputationScore struct {
	CurrentScore    uint32 `json:"current_score"`
	HistoricalScore uint32 `json:"historical_score"`
	TotalRatings    uint32 `json:"total_ratings"`
	RecentRatings   uint32 `json:"recent_ratings"`
	LastUpdated     Tick   `json:"last_updated"`
}

// CommentResponse is one entry in a rating's bounded response thread.
// Immutable after creation.
type CommentResponse struct {
	ID        ResponseID `json:"id"`
	Responder AccountID  `json:"responder"`
	Content   string     `json:"content"`
	CreatedAt Tick       `json:"created_at"`
}

// RatingPair links the two halves of a tutoring-session rating exchange,
// keyed by interaction. Each slot is set at most once.
type RatingPair struct {
	StudentRating *RatingID `json:"student_rating,omitempty"`
	TutorRating   *RatingID `json:"tutor_rating,omitempty"`
}

// Complete reports whether both directions have been rated.
func (p RatingPair) Complete() bool {
	return p.StudentRating != nil && p.TutorRating != nil
}
