package ledger

// Score bounds on the 1-5 scale.
const (
	MinScore uint8 = 1
	MaxScore uint8 = 5
)

// Defaults matching the production deployment (the horizon is 30 days at
// one tick per 6 seconds).
const (
	DefaultExpirationTicks     Tick = 432_000
	DefaultMaxCommentLength         = 500
	DefaultMaxRatingsPerAccount     = 1000
	DefaultMaxCommentResponses      = 10
	DefaultMaxPeerRatings           = 50
	DefaultMaxExpireBatch           = 100
)

// Config carries the ledger's bounds. Zero values are replaced with the
// defaults by New.
type Config struct {
	ExpirationTicks      Tick
	MaxCommentLength     int
	MaxRatingsPerAccount int
	MaxCommentResponses  int
	MaxPeerRatings       int
	MaxExpireBatch       int
}

// DefaultConfig returns the production bounds.
func DefaultConfig() Config {
	return Config{
		ExpirationTicks:      DefaultExpirationTicks,
		MaxCommentLength:     DefaultMaxCommentLength,
		MaxRatingsPerAccount: DefaultMaxRatingsPerAccount,
		MaxCommentResponses:  DefaultMaxCommentResponses,
		MaxPeerRatings:       DefaultMaxPeerRatings,
		MaxExpireBatch:       DefaultMaxExpireBatch,
	}
}

// Ledger owns the canonical rating records and every derived index. It is
// a plain in-memory state machine: commands are applied sequentially and
// atomically, the caller supplies the current tick, and each successful
// command returns the events it emitted. The host must serialize access
// (a single goroutine or an external lock); the ledger itself holds no
// locks and performs no I/O.
type Ledger struct {
	cfg Config

	ratings   map[RatingID]*Rating
	scores    map[AccountID]ReputationScore
	given     map[AccountID]*idList
	received  map[AccountID]*idList
	responses map[RatingID][]CommentResponse
	groups    map[GroupActivityID]*idList
	pairs     map[InteractionID]*RatingPair

	nextRatingID   RatingID
	nextResponseID ResponseID
}

// New creates an empty ledger. Zero config fields fall back to defaults.
func New(cfg Config) *Ledger {
	def := DefaultConfig()
	if cfg.ExpirationTicks == 0 {
		cfg.ExpirationTicks = def.ExpirationTicks
	}
	if cfg.MaxCommentLength == 0 {
		cfg.MaxCommentLength = def.MaxCommentLength
	}
	if cfg.MaxRatingsPerAccount == 0 {
		cfg.MaxRatingsPerAccount = def.MaxRatingsPerAccount
	}
	if cfg.MaxCommentResponses == 0 {
		cfg.MaxCommentResponses = def.MaxCommentResponses
	}
	if cfg.MaxPeerRatings == 0 {
		cfg.MaxPeerRatings = def.MaxPeerRatings
	}
	if cfg.MaxExpireBatch == 0 {
		cfg.MaxExpireBatch = def.MaxExpireBatch
	}
	return &Ledger{
		cfg:            cfg,
		ratings:        make(map[RatingID]*Rating),
		scores:         make(map[AccountID]ReputationScore),
		given:          make(map[AccountID]*idList),
		received:       make(map[AccountID]*idList),
		responses:      make(map[RatingID][]CommentResponse),
		groups:         make(map[GroupActivityID]*idList),
		pairs:          make(map[InteractionID]*RatingPair),
		nextRatingID:   1,
		nextResponseID: 1,
	}
}

// Horizon returns the configured expiration horizon in ticks.
func (l *Ledger) Horizon() Tick { return l.cfg.ExpirationTicks }

// NextRatingID returns the id the next created rating will receive.
func (l *Ledger) NextRatingID() RatingID { return l.nextRatingID }

// CreateRating creates a general rating. Equivalent to CreateDetailedRating
// with kind KindGeneral and no group activity or aspects.
func (l *Ledger) CreateRating(now Tick, rater, rated AccountID, score uint8, comment string, interaction *InteractionID) (RatingID, []Event, error) {
	return l.CreateDetailedRating(now, rater, rated, score, comment, interaction, nil, KindGeneral, nil)
}

// CreateDetailedRating creates a rating with kind and optional aspect
// scores, dispatching pairing (session kinds with an interaction ref) and
// peer deduplication (peer kind with an activity ref). Every precondition
// is checked before the first write, so a failure leaves no trace.
func (l *Ledger) CreateDetailedRating(now Tick, rater, rated AccountID, score uint8, comment string,
	interaction *InteractionID, activity *GroupActivityID, kind RatingKind, aspects *Aspects) (RatingID, []Event, error) {

	if err := l.validateParties(rater, rated); err != nil {
		return 0, nil, err
	}
	if err := l.validateScore(score); err != nil {
		return 0, nil, err
	}
	if err := l.validateComment(comment); err != nil {
		return 0, nil, err
	}
	if err := l.validateAspects(aspects); err != nil {
		return 0, nil, err
	}
	if l.indexFull(l.given, rater) || l.indexFull(l.received, rated) {
		return 0, nil, ErrTooManyRatings
	}
	switch kind {
	case KindPeerToPeer:
		if activity != nil {
			if l.HasPeerRating(rater, rated, *activity) {
				return 0, nil, ErrAlreadyRatedPeer
			}
			if g, ok := l.groups[*activity]; ok && g.Full() {
				return 0, nil, ErrTooManyRatings
			}
		}
	case KindStudentToTutor, KindTutorToStudent:
		if interaction != nil {
			if err := l.checkPairSlot(*interaction, kind); err != nil {
				return 0, nil, err
			}
		}
	}

	id := l.nextRatingID
	rating := &Rating{
		ID:              id,
		Rater:           rater,
		Rated:           rated,
		Score:           score,
		Comment:         comment,
		InteractionID:   interaction,
		GroupActivityID: activity,
		Kind:            kind,
		CreatedAt:       now,
		ExpiresAt:       now + l.cfg.ExpirationTicks,
		Active:          true,
		Aspects:         aspects,
	}
	l.ratings[id] = rating
	l.index(l.given, rater).Push(id)
	l.index(l.received, rated).Push(id)

	var events []Event
	switch kind {
	case KindPeerToPeer:
		if activity != nil {
			l.group(*activity).Push(id)
			events = append(events, PeerRatingCreated{
				RatingID:        id,
				GroupActivityID: *activity,
				Rater:           rater,
				Rated:           rated,
			})
		}
	case KindStudentToTutor, KindTutorToStudent:
		if interaction != nil {
			events = append(events, l.bindPairSlot(*interaction, id, kind)...)
		}
	}
	l.nextRatingID++

	_, recalcEvents := l.recalculate(now, rated)
	events = append(events, recalcEvents...)
	events = append(events, RatingCreated{
		RatingID:      id,
		Rater:         rater,
		Rated:         rated,
		Score:         score,
		Kind:          kind,
		InteractionID: interaction,
	})
	return id, events, nil
}

// CreatePeerRating creates a peer rating for a group activity, enforcing
// one rating per (rater, rated) pair within the activity.
func (l *Ledger) CreatePeerRating(now Tick, rater, rated AccountID, activity GroupActivityID, score uint8, comment string, aspects *Aspects) (RatingID, []Event, error) {
	return l.CreateDetailedRating(now, rater, rated, score, comment, nil, &activity, KindPeerToPeer, aspects)
}

// UpdateRating lets the original rater change the score and, optionally,
// the comment and aspects. Absent fields keep their current value. The
// rating must still be active and before its expiration tick; ExpiresAt
// is never altered by an update.
func (l *Ledger) UpdateRating(now Tick, caller AccountID, id RatingID, newScore uint8, newComment *string, newAspects *Aspects) ([]Event, error) {
	if err := l.validateScore(newScore); err != nil {
		return nil, err
	}
	if err := l.validateAspects(newAspects); err != nil {
		return nil, err
	}
	if newComment != nil {
		if err := l.validateComment(*newComment); err != nil {
			return nil, err
		}
	}

	rating, ok := l.ratings[id]
	if !ok {
		return nil, ErrRatingNotFound
	}
	if rating.Rater != caller {
		return nil, ErrNotAuthorized
	}
	if !rating.Active || now >= rating.ExpiresAt {
		return nil, ErrRatingExpired
	}

	rating.Score = newScore
	if newComment != nil {
		rating.Comment = *newComment
	}
	if newAspects != nil {
		rating.Aspects = newAspects
	}

	_, events := l.recalculate(now, rating.Rated)
	events = append(events, RatingUpdated{RatingID: id, NewScore: newScore})
	return events, nil
}

func (l *Ledger) index(m map[AccountID]*idList, account AccountID) *idList {
	list, ok := m[account]
	if !ok {
		list = newIDList(l.cfg.MaxRatingsPerAccount)
		m[account] = list
	}
	return list
}

func (l *Ledger) indexFull(m map[AccountID]*idList, account AccountID) bool {
	list, ok := m[account]
	return ok && list.Full()
}

func (l *Ledger) group(activity GroupActivityID) *idList {
	list, ok := l.groups[activity]
	if !ok {
		list = newIDList(l.cfg.MaxPeerRatings)
		l.groups[activity] = list
	}
	return list
}
