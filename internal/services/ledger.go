package services

import (
	"sync"

	"github.com/studyring/reputation-backend/internal/clock"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/pkg/logger"
)

// LedgerService is the single-writer host around the reputation engine.
// Every command takes the mutex, reads the current tick once, applies the
// engine transition atomically, and journals the emitted events. The
// engine assumes no concurrent mutation; this mutex is that guarantee.
type LedgerService struct {
	mu      sync.Mutex
	engine  *ledger.Ledger
	clock   *clock.LogicalClock
	journal *JournalService
}

func NewLedgerService(engine *ledger.Ledger, clk *clock.LogicalClock, journal *JournalService) *LedgerService {
	return &LedgerService{engine: engine, clock: clk, journal: journal}
}

// --- request/response types ---

type CreateRatingRequest struct {
	Rated         uint64          `json:"rated" binding:"required"`
	Score         uint8           `json:"score" binding:"required"`
	Comment       string          `json:"comment"`
	InteractionID *uint64         `json:"interaction_id"`
	GroupActivity *uint64         `json:"group_activity_id"`
	Kind          string          `json:"kind"`
	Aspects       *ledger.Aspects `json:"aspects"`
}

type UpdateRatingRequest struct {
	NewScore   uint8           `json:"new_score" binding:"required"`
	NewComment *string         `json:"new_comment"`
	NewAspects *ledger.Aspects `json:"new_aspects"`
}

type CreatePeerRatingRequest struct {
	Rated         uint64          `json:"rated" binding:"required"`
	GroupActivity uint64          `json:"group_activity_id" binding:"required"`
	Score         uint8           `json:"score" binding:"required"`
	Comment       string          `json:"comment"`
	Aspects       *ledger.Aspects `json:"aspects"`
}

type AddResponseRequest struct {
	Content string `json:"content" binding:"required"`
}

type RatingResult struct {
	Rating ledger.Rating `json:"rating"`
	Tick   uint64        `json:"tick"`
}

type ExpireResult struct {
	Processed int    `json:"processed"`
	Tick      uint64 `json:"tick"`
}

// --- commands ---

// CreateRating handles both the simple and the detailed form: an empty
// kind means a general rating.
func (s *LedgerService) CreateRating(caller ledger.AccountID, requestID string, req *CreateRatingRequest) (*RatingResult, error) {
	kind := ledger.KindGeneral
	if req.Kind != "" {
		var ok bool
		if kind, ok = ledger.ParseRatingKind(req.Kind); !ok {
			return nil, ledger.ErrInvalidRatingType
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	id, events, err := s.engine.CreateDetailedRating(now, caller, ledger.AccountID(req.Rated),
		req.Score, req.Comment, interactionRef(req.InteractionID), activityRef(req.GroupActivity), kind, req.Aspects)
	if err != nil {
		return nil, err
	}

	s.journal.Record("create_rating", caller, now, requestID, events)
	logger.Info().
		Uint64("rating_id", uint64(id)).
		Uint64("rater", uint64(caller)).
		Uint64("rated", req.Rated).
		Uint8("score", req.Score).
		Str("kind", kind.String()).
		Msg("rating created")

	rating, _ := s.engine.GetRating(id)
	return &RatingResult{Rating: rating, Tick: uint64(now)}, nil
}

func (s *LedgerService) UpdateRating(caller ledger.AccountID, requestID string, id ledger.RatingID, req *UpdateRatingRequest) (*RatingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	events, err := s.engine.UpdateRating(now, caller, id, req.NewScore, req.NewComment, req.NewAspects)
	if err != nil {
		return nil, err
	}

	s.journal.Record("update_rating", caller, now, requestID, events)
	logger.Info().
		Uint64("rating_id", uint64(id)).
		Uint8("new_score", req.NewScore).
		Msg("rating updated")

	rating, _ := s.engine.GetRating(id)
	return &RatingResult{Rating: rating, Tick: uint64(now)}, nil
}

func (s *LedgerService) CreatePeerRating(caller ledger.AccountID, requestID string, req *CreatePeerRatingRequest) (*RatingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	id, events, err := s.engine.CreatePeerRating(now, caller, ledger.AccountID(req.Rated),
		ledger.GroupActivityID(req.GroupActivity), req.Score, req.Comment, req.Aspects)
	if err != nil {
		return nil, err
	}

	s.journal.Record("create_peer_rating", caller, now, requestID, events)
	rating, _ := s.engine.GetRating(id)
	return &RatingResult{Rating: rating, Tick: uint64(now)}, nil
}

func (s *LedgerService) AddCommentResponse(caller ledger.AccountID, requestID string, id ledger.RatingID, req *AddResponseRequest) (ledger.ResponseID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	responseID, events, err := s.engine.AddCommentResponse(now, caller, id, req.Content)
	if err != nil {
		return 0, err
	}

	s.journal.Record("add_comment_response", caller, now, requestID, events)
	return responseID, nil
}

// ExpireOldRatings runs one bounded sweep batch.
func (s *LedgerService) ExpireOldRatings(caller ledger.AccountID, requestID string, limit int) (*ExpireResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	processed, events, err := s.engine.ExpireOldRatings(now, limit)
	if err != nil {
		return nil, err
	}

	s.journal.Record("expire_old_ratings", caller, now, requestID, events)
	if processed > 0 {
		logger.Info().Int("processed", processed).Uint64("tick", uint64(now)).Msg("sweep expired ratings")
	}
	return &ExpireResult{Processed: processed, Tick: uint64(now)}, nil
}

// ForceRecalculate rebuilds one account's reputation.
func (s *LedgerService) ForceRecalculate(caller ledger.AccountID, requestID string, account ledger.AccountID) (ledger.ReputationScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	score, events, err := s.engine.Recalculate(now, account)
	if err != nil {
		return ledger.ReputationScore{}, err
	}

	s.journal.Record("force_recalculate", caller, now, requestID, events)
	return score, nil
}

// --- queries ---

// GetReputation recalculates before reading, so it runs under the command
// lock like any mutation.
func (s *LedgerService) GetReputation(requestID string, account ledger.AccountID) ledger.ReputationScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	score, events := s.engine.GetReputation(now, account)
	s.journal.Record("get_reputation", account, now, requestID, events)
	return score
}

func (s *LedgerService) GetRating(id ledger.RatingID) (ledger.Rating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetRating(id)
}

func (s *LedgerService) ActiveRatings(account ledger.AccountID) []ledger.RatingID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ActiveRatings(s.clock.Now(), account)
}

func (s *LedgerService) RatingsByKind(account ledger.AccountID, kind ledger.RatingKind) []ledger.RatingID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.RatingsByKind(account, kind)
}

func (s *LedgerService) CommentResponses(id ledger.RatingID) []ledger.CommentResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CommentResponses(id)
}

func (s *LedgerService) Pair(interaction ledger.InteractionID) (ledger.RatingPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Pair(interaction)
}

func (s *LedgerService) HasPeerRating(rater, rated ledger.AccountID, activity ledger.GroupActivityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.HasPeerRating(rater, rated, activity)
}

func interactionRef(v *uint64) *ledger.InteractionID {
	if v == nil {
		return nil
	}
	id := ledger.InteractionID(*v)
	return &id
}

func activityRef(v *uint64) *ledger.GroupActivityID {
	if v == nil {
		return nil
	}
	id := ledger.GroupActivityID(*v)
	return &id
}
