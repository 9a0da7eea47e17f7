package ledger

// Read-only queries. All return copies; callers never see ledger-owned
// state. GetReputation is the exception to "read-only": per the reference
// behavior, reading a reputation recalculates it first, so hosts must
// route it through the command path.

// GetRating returns a copy of the rating, if it exists.
func (l *Ledger) GetRating(id RatingID) (Rating, bool) {
	rating, ok := l.ratings[id]
	if !ok {
		return Rating{}, false
	}
	return *rating, true
}

// GetReputation recalculates and returns the account's reputation
// ("read recalculates"): stale ratings expire as a side effect.
func (l *Ledger) GetReputation(now Tick, account AccountID) (ReputationScore, []Event) {
	return l.recalculate(now, account)
}

// StoredReputation returns the last stored score without recalculating.
func (l *Ledger) StoredReputation(account AccountID) ReputationScore {
	return l.scores[account]
}

// ActiveRatings returns the ids of unexpired active ratings received by
// the account, in creation order.
func (l *Ledger) ActiveRatings(now Tick, account AccountID) []RatingID {
	var out []RatingID
	for _, id := range l.received[account].IDs() {
		if rating, ok := l.ratings[id]; ok && rating.Active && now < rating.ExpiresAt {
			out = append(out, id)
		}
	}
	return out
}

// RatingsByKind returns the ids of active ratings of the given kind
// received by the account.
func (l *Ledger) RatingsByKind(account AccountID, kind RatingKind) []RatingID {
	var out []RatingID
	for _, id := range l.received[account].IDs() {
		if rating, ok := l.ratings[id]; ok && rating.Active && rating.Kind == kind {
			out = append(out, id)
		}
	}
	return out
}

// RatingsGiven returns the ids of ratings authored by the account.
func (l *Ledger) RatingsGiven(account AccountID) []RatingID {
	return l.given[account].IDs()
}

// RatingsReceived returns the ids of ratings received by the account.
func (l *Ledger) RatingsReceived(account AccountID) []RatingID {
	return l.received[account].IDs()
}

// CommentResponses returns the rating's thread in append order.
func (l *Ledger) CommentResponses(id RatingID) []CommentResponse {
	thread := l.responses[id]
	if len(thread) == 0 {
		return nil
	}
	out := make([]CommentResponse, len(thread))
	copy(out, thread)
	return out
}

// Pair returns the rating pair recorded for the interaction.
func (l *Ledger) Pair(interaction InteractionID) (RatingPair, bool) {
	pair, ok := l.pairs[interaction]
	if !ok {
		return RatingPair{}, false
	}
	return *pair, true
}

// GroupActivityRatings returns the peer-rating ids recorded for the
// activity, in creation order.
func (l *Ledger) GroupActivityRatings(activity GroupActivityID) []RatingID {
	return l.groups[activity].IDs()
}

// HasPeerRating reports whether rater already rated rated within the
// activity. Dedup is scoped per activity: the same pair in a different
// activity is allowed.
func (l *Ledger) HasPeerRating(rater, rated AccountID, activity GroupActivityID) bool {
	for _, id := range l.groups[activity].IDs() {
		if rating, ok := l.ratings[id]; ok && rating.Rater == rater && rating.Rated == rated {
			return true
		}
	}
	return false
}
