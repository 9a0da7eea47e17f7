package ledger

// ExpireOldRatings scans ratings by ascending id and flips up to limit
// expired ratings inactive, independent of whether their accounts are
// ever recalculated. The limit is clamped to the configured batch cap so
// an external scheduler can amortize sweeping at bounded per-call cost.
// Scores are not recomputed here; only Recalculate does that.
func (l *Ledger) ExpireOldRatings(now Tick, limit int) (int, []Event, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > l.cfg.MaxExpireBatch {
		limit = l.cfg.MaxExpireBatch
	}

	var (
		events    []Event
		processed int
	)
	for id := RatingID(1); id < l.nextRatingID && processed < limit; id++ {
		rating, ok := l.ratings[id]
		if !ok {
			continue
		}
		if rating.Active && now >= rating.ExpiresAt {
			rating.Active = false
			events = append(events, RatingExpired{RatingID: id, Rated: rating.Rated})
			processed++
		}
	}
	return processed, events, nil
}
