package ledger

// Recalculate rebuilds the account's reputation from its received ratings
// and overwrites the stored score. Ratings past their expiration tick are
// flipped inactive on the way (one RatingExpired event each). The function
// is the single source of truth for ReputationScore and is idempotent:
// with no intervening commands, a second call at the same tick produces
// the same score.
func (l *Ledger) Recalculate(now Tick, account AccountID) (ReputationScore, []Event, error) {
	score, events := l.recalculate(now, account)
	return score, events, nil
}

func (l *Ledger) recalculate(now Tick, account AccountID) (ReputationScore, []Event) {
	var (
		events       []Event
		totalScore   uint32
		totalRatings uint32
		recentScore  uint32
		recentCount  uint32
	)

	for _, id := range l.received[account].IDs() {
		rating, ok := l.ratings[id]
		if !ok {
			continue
		}
		if now >= rating.ExpiresAt && rating.Active {
			rating.Active = false
			events = append(events, RatingExpired{RatingID: id, Rated: account})
			continue
		}
		if !rating.Active {
			continue
		}

		totalScore = satAdd32(totalScore, uint32(rating.Score)*100)
		totalRatings = satAdd32(totalRatings, 1)

		age := now - rating.CreatedAt
		if age < l.cfg.ExpirationTicks {
			weight := timeWeight(uint64(age), uint64(l.cfg.ExpirationTicks))
			weighted := uint32(rating.Score) * 100 * weight / 100
			recentScore = satAdd32(recentScore, weighted)
			recentCount = satAdd32(recentCount, 1)
		}
	}

	var currentScore, historicalScore uint32
	if recentCount > 0 {
		currentScore = recentScore / recentCount
	}
	if totalRatings > 0 {
		historicalScore = totalScore / totalRatings
	}

	score := ReputationScore{
		CurrentScore:    currentScore,
		HistoricalScore: historicalScore,
		TotalRatings:    totalRatings,
		RecentRatings:   recentCount,
		LastUpdated:     now,
	}
	l.scores[account] = score

	events = append(events, ReputationUpdated{
		Account:      account,
		NewScore:     currentScore,
		TotalRatings: totalRatings,
	})
	return score, events
}

// timeWeight returns the decay factor for a rating of the given age:
// linear from 100 (just created) down to 50 (at the horizon), never below.
func timeWeight(age, maxAge uint64) uint32 {
	if maxAge == 0 {
		return 100
	}
	decay := age * 50 / maxAge
	if decay >= 50 {
		return 50
	}
	return uint32(100 - decay)
}
