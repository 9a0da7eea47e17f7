package ledger

// Validation is pure and side-effect free; every check runs before the
// first write of a command.

func (l *Ledger) validateScore(score uint8) error {
	if score < MinScore || score > MaxScore {
		return ErrInvalidRatingScore
	}
	return nil
}

func (l *Ledger) validateComment(comment string) error {
	if len(comment) > l.cfg.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

func (l *Ledger) validateParties(rater, rated AccountID) error {
	if rater == rated {
		return ErrCannotRateSelf
	}
	return nil
}

func (l *Ledger) validateAspects(a *Aspects) error {
	if a == nil {
		return nil
	}
	for _, v := range []*uint8{a.Communication, a.Knowledge, a.Punctuality, a.Engagement, a.Helpfulness} {
		if v != nil && (*v < MinScore || *v > MaxScore) {
			return ErrInvalidAspectScore
		}
	}
	return nil
}
