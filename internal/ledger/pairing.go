package ledger

// Bidirectional pairing: one StudentToTutor and one TutorToStudent rating
// per interaction, each direction set at most once. Completion is detected
// when the second slot lands, so the completion event fires exactly once.

// checkPairSlot verifies the direction's slot is still free. Called before
// any command write.
func (l *Ledger) checkPairSlot(interaction InteractionID, kind RatingKind) error {
	pair, ok := l.pairs[interaction]
	if !ok {
		return nil
	}
	switch kind {
	case KindStudentToTutor:
		if pair.StudentRating != nil {
			return ErrBidirectionalRatingExists
		}
	case KindTutorToStudent:
		if pair.TutorRating != nil {
			return ErrBidirectionalRatingExists
		}
	default:
		return ErrInvalidRatingType
	}
	return nil
}

// bindPairSlot records the rating in its direction's slot. The slot is
// known to be free (checkPairSlot ran first).
func (l *Ledger) bindPairSlot(interaction InteractionID, id RatingID, kind RatingKind) []Event {
	pair, ok := l.pairs[interaction]
	if !ok {
		pair = &RatingPair{}
		l.pairs[interaction] = pair
	}
	switch kind {
	case KindStudentToTutor:
		pair.StudentRating = &id
	case KindTutorToStudent:
		pair.TutorRating = &id
	}
	if pair.Complete() {
		return []Event{BidirectionalRatingCompleted{
			InteractionID: interaction,
			StudentRating: *pair.StudentRating,
			TutorRating:   *pair.TutorRating,
		}}
	}
	return nil
}
