package ledger

// AddCommentResponse appends a response to a rating's thread. Only the two
// original parties may respond, the rating must be active and before its
// expiration tick, and the thread is capped. Existing entries are never
// mutated or removed.
func (l *Ledger) AddCommentResponse(now Tick, responder AccountID, id RatingID, content string) (ResponseID, []Event, error) {
	if err := l.validateComment(content); err != nil {
		return 0, nil, err
	}

	rating, ok := l.ratings[id]
	if !ok {
		return 0, nil, ErrRatingNotFound
	}
	if !rating.Active || now >= rating.ExpiresAt {
		return 0, nil, ErrRatingExpired
	}
	if responder != rating.Rater && responder != rating.Rated {
		return 0, nil, ErrNotAuthorized
	}
	if len(l.responses[id]) >= l.cfg.MaxCommentResponses {
		return 0, nil, ErrTooManyResponses
	}

	responseID := l.nextResponseID
	l.responses[id] = append(l.responses[id], CommentResponse{
		ID:        responseID,
		Responder: responder,
		Content:   content,
		CreatedAt: now,
	})
	l.nextResponseID++

	return responseID, []Event{CommentResponseAdded{
		RatingID:   id,
		ResponseID: responseID,
		Responder:  responder,
	}}, nil
}
