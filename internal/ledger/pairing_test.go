package ledger

import (
	"errors"
	"testing"
)

func TestBidirectionalPair_Completes(t *testing.T) {
	l := New(DefaultConfig())

	// Student 1 rates tutor 2 for interaction 7.
	studentID, events, err := l.CreateDetailedRating(1, 1, 2, 5, "Great session", interaction(7), nil, KindStudentToTutor, nil)
	if err != nil {
		t.Fatalf("student rating: %v", err)
	}
	for _, ev := range events {
		if _, ok := ev.(BidirectionalRatingCompleted); ok {
			t.Fatal("pair must not complete after one direction")
		}
	}

	pair, ok := l.Pair(7)
	if !ok || pair.StudentRating == nil || *pair.StudentRating != studentID {
		t.Fatalf("pair = %+v, expected student slot %d", pair, studentID)
	}
	if pair.Complete() {
		t.Error("pair should not be complete yet")
	}

	// Tutor 2 rates student 1 for the same interaction.
	tutorID, events, err := l.CreateDetailedRating(2, 2, 1, 4, "Engaged student", interaction(7), nil, KindTutorToStudent, nil)
	if err != nil {
		t.Fatalf("tutor rating: %v", err)
	}

	var completed *BidirectionalRatingCompleted
	for _, ev := range events {
		if c, ok := ev.(BidirectionalRatingCompleted); ok {
			if completed != nil {
				t.Fatal("completion emitted more than once")
			}
			completed = &c
		}
	}
	if completed == nil {
		t.Fatal("expected BidirectionalRatingCompleted")
	}
	if completed.StudentRating != studentID || completed.TutorRating != tutorID {
		t.Errorf("completion = %+v", completed)
	}

	pair, _ = l.Pair(7)
	if !pair.Complete() {
		t.Error("pair should be complete")
	}
}

func TestBidirectionalPair_DuplicateDirectionFails(t *testing.T) {
	l := New(DefaultConfig())

	if _, _, err := l.CreateDetailedRating(1, 1, 2, 5, "", interaction(7), nil, KindStudentToTutor, nil); err != nil {
		t.Fatalf("first rating: %v", err)
	}

	// A second student rating for the same interaction, even from another
	// account, must fail and leave no new rating behind.
	before := l.NextRatingID()
	_, _, err := l.CreateDetailedRating(2, 3, 2, 4, "", interaction(7), nil, KindStudentToTutor, nil)
	if !errors.Is(err, ErrBidirectionalRatingExists) {
		t.Errorf("error = %v, expected ErrBidirectionalRatingExists", err)
	}
	if l.NextRatingID() != before {
		t.Error("rejected rating must not be stored")
	}
	if got := l.RatingsGiven(3); len(got) != 0 {
		t.Errorf("ratings given by 3 = %v, expected none", got)
	}
}

func TestSessionRating_WithoutInteractionSkipsPairing(t *testing.T) {
	l := New(DefaultConfig())

	// No interaction ref: two student ratings are fine, no pair recorded.
	if _, _, err := l.CreateDetailedRating(1, 1, 2, 5, "", nil, nil, KindStudentToTutor, nil); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, _, err := l.CreateDetailedRating(1, 3, 2, 4, "", nil, nil, KindStudentToTutor, nil); err != nil {
		t.Fatalf("second: %v", err)
	}
	if _, ok := l.Pair(0); ok {
		t.Error("no pair should exist")
	}
}

func TestCheckPairSlot_RejectsOtherKinds(t *testing.T) {
	l := New(DefaultConfig())

	l.pairs[9] = &RatingPair{}
	if err := l.checkPairSlot(9, KindGeneral); !errors.Is(err, ErrInvalidRatingType) {
		t.Errorf("error = %v, expected ErrInvalidRatingType", err)
	}
}
