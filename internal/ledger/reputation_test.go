package ledger

import "testing"

func TestRecalculate_MultipleRatings(t *testing.T) {
	l := New(DefaultConfig())

	// Three fresh ratings for account 2: 5, 4, 3.
	l.CreateRating(1, 1, 2, 5, "Excellent", nil)
	l.CreateRating(1, 3, 2, 4, "Good", nil)
	l.CreateRating(1, 4, 2, 3, "Average", nil)

	score := l.StoredReputation(2)
	if score.CurrentScore != 400 {
		t.Errorf("current score = %d, expected 400", score.CurrentScore)
	}
	if score.HistoricalScore != 400 {
		t.Errorf("historical score = %d, expected 400", score.HistoricalScore)
	}
	if score.TotalRatings != 3 || score.RecentRatings != 3 {
		t.Errorf("counts = (%d, %d), expected (3, 3)", score.TotalRatings, score.RecentRatings)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	l := New(DefaultConfig())

	l.CreateRating(1, 1, 2, 5, "", nil)
	l.CreateRating(1, 3, 2, 2, "", nil)

	first, _, err := l.Recalculate(10, 2)
	if err != nil {
		t.Fatalf("Recalculate() error = %v", err)
	}
	second, _, err := l.Recalculate(10, 2)
	if err != nil {
		t.Fatalf("Recalculate() error = %v", err)
	}
	if first != second {
		t.Errorf("recalculation not idempotent: %+v vs %+v", first, second)
	}
}

func TestRecalculate_NoRatings(t *testing.T) {
	l := New(DefaultConfig())

	score, _, _ := l.Recalculate(1, 42)
	if score.CurrentScore != 0 || score.HistoricalScore != 0 {
		t.Errorf("empty account score = %+v, expected zeros", score)
	}
}

func TestTimeWeight(t *testing.T) {
	tests := []struct {
		name     string
		age      uint64
		maxAge   uint64
		expected uint32
	}{
		{name: "fresh rating", age: 0, maxAge: 432000, expected: 100},
		{name: "quarter aged", age: 108000, maxAge: 432000, expected: 88},
		{name: "half aged", age: 216000, maxAge: 432000, expected: 75},
		{name: "at the horizon", age: 432000, maxAge: 432000, expected: 50},
		{name: "past the horizon", age: 500000, maxAge: 432000, expected: 50},
		{name: "zero horizon", age: 10, maxAge: 0, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeWeight(tt.age, tt.maxAge); got != tt.expected {
				t.Errorf("timeWeight(%d, %d) = %d, expected %d", tt.age, tt.maxAge, got, tt.expected)
			}
		})
	}
}

func TestTimeWeight_MonotoneAndBounded(t *testing.T) {
	prev := uint32(100)
	for age := uint64(0); age <= 432000; age += 1000 {
		w := timeWeight(age, 432000)
		if w < 50 || w > 100 {
			t.Fatalf("weight %d at age %d outside [50, 100]", w, age)
		}
		if w > prev {
			t.Fatalf("weight increased from %d to %d at age %d", prev, w, age)
		}
		prev = w
	}
}

func TestRecalculate_AppliesDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExpirationTicks = 100
	l := New(cfg)

	// Score 5 at tick 0; at tick 50 the weight is 75, so the current
	// score is 500*75/100 = 375 while the historical stays 500.
	l.CreateRating(0, 1, 2, 5, "", nil)

	score, _, _ := l.Recalculate(50, 2)
	if score.CurrentScore != 375 {
		t.Errorf("current score = %d, expected 375", score.CurrentScore)
	}
	if score.HistoricalScore != 500 {
		t.Errorf("historical score = %d, expected 500", score.HistoricalScore)
	}
}

func TestGetReputation_ExpiresStaleRatings(t *testing.T) {
	l := New(DefaultConfig())

	l.CreateRating(1, 1, 2, 5, "", nil)

	// Read well past the horizon: the rating flips inactive, the
	// expiration event fires once, and the score resets.
	score, events := l.GetReputation(432002, 2)
	if score.CurrentScore != 0 || score.TotalRatings != 0 {
		t.Errorf("score after expiry = %+v, expected zeros", score)
	}

	expired := 0
	for _, ev := range events {
		if _, ok := ev.(RatingExpired); ok {
			expired++
		}
	}
	if expired != 1 {
		t.Errorf("RatingExpired fired %d times, expected once", expired)
	}

	rating, _ := l.GetRating(1)
	if rating.Active {
		t.Error("rating should be inactive after expiry")
	}

	// Second read: no further expiration events.
	_, events = l.GetReputation(432003, 2)
	for _, ev := range events {
		if _, ok := ev.(RatingExpired); ok {
			t.Error("RatingExpired must not fire again for the same rating")
		}
	}
}

func TestRecalculate_LastUpdated(t *testing.T) {
	l := New(DefaultConfig())

	l.CreateRating(1, 1, 2, 4, "", nil)
	score, _, _ := l.Recalculate(77, 2)
	if score.LastUpdated != 77 {
		t.Errorf("last updated = %d, expected 77", score.LastUpdated)
	}
}
