package ledger

// idList is a fixed-capacity, append-only list of rating ids. It fails
// fast on overflow rather than truncating, so a command can check Full
// before mutating anything.
type idList struct {
	ids      []RatingID
	capacity int
}

func newIDList(capacity int) *idList {
	return &idList{capacity: capacity}
}

func (l *idList) Full() bool {
	return len(l.ids) >= l.capacity
}

func (l *idList) Push(id RatingID) error {
	if l.Full() {
		return ErrTooManyRatings
	}
	l.ids = append(l.ids, id)
	return nil
}

func (l *idList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ids)
}

// IDs returns a copy in insertion order.
func (l *idList) IDs() []RatingID {
	if l == nil || len(l.ids) == 0 {
		return nil
	}
	out := make([]RatingID, len(l.ids))
	copy(out, l.ids)
	return out
}

// satAdd32 adds two counters, clamping at the uint32 maximum instead of
// wrapping.
func satAdd32(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(sum)
}
