package domain

import "sync/atomic"

// IDSource hands out ride IDs.
type IDSource interface {
	Next() int64
}

// IDSequence is a monotonically increasing ride ID counter starting at 1.
// It is safe for concurrent use.
type IDSequence struct {
	last atomic.Int64
}

// NewIDSequence creates a new IDSequence whose first ID is 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{}
}

// Next returns the next ID.
func (s *IDSequence) Next() int64 {
	return s.last.Add(1)
}

// Ensure IDSequence implements IDSource.
var _ IDSource = (*IDSequence)(nil)
