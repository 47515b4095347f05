package enums

import "fmt"

// CollectionStatus tracks whether a pickup request is still waiting or done.
type CollectionStatus string

const (
	CollectionStatusPending   CollectionStatus = "pending"
	CollectionStatusCollected CollectionStatus = "collected"
)

var validCollectionStatuses = []CollectionStatus{
	CollectionStatusPending,
	CollectionStatusCollected,
}

// String implements fmt.Stringer.
func (c CollectionStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CollectionStatus.
func (c CollectionStatus) IsValid() bool {
	for _, candidate := range validCollectionStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// CanTransitionTo validates a status change. The only legal move is
// pending to collected; writing the current value back is a no-op and allowed.
func (c CollectionStatus) CanTransitionTo(next CollectionStatus) bool {
	if c == next {
		return true
	}
	return c == CollectionStatusPending && next == CollectionStatusCollected
}

// ParseCollectionStatus converts raw input into a CollectionStatus.
func ParseCollectionStatus(value string) (CollectionStatus, error) {
	for _, candidate := range validCollectionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid collection status %q", value)
}
