package enums

import "testing"

func TestCollectionStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to CollectionStatus
		allowed  bool
	}{
		{CollectionStatusPending, CollectionStatusCollected, true},
		{CollectionStatusPending, CollectionStatusPending, true},
		{CollectionStatusCollected, CollectionStatusCollected, true},
		{CollectionStatusCollected, CollectionStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestParseCollectionStatus(t *testing.T) {
	if _, err := ParseCollectionStatus("archived"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	status, err := ParseCollectionStatus("pending")
	if err != nil {
		t.Fatalf("parse pending: %v", err)
	}
	if status != CollectionStatusPending {
		t.Fatalf("unexpected status %s", status)
	}
}
