package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Params{}.Normalize()
	if p.Skip != 0 || p.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults %+v", p)
	}
}

func TestNormalizeNegativeInputs(t *testing.T) {
	p := Params{Skip: -5, Limit: -1}.Normalize()
	if p.Skip != 0 || p.Limit != DefaultLimit {
		t.Fatalf("expected negatives to be replaced, got %+v", p)
	}
}

func TestNormalizeKeepsLargeLimit(t *testing.T) {
	p := Params{Skip: 10, Limit: 5000}.Normalize()
	if p.Skip != 10 || p.Limit != 5000 {
		t.Fatalf("expected values preserved, got %+v", p)
	}
}
