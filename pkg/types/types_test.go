package types

import "testing"

func TestParsePlacement(t *testing.T) {
	for p, name := range placementNames {
		got, err := ParsePlacement(name)
		if err != nil {
			t.Fatalf("ParsePlacement(%q) error: %v", name, err)
		}
		if got != p {
			t.Errorf("ParsePlacement(%q) = %v, want %v", name, got, p)
		}
		if got.String() != name {
			t.Errorf("String() = %q, want %q", got.String(), name)
		}
	}

	if _, err := ParsePlacement("middle"); err == nil {
		t.Error("Expected error for unknown placement")
	}
}

func TestPlacementIsTop(t *testing.T) {
	if !PlacementTopLeft.IsTop() {
		t.Error("top-left should be a top placement")
	}
	if PlacementBottomRight.IsTop() {
		t.Error("bottom-right should not be a top placement")
	}
}

func TestTierString(t *testing.T) {
	tests := map[Tier]string{
		TierExceptional: "exceptional",
		TierGreat:       "great",
		TierNice:        "nice",
		TierConsolation: "consolation",
	}
	for tier, want := range tests {
		if tier.String() != want {
			t.Errorf("Tier(%d).String() = %q, want %q", tier, tier.String(), want)
		}
	}
}
