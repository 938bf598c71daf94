package locale

import (
	"testing"

	"boardmap/pkg/engine/world"
)

func TestGet_Known(t *testing.T) {
	if got := Get("PROPERTY_HORSE"); got != "Horse" {
		t.Errorf("Get(PROPERTY_HORSE) = %q, want %q", got, "Horse")
	}
	if got := CellType(world.Positive); got != "Bonus" {
		t.Errorf("CellType(Positive) = %q, want %q", got, "Bonus")
	}
}

func TestGet_UnknownFallsBackToID(t *testing.T) {
	if got := Get("NOT_A_MESSAGE"); got != "NOT_A_MESSAGE" {
		t.Errorf("Get(NOT_A_MESSAGE) = %q", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("LEVEL_NUMBER", 3); got != "Level 3" {
		t.Errorf("Format(LEVEL_NUMBER, 3) = %q", got)
	}
}

func TestTipsPanelsTranslated(t *testing.T) {
	for _, id := range []string{"LEVEL_1_TIPS", "LEVEL_2_TIPS", "LEVEL_4_TIPS", "LEVEL_6_TIPS"} {
		if Get(id) == id {
			t.Errorf("Get(%s) has no translation", id)
		}
	}
}
