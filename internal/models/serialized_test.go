package models

import (
	"strings"
	"testing"
)

func TestNormalizeOptions(t *testing.T) {
	got := NormalizeOptions([]string{
		"  GPS ",
		"Siège bébé",
		"gps", // case-insensitive duplicate
		"",
		"   ",
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d: %v", len(got), got)
	}
	if got[0] != "GPS" || got[1] != "Siège bébé" {
		t.Fatalf("wrong options: %v", got)
	}
}

func TestNormalizeOptionsDropsOversized(t *testing.T) {
	got := NormalizeOptions([]string{strings.Repeat("x", 81), "Bluetooth"})
	if len(got) != 1 || got[0] != "Bluetooth" {
		t.Fatalf("expected only Bluetooth, got %v", got)
	}
}

func TestNormalizeOptionsCapsAtTwenty(t *testing.T) {
	raw := make([]string, 30)
	for i := range raw {
		raw[i] = "option-" + string(rune('a'+i))
	}
	if got := NormalizeOptions(raw); len(got) != 20 {
		t.Fatalf("expected 20 options, got %d", len(got))
	}
}

func TestStringListScanCorrupt(t *testing.T) {
	var l StringList
	if err := l.Scan("[not json"); err != nil {
		t.Fatalf("corrupt text must not error, got %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list, got %v", l)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	src := StringList{"GPS", "Climatisation"}
	v, err := src.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var dst StringList
	if err := dst.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(dst) != 2 || dst[0] != "GPS" || dst[1] != "Climatisation" {
		t.Fatalf("round trip mismatch: %v", dst)
	}
}
