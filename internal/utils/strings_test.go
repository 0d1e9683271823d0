package utils

import "testing"

func TestParseSeatNumber(t *testing.T) {
	n, err := ParseSeatNumber(" #12 ")
	if err != nil || n == nil || *n != 12 {
		t.Fatalf("expected 12, got %v %v", n, err)
	}
	n, err = ParseSeatNumber("")
	if err != nil || n != nil {
		t.Fatalf("blank input should give nil, got %v %v", n, err)
	}
	if _, err := ParseSeatNumber("A1"); err == nil {
		t.Fatalf("expected error for non-numeric seat")
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Ana   Maria\tSouza "); got != "Ana Maria Souza" {
		t.Fatalf("unexpected %q", got)
	}
}
