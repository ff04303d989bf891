package toolkit

import (
	"strings"
	"testing"
)

func TestDetermineDelimiterTab(t *testing.T) {
	sheet := "Project\tFamily_id\tBika_id\n" +
		"PRJ\tFam1\tB1\n" +
		"PRJ\tFam1\tB2\n" +
		"PRJ\tFam2\tB3\n"

	if d := DetermineDelimiter(strings.NewReader(sheet), ','); d != '\t' {
		t.Errorf("expected tab, got %q", d)
	}
}

func TestDetermineDelimiterFallback(t *testing.T) {
	if d := DetermineDelimiter(strings.NewReader(""), '\t'); d != '\t' {
		t.Errorf("expected fallback tab, got %q", d)
	}
}
