package cli

import (
	"strings"
	"testing"
)

func TestRenderTableAlignsUnicodeAmounts(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Total"},
		Rows: [][]string{
			{"Food", "₹50.00"},
			{"---"},
			{"Travel", "₹1,100.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := len([]rune(stripANSI(lines[0])))
	for i, l := range lines {
		if got := len([]rune(stripANSI(l))); got != want {
			t.Errorf("line %d width %d, want %d: %q", i, got, want, stripANSI(l))
		}
	}
	if !strings.Contains(out, "₹1,100.00") {
		t.Error("missing amount")
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderTableTitle(t *testing.T) {
	out := RenderTable(Table{Title: "By Category", Headers: []string{"A"}, Rows: [][]string{{"x"}}})
	if !strings.Contains(out, "By Category") {
		t.Error("missing title")
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
