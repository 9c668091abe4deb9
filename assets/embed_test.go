package assets

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintInstructions(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintInstructions(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Instructions:", "'d' (next)", "middle click (remove square)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("instructions missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected trailing blank line, got %q", out)
	}
}
