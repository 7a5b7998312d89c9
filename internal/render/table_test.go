package render

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	Table(&b, []Row{
		{ID: "0", Kind: "vnode", Detail: "/dev/null"},
		{ID: "1024", Kind: "fdtype-12", Detail: ""},
	})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Table wrote %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "vnode") || !strings.Contains(lines[1], "/dev/null") {
		t.Fatalf("row line = %q, want vnode and its path", lines[1])
	}
	// both data rows start their TYPE column at the same offset
	if strings.Index(lines[1], "vnode") != strings.Index(lines[2], "fdtype-12") {
		t.Fatalf("columns misaligned:\n%s\n%s", lines[1], lines[2])
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		in   string
		max  int
		want string
	}{
		"fits":      {in: "short", max: 10, want: "short"},
		"exact":     {in: "short", max: 5, want: "short"},
		"cut":       {in: "abcdefgh", max: 4, want: "abc…"},
		"one":       {in: "abcdefgh", max: 1, want: "…"},
		"unlimited": {in: "abcdefgh", max: 0, want: "abcdefgh"},
		"runes":     {in: "ααααα", max: 3, want: "αα…"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}
