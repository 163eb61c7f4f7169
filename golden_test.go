package calpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Regenerate with: go run ./cmd/gen-golden
func TestRenderTextGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.golden"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no golden files found")
	}
	theme, _ := ThemeByName("boring")
	for _, path := range paths {
		var year, width int
		if _, err := fmt.Sscanf(filepath.Base(path), "%d.w%d.golden", &year, &width); err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		want, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		var out bytes.Buffer
		if err := RenderText(TextRequest{Writer: &out, Year: year, Width: width, Theme: theme}); err != nil {
			t.Fatalf("render %d: %v", year, err)
		}
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("golden mismatch for %s\n--- want\n%s\n--- got\n%s", path, want, out.Bytes())
		}
	}
}
