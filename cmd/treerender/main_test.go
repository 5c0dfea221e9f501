package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		in      string
		want    []size
		wantErr bool
	}{
		{"800x1300", []size{{800, 1300}}, false},
		{"800x1300, 1920X1080,", []size{{800, 1300}, {1920, 1080}}, false},
		{"", nil, true},
		{"800", nil, true},
		{"ax10", nil, true},
		{"10x0", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSizes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	var stderr bytes.Buffer
	args := []string{
		"-sizes", "80x130,192x108",
		"-out", out,
		"-background", filepath.Join(out, "missing.png"),
	}
	if err := run(args, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	for _, name := range []string{"tree-80x130.png", "tree-192x108.png"} {
		f, err := os.Open(filepath.Join(out, name))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := png.DecodeConfig(f); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		f.Close()
	}
}

func TestRunReportsDesignBounds(t *testing.T) {
	var stderr bytes.Buffer
	args := []string{"-sizes", "192x108", "-out", t.TempDir(), "-log-level", "debug"}
	if err := run(args, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	// 192x108 pillarboxes the 800x1300 design; the bars extend past x=0 and x=800.
	logs := stderr.String()
	if !strings.Contains(logs, "design_bounds") || !strings.Contains(logs, "-755.6") || !strings.Contains(logs, "1555.6") {
		t.Errorf("debug log lacks the visible design bounds:\n%s", logs)
	}
}

func TestRunBadScene(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scene, []byte("splitCircles: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	if err := run([]string{"-out", dir, "-scene", scene}, &stderr); err == nil {
		t.Error("invalid scene accepted")
	}
}
