package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-filters/internal/imaging"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.RunContext(context.Background(), append([]string{"image-filters"}, args...))
	return out.String(), err
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	if err := imaging.Save(imaging.Gradient(6, 4), "png", in); err != nil {
		t.Fatal(err)
	}

	stdout, err := runApp(t, "", "apply", "--filter", "hue", "--value", "120", in, out)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !strings.Contains(stdout, "hue: ") {
		t.Errorf("missing summary in %q", stdout)
	}

	got, err := imaging.Load(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	// Gradient (0,0) is pure blue.
	if c := got.At(0, 0); c != imaging.NewRGB(0, 255, 0) {
		t.Errorf("pixel (0,0): got %+v, want green", c)
	}
}

func TestApply_Rotate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bmp")
	if err := imaging.Save(imaging.Gradient(6, 4), "png", in); err != nil {
		t.Fatal(err)
	}

	if _, err := runApp(t, "", "apply", "-f", "rotate", in, out); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	got, err := imaging.Load(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if got.Width() != 4 || got.Height() != 6 {
		t.Errorf("dimensions: got %dx%d, want 4x6", got.Width(), got.Height())
	}
}

func TestApply_Errors(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.png")
	if err := imaging.Save(imaging.Gradient(2, 2), "png", in); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing output", []string{"apply", "--filter", "invert", in}, "apply needs INPUT and OUTPUT"},
		{"unknown filter", []string{"apply", "--filter", "sharpen", in, in + ".png"}, "unknown filter"},
		{"missing input", []string{"apply", "--filter", "invert", "/no/such.png", in + ".png"}, "failed to decode"},
		{"instagram without overlays", []string{"--resources", t.TempDir(), "apply", "--filter", "instagram", in, in + ".png"}, "halo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestConsoleIsDefault(t *testing.T) {
	save := filepath.Join(t.TempDir(), "gradient.png")
	stdout, err := runApp(t, "new 5 3\nsave "+save+"\nquit\n")
	if err != nil {
		t.Fatalf("console failed: %v", err)
	}
	if !strings.Contains(stdout, "Enter a command:") {
		t.Errorf("console prompt missing from %q", stdout)
	}
	if _, err := imaging.Load(save); err != nil {
		t.Errorf("console did not save: %v", err)
	}
}

func TestConsolePreview(t *testing.T) {
	previewPath := filepath.Join(t.TempDir(), "preview.png")
	if _, err := runApp(t, "new 10 5\nquit\n", "console", "--preview", previewPath); err != nil {
		t.Fatalf("console failed: %v", err)
	}

	got, err := imaging.Load(previewPath)
	if err != nil {
		t.Fatalf("preview not written: %v", err)
	}
	if got.Width() != 1600 || got.Height() != 800 {
		t.Errorf("preview size: got %dx%d, want 1600x800", got.Width(), got.Height())
	}
}

func TestFilters(t *testing.T) {
	stdout, err := runApp(t, "", "filters")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"grayscale", "instagram", "add-lightness"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("filter %s missing from %q", name, stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, err := runApp(t, "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "image-filters "+Version) {
		t.Errorf("unexpected version output %q", stdout)
	}
}
