package filter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ironsheep/image-filters/internal/imaging"
)

func TestOps_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range Ops() {
		if op.Name == "" || op.Description == "" {
			t.Errorf("op %+v is missing a name or description", op)
		}
		if seen[op.Name] {
			t.Errorf("duplicate op name %q", op.Name)
		}
		seen[op.Name] = true
	}

	for _, name := range []string{"grayscale", "invert", "sepia", "bw", "rotate", "instagram",
		"hue", "saturation", "lightness", "add-hue", "add-saturation", "add-lightness"} {
		if !seen[name] {
			t.Errorf("missing op %q", name)
		}
	}
}

func TestLookup(t *testing.T) {
	op, ok := Lookup("hue")
	if !ok {
		t.Fatal("Lookup(hue) failed")
	}
	if op.Param == nil || op.Param.Max != 360 {
		t.Errorf("hue param: got %+v, want max 360", op.Param)
	}

	if _, ok := Lookup("sharpen"); ok {
		t.Error("Lookup(sharpen) should fail")
	}
}

func TestEngine_Apply(t *testing.T) {
	e := NewEngine(&memOverlays{halo: uniform(1, 1, rgb(0, 0, 0)), grain: uniform(1, 1, rgb(0, 0, 0))})

	tests := []struct {
		name       string
		filter     string
		value      float64
		wantWidth  int
		wantHeight int
		want       imaging.RGB // pixel (0,0) of the result
	}{
		{"invert", "invert", 0, 4, 2, rgb(0, 255, 255)},
		{"grayscale", "grayscale", 0, 4, 2, rgb(85, 85, 85)},
		{"rotate swaps dimensions", "rotate", 0, 2, 4, rgb(255, 0, 0)},
		{"hue rounds value", "hue", 119.6, 4, 2, rgb(0, 255, 0)},
		{"saturation", "saturation", 0, 4, 2, rgb(128, 128, 128)},
		{"add-lightness", "add-lightness", 1, 4, 2, rgb(255, 255, 255)},
		{"instagram", "instagram", 0, 4, 2, rgb(156, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := uniform(4, 2, rgb(255, 0, 0))
			out, err := e.Apply(context.Background(), tt.filter, buf, tt.value)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if out.Width() != tt.wantWidth || out.Height() != tt.wantHeight {
				t.Errorf("dimensions: got %dx%d, want %dx%d", out.Width(), out.Height(), tt.wantWidth, tt.wantHeight)
			}
			if got := out.At(0, 0); got != tt.want {
				t.Errorf("pixel (0,0): got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEngine_ApplyUnknown(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.Apply(context.Background(), "sharpen", imaging.NewBuffer(1, 1), 0)
	if !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("got %v, want ErrUnknownFilter", err)
	}
}

func TestEngine_ApplyCancelled(t *testing.T) {
	e := NewEngine(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := uniform(2, 2, rgb(10, 20, 30))
	_, err := e.Apply(ctx, "invert", buf, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if got := buf.At(0, 0); got != rgb(10, 20, 30) {
		t.Errorf("cancelled Apply modified the image: %+v", got)
	}
}

func TestEngine_ApplyInstagramMissingOverlays(t *testing.T) {
	e := NewEngine(NewDirOverlays(t.TempDir()))
	_, err := e.Apply(context.Background(), "instagram", imaging.NewBuffer(2, 2), 0)

	var decodeErr *imaging.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("got %v, want *imaging.DecodeError", err)
	}
}

func TestEngine_ApplyInstagramNoOverlays(t *testing.T) {
	_, err := NewEngine(nil).Apply(context.Background(), "instagram", imaging.NewBuffer(2, 2), 0)
	if !errors.Is(err, ErrNoOverlays) {
		t.Errorf("got %v, want ErrNoOverlays", err)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := NewEngine(nil).Apply(context.Background(), "sepia", imaging.NewBuffer(3, 3), 0); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !strings.Contains(buf.String(), "filter=sepia") {
		t.Errorf("expected debug log for sepia, got: %s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
