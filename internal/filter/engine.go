package filter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ironsheep/image-filters/internal/imaging"
)

// ErrUnknownFilter is returned by Engine.Apply for a name not in Ops().
var ErrUnknownFilter = errors.New("unknown filter")

// Param describes the numeric argument of a filter.
type Param struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Op is a named filter operation.
type Op struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Param       *Param `json:"param,omitempty"` // nil when the filter takes no argument

	apply func(e *Engine, buf *imaging.Buffer, v float64) (*imaging.Buffer, error)
}

// inPlace adapts a filter that mutates its input.
func inPlace(fn func(imaging.Pixels)) func(*Engine, *imaging.Buffer, float64) (*imaging.Buffer, error) {
	return func(_ *Engine, buf *imaging.Buffer, _ float64) (*imaging.Buffer, error) {
		fn(buf)
		return buf, nil
	}
}

func withInt(fn func(imaging.Pixels, int)) func(*Engine, *imaging.Buffer, float64) (*imaging.Buffer, error) {
	return func(_ *Engine, buf *imaging.Buffer, v float64) (*imaging.Buffer, error) {
		fn(buf, int(math.Round(v)))
		return buf, nil
	}
}

func withFloat(fn func(imaging.Pixels, float64)) func(*Engine, *imaging.Buffer, float64) (*imaging.Buffer, error) {
	return func(_ *Engine, buf *imaging.Buffer, v float64) (*imaging.Buffer, error) {
		fn(buf, v)
		return buf, nil
	}
}

var ops = []Op{
	{Name: "grayscale", Description: "Average the channels of every pixel", apply: inPlace(Grayscale)},
	{Name: "invert", Description: "Invert every channel", apply: inPlace(Invert)},
	{Name: "sepia", Description: "Apply a sepia tone", apply: inPlace(Sepia)},
	{Name: "bw", Description: "Black and white split at the median luminance", apply: inPlace(BlackWhite)},
	{
		Name:        "rotate",
		Description: "Rotate 90 degrees clockwise",
		apply: func(_ *Engine, buf *imaging.Buffer, _ float64) (*imaging.Buffer, error) {
			return Rotate(buf), nil
		},
	},
	{
		Name:        "instagram",
		Description: "Warm tone with halo vignette and film grain overlays",
		apply: func(e *Engine, buf *imaging.Buffer, _ float64) (*imaging.Buffer, error) {
			if err := Instagram(buf, e.overlays); err != nil {
				return nil, err
			}
			return buf, nil
		},
	},
	{
		Name:        "hue",
		Description: "Set the hue of every pixel",
		Param:       &Param{Name: "hue", Min: 0, Max: imaging.MaxHue},
		apply:       withInt(SetHue),
	},
	{
		Name:        "saturation",
		Description: "Set the saturation of every pixel",
		Param:       &Param{Name: "saturation", Min: 0, Max: 1},
		apply:       withFloat(SetSaturation),
	},
	{
		Name:        "lightness",
		Description: "Set the lightness of every pixel",
		Param:       &Param{Name: "lightness", Min: 0, Max: 1},
		apply:       withFloat(SetLightness),
	},
	{
		Name:        "add-hue",
		Description: "Shift the hue of every pixel",
		Param:       &Param{Name: "degrees", Min: -imaging.MaxHue, Max: imaging.MaxHue},
		apply:       withInt(AdjustHue),
	},
	{
		Name:        "add-saturation",
		Description: "Add to the saturation of every pixel",
		Param:       &Param{Name: "amount", Min: -1, Max: 1},
		apply:       withFloat(AdjustSaturation),
	},
	{
		Name:        "add-lightness",
		Description: "Add to the lightness of every pixel",
		Param:       &Param{Name: "amount", Min: -1, Max: 1},
		apply:       withFloat(AdjustLightness),
	},
}

// Ops lists every filter the engine can apply, in display order.
func Ops() []Op {
	out := make([]Op, len(ops))
	copy(out, ops)
	return out
}

// Lookup returns the operation with the given name.
func Lookup(name string) (Op, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

// Engine applies named filters to buffers.
type Engine struct {
	overlays OverlaySource
}

// NewEngine creates an engine. overlays is only consulted by "instagram".
func NewEngine(overlays OverlaySource) *Engine {
	return &Engine{overlays: overlays}
}

// Apply runs the named filter on buf and returns the result.
//
// Most filters modify buf and return it; "rotate" returns a new buffer. The
// returned buffer is always the authoritative result. value is the filter's
// numeric argument and is ignored by filters without one.
//
// ctx is checked before the filter starts. A running filter is not
// interrupted.
func (e *Engine) Apply(ctx context.Context, name string, buf *imaging.Buffer, value float64) (*imaging.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}

	start := time.Now()
	out, err := op.apply(e, buf, value)
	if err != nil {
		Logger().Warn("filter failed", "filter", name, "error", err)
		return nil, fmt.Errorf("filter %s: %w", name, err)
	}

	Logger().Debug("filter applied",
		"filter", name,
		"width", out.Width(),
		"height", out.Height(),
		"elapsed", time.Since(start))
	return out, nil
}
