package parallax

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ItemOptions is the caller-supplied, possibly partial, configuration of a
// tracked item.
type ItemOptions struct {
	// AddClass toggles the in-view class on the element. Nil means true.
	AddClass *bool
	// Once stops detection for the item after it first enters the view,
	// until the next resize.
	Once bool
	// TriggerOffset shrinks (positive) or grows (negative) the element's
	// top/bottom edges before intersection testing.
	TriggerOffset TriggerOffset
	// Speed is the parallax factor on a 0-10 scale (5 means 0.5).
	Speed float64
	// Lerp is the per-frame interpolation factor on a 0-10 scale. 0 snaps.
	Lerp float64
}

// Bool returns a pointer to v, for ItemOptions.AddClass.
func Bool(v bool) *bool {
	return &v
}

// Options is the resolved configuration of a tracked item.
type Options struct {
	AddClass       bool
	Once           bool
	TriggerOffsets [2]float64
	LerpAmount     float64
	SpeedAmount    float64
}

// amountScale converts the caller's 0-10 speed/lerp scale into a factor.
const amountScale = 0.1

func resolveOptions(in ItemOptions) Options {
	opts := Options{
		AddClass:    true,
		Once:        in.Once,
		LerpAmount:  in.Lerp * amountScale,
		SpeedAmount: in.Speed * amountScale,
	}
	if in.AddClass != nil {
		opts.AddClass = *in.AddClass
	}
	return opts
}

// Offset is one side of a trigger offset: a pixel amount, or a string in
// viewport-height ("10vh") or element-height ("25%") units.
type Offset struct {
	px    float64
	raw   string
	isRaw bool
}

// Px returns a pixel offset.
func Px(v float64) Offset {
	return Offset{px: v}
}

// ParseOffset returns an offset from its string form. The syntax is checked
// when the offset is resolved, not here.
func ParseOffset(s string) Offset {
	return Offset{raw: s, isRaw: true}
}

// String returns the offset as the caller wrote it.
func (o Offset) String() string {
	if o.isRaw {
		return o.raw
	}
	return strconv.FormatFloat(o.px, 'g', -1, 64)
}

// TriggerOffset is the declarative top/bottom margin of an item. A single
// offset applies to both edges; two offsets are top then bottom.
type TriggerOffset []Offset

// Symmetric returns a trigger offset applying o to both edges.
func Symmetric(o Offset) TriggerOffset {
	return TriggerOffset{o}
}

// Pair returns a trigger offset with distinct top and bottom margins.
func Pair(top, bottom Offset) TriggerOffset {
	return TriggerOffset{top, bottom}
}

func (t TriggerOffset) String() string {
	parts := make([]string, len(t))
	for i, o := range t {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var (
	vhPattern      = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)vh$`)
	percentPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)%$`)
)

// ResolveTriggerOffset converts a declarative trigger offset into top and
// bottom pixel margins. Viewport units resolve against viewportHeight,
// percentages against the element's own height.
//
// Resolution never fails as a whole: a malformed side resolves to 0 and an
// invalid shape resolves to (0, 0). The returned error collects every
// problem found, each an *OffsetSyntaxError.
func ResolveTriggerOffset(offset TriggerOffset, boundings Rect, viewportHeight float64) ([2]float64, error) {
	var out [2]float64
	var sides [2]Offset
	switch len(offset) {
	case 0:
		return out, nil
	case 1:
		sides = [2]Offset{offset[0], offset[0]}
	case 2:
		sides = [2]Offset{offset[0], offset[1]}
	default:
		return out, &OffsetSyntaxError{
			Input:  offset.String(),
			Reason: fmt.Sprintf("expected one or two values, got %d", len(offset)),
		}
	}

	var errs []error
	for i, side := range sides {
		v, err := resolveOffset(side, boundings.Height, viewportHeight)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[i] = v
	}
	return out, errors.Join(errs...)
}

func resolveOffset(o Offset, elementHeight, viewportHeight float64) (float64, error) {
	if !o.isRaw {
		if math.IsNaN(o.px) || math.IsInf(o.px, 0) {
			return 0, &OffsetSyntaxError{Input: o.String(), Reason: "not a finite number"}
		}
		return o.px, nil
	}
	s := strings.TrimSpace(o.raw)
	if m := vhPattern.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v / 100 * viewportHeight, nil
	}
	if m := percentPattern.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v / 100 * elementHeight, nil
	}
	return 0, &OffsetSyntaxError{Input: o.raw, Reason: `expected "<n>vh" or "<n>%"`}
}
