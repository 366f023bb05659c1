package ramp

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/sstucker/particles/pkg/errors"
)

// reversedSuffix selects the reversed variant of a named gradient.
const reversedSuffix = "_r"

var (
	// PuRd is the ColorBrewer purple-red sequential map, blended in RGB.
	PuRd = mustStops(BlendRGB,
		"#f7f4f9", "#e7e1ef", "#d4b9da", "#c994c7", "#df65b0",
		"#e7298a", "#ce1256", "#980043", "#67001f")

	// Viridis is the perceptually uniform blue-green-yellow map.
	Viridis = mustStops(BlendRGB,
		"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
		"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725")

	// Greys is the ColorBrewer white-to-black sequential map.
	Greys = mustStops(BlendRGB,
		"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
		"#737373", "#525252", "#252525", "#000000")

	// Sci is the four-segment blue, cyan, green, yellow, red scientific map.
	Sci Gradient = GradientFunc(sci)
)

var named = map[string]Gradient{
	"purd":    PuRd,
	"viridis": Viridis,
	"greys":   Greys,
	"sci":     Sci,
}

// Names returns the registered gradient names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(named))
}

// Lookup returns the named gradient. Names are case-insensitive and accept
// a "_r" suffix for the reversed gradient.
func Lookup(name string) (Gradient, error) {
	return lookup(name, nil)
}

// LookupIn is like Lookup but blends stop-based gradients in space.
// Function-defined gradients such as Sci are returned unchanged.
func LookupIn(name string, space BlendSpace) (Gradient, error) {
	return lookup(name, &space)
}

func lookup(name string, space *BlendSpace) (Gradient, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	reversed := strings.HasSuffix(key, reversedSuffix)
	key = strings.TrimSuffix(key, reversedSuffix)

	g, ok := named[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidGradient, "unknown gradient %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	if s, isStops := g.(Stops); isStops && space != nil {
		s.Space = *space
		g = s
	}
	if reversed {
		return Reverse(g), nil
	}
	return g, nil
}

// Reverse returns a gradient that runs g from t = 1 down to t = 0.
func Reverse(g Gradient) Gradient {
	return GradientFunc(func(t float64) Sample { return g.At(1 - t) })
}

// sci splits [0, 1] into four equal segments and ramps one channel per
// segment: blue to cyan, cyan to green, green to yellow, yellow to red.
func sci(t float64) Sample {
	const segment = 0.25
	if math.IsNaN(t) {
		t = 0
	}
	t = max(0, min(t, 1))
	num := min(int(t/segment), 3)
	s := (t - float64(num)*segment) / segment

	var r, g, b float64
	switch num {
	case 0:
		r, g, b = 0, s, 1
	case 1:
		r, g, b = 0, 1, 1-s
	case 2:
		r, g, b = s, 1, 0
	default:
		r, g, b = 1, 1-s, 0
	}
	return Sample{R: r, G: g, B: b, A: 1}
}

func mustStops(space BlendSpace, hex ...string) Stops {
	s, err := NewStops(space, hex...)
	if err != nil {
		panic(err)
	}
	return s
}
