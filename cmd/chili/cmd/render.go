package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/design2/chili/pkg/graphics"
	"github.com/design2/chili/pkg/grouping"
	"github.com/design2/chili/pkg/shadowlayout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a style to PNG",
		Long: `Render a shadow layout style file to a PNG image.

The container is laid out at --width x --height and drawn with a
transparent --margin around it so outer shadows are not cut off. With
--count N, N containers are stacked into a group; the first rounds only
its top shadow corners, the last only its bottom ones.

Flags:
  --style PATH       Style file (YAML, required)
  --out PATH         Output PNG (default: out.png)
  --width N          Container width (default: 200)
  --height N         Container height (default: 100)
  --margin N         Space around the container (default: 16)
  --count N          Number of stacked containers (default: 1)
  --background COLOR Canvas colour, #RRGGBB or #AARRGGBB (default: transparent)`,
		Usage: "chili render --style PATH [--out PATH] [--width N] [--height N] [--margin N] [--count N] [--background COLOR]",
		Run:   runRender,
	})
}

type renderOptions struct {
	style      string
	out        string
	width      float64
	height     float64
	margin     float64
	count      int
	background graphics.Color
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	st, err := shadowlayout.LoadStyleFile(opts.style)
	if err != nil {
		return err
	}
	if !st.Supports(Version) {
		return fmt.Errorf("%s requires chili %s or newer (have %s)", opts.style, st.Requires, Version)
	}

	canvas := renderStyle(st, opts)
	if err := gg.SavePNG(opts.out, canvas.Image()); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	log.Infof("rendered %s -> %s (%dx%d)", opts.style, opts.out,
		canvas.Image().Bounds().Dx(), canvas.Image().Bounds().Dy())
	return nil
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{
		out:    "out.png",
		width:  200,
		height: 100,
		margin: 16,
		count:  1,
	}

	value := func(i int, name string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], nil
	}
	number := func(i int, name string) (float64, error) {
		v, err := value(i, name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%s: invalid value %q", name, v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		name, inline, hasInline := strings.Cut(args[i], "=")
		if hasInline {
			// Rewrite --flag=value into the two-argument form.
			rest := append([]string{name, inline}, args[i+1:]...)
			args = append(args[:i:i], rest...)
		}

		var err error
		switch name {
		case "--style":
			opts.style, err = value(i, name)
		case "--out", "-o":
			opts.out, err = value(i, name)
		case "--width":
			opts.width, err = number(i, name)
		case "--height":
			opts.height, err = number(i, name)
		case "--margin":
			opts.margin, err = number(i, name)
		case "--count":
			var n float64
			n, err = number(i, name)
			if err == nil && (n < 1 || n != math.Trunc(n)) {
				err = fmt.Errorf("%s: must be a positive integer", name)
			}
			opts.count = int(n)
		case "--background":
			var v string
			if v, err = value(i, name); err == nil {
				opts.background, err = graphics.ParseColor(v)
			}
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
		if err != nil {
			return opts, err
		}
		i++
	}

	if opts.style == "" {
		return opts, fmt.Errorf("--style is required\n\nUsage: chili render --style PATH")
	}
	if opts.width == 0 || opts.height == 0 {
		return opts, fmt.Errorf("--width and --height must be positive")
	}
	return opts, nil
}

// renderStyle lays out opts.count containers built from st and draws them
// stacked onto a fresh raster canvas.
func renderStyle(st *shadowlayout.Style, opts renderOptions) *graphics.RasterCanvas {
	w := int(math.Ceil(opts.width + 2*opts.margin))
	h := int(math.Ceil(opts.height*float64(opts.count) + 2*opts.margin))
	canvas := graphics.NewRasterCanvas(w, h)
	if opts.background != graphics.ColorTransparent {
		canvas.Clear(opts.background)
	}

	group := make([]*shadowlayout.ShadowLayout, opts.count)
	for i := range group {
		s := shadowlayout.New(st.Attributes)
		s.Layout(opts.width, opts.height)
		group[i] = s
	}
	if len(group) > 1 {
		grouping.ApplyCornerModes(group)
	}

	for i, s := range group {
		log.Debugf("container %d: mode=%v shadows=%d/%d", i, s.RoundedCornerMode(),
			s.BackgroundShadowCount(), s.ForegroundShadowCount())
		canvas.Save()
		canvas.Translate(opts.margin, opts.margin+float64(i)*opts.height)
		s.Draw(canvas)
		canvas.Restore()
	}
	return canvas
}
