package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/retro"
)

const (
	defaultFPS    = 30
	defaultWidth  = 320
	defaultHeight = 480
	defaultOut    = "frames"
)

var (
	colorFrom = retro.Color{R: 0.93, G: 0.62, B: 0.18, A: 1}
	colorTo   = retro.Color{R: 0.11, G: 0.55, B: 0.58, A: 1}
	colorBG   = retro.Color{R: 0.05, G: 0.05, B: 0.07, A: 1}
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	fps       int
	width     float64
	height    float64
	scale     float64
	out       string
	config    string // TOML file the transition name is looked up in
	cancel    bool   // cancel the transition as soon as it starts
	pop       bool   // animate a pop instead of a push
	fromImage string
	toImage   string
}

// renderResult summarizes one headless run.
type renderResult struct {
	transition retro.Transition
	frames     []string
	success    bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		fps:    defaultFPS,
		width:  defaultWidth,
		height: defaultHeight,
		scale:  1,
		out:    defaultOut,
	}

	cmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Render a transition to PNG frames",
		Long: `Render plays one transition between two screens with the software renderer
and writes a PNG per frame. KIND is a transition kind (see "retro list"), or a
name defined in the file given with --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			res, err := renderFrames(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d frames", len(res.frames)))

			out := cmd.OutOrStdout()
			printSuccess(out, "%s %s", StyleTitle.Render(res.transition.Kind().String()), StyleDim.Render(fmt.Sprintf("%.2fs", res.transition.TransitionDuration())))
			printKeyValue(out, "frames", fmt.Sprintf("%d", len(res.frames)))
			printKeyValue(out, "completed", fmt.Sprintf("%t", res.success))
			if n := len(res.frames); n > 0 {
				printFile(out, res.frames[0])
				if n > 1 {
					printFile(out, res.frames[n-1])
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "frames per second")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "screen width in points")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "screen height in points")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per point")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with named transitions")
	cmd.Flags().BoolVar(&opts.cancel, "cancel", false, "cancel the transition when it starts")
	cmd.Flags().BoolVar(&opts.pop, "pop", false, "animate a pop instead of a push")
	cmd.Flags().StringVar(&opts.fromImage, "from-image", "", "PNG shown on the outgoing screen")
	cmd.Flags().StringVar(&opts.toImage, "to-image", "", "PNG shown on the incoming screen")
	return cmd
}

// lookupTransition resolves name as a config entry when a config file is
// given, otherwise as a kind.
func lookupTransition(name, configPath string) (retro.Transition, error) {
	if configPath != "" {
		cfg, err := retro.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Build(name)
	}
	k, err := retro.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return retro.New(k)
}

func renderFrames(ctx context.Context, name string, opts renderOpts) (*renderResult, error) {
	logger := loggerFromContext(ctx)
	if opts.fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", opts.fps)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("invalid screen size %gx%g", opts.width, opts.height)
	}
	t, err := lookupTransition(name, opts.config)
	if err != nil {
		return nil, err
	}
	from, err := newScreen("from", opts.width, opts.height, colorFrom, opts.fromImage)
	if err != nil {
		return nil, err
	}
	to, err := newScreen("to", opts.width, opts.height, colorTo, opts.toImage)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return nil, err
	}

	renderer := retro.NewSoftRenderer(opts.scale)
	container := retro.NewView("container", retro.Rect{Width: opts.width, Height: opts.height})
	tl := retro.NewTimeline()
	nav := retro.NewNavigator(container, tl, renderer)
	reg := retro.NewRegistry(nav)

	res := &renderResult{transition: t}
	var settled bool
	nav.OnSettle = func(op retro.Operation, success bool) {
		settled = true
		res.success = success
	}

	if opts.pop {
		if err := nav.Push(to, false); err != nil {
			return nil, err
		}
		if err := nav.Push(from, false); err != nil {
			return nil, err
		}
		settled = false
		if _, err := reg.Pop(t); err != nil {
			return nil, err
		}
	} else {
		if err := nav.Push(from, false); err != nil {
			return nil, err
		}
		settled = false
		if err := reg.Push(to, t); err != nil {
			return nil, err
		}
	}
	if opts.cancel {
		nav.Cancel()
	}

	dt := 1 / float64(opts.fps)
	maxFrames := int(math.Ceil(t.TransitionDuration()*float64(opts.fps))) + 2*opts.fps + 1
	label := t.Kind().String()
	writeFrame := func() error {
		path := filepath.Join(opts.out, fmt.Sprintf("%s_%04d.png", label, len(res.frames)))
		snap := &retro.Snapshot{Image: renderer.Render(container, colorBG), Scale: opts.scale}
		if err := snap.WritePNG(path); err != nil {
			return err
		}
		res.frames = append(res.frames, path)
		logger.Debug("frame written", "path", path, "time", tl.Now())
		return nil
	}

	if err := writeFrame(); err != nil {
		return nil, err
	}
	for nav.Busy() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(res.frames) >= maxFrames {
			return nil, fmt.Errorf("%s did not finish after %d frames", label, len(res.frames))
		}
		tl.Update(dt)
		if err := writeFrame(); err != nil {
			return nil, err
		}
	}
	if !settled {
		return nil, errors.New("navigation did not settle")
	}
	return res, nil
}

// newScreen builds a full-screen view with a solid background, an inset
// panel and, when imagePath is set, a picture.
func newScreen(name string, w, h float64, c retro.Color, imagePath string) (*retro.View, error) {
	screen := retro.NewColorView(name, retro.Rect{Width: w, Height: h}, c)
	inset := math.Min(w, h) / 8
	panel := retro.NewColorView(name+"-panel", retro.RectMovedIn(screen.Bounds(), inset),
		retro.Color{R: c.R * 0.6, G: c.G * 0.6, B: c.B * 0.6, A: 1})
	screen.AddChild(panel)

	if imagePath == "" {
		return screen, nil
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", imagePath, err)
	}
	screen.AddChild(retro.NewImageView(name+"-image", retro.Rect{Width: w, Height: h}, img))
	return screen, nil
}
