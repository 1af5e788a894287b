package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/parallax"
	"github.com/phanxgames/parallax/ebitenhost"
	"github.com/phanxgames/parallax/internal/logging"
)

// demoOptions holds the flags shared by the window and headless commands.
type demoOptions struct {
	verbosity  int
	boxes      int
	width      int
	height     int
	speed      float64
	lerp       float64
	offset     string
	once       bool
	scriptPath string
	hud        bool
}

// NewRootCmd builds the parallaxdemo command tree.
func NewRootCmd() *cobra.Command {
	opts := &demoOptions{}

	rootCmd := &cobra.Command{
		Use:   "parallaxdemo",
		Short: "Scroll a page of boxes with view detection and parallax",
		Long: `parallaxdemo lays out a column of boxes, tracks every other one with the
view detector and the rest with the parallax engine, and opens a window you
can scroll with the mouse wheel, PageUp/PageDown, Home and End.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.IntVar(&opts.boxes, "boxes", 24, "Number of boxes on the page")
	flags.IntVar(&opts.width, "width", 960, "Viewport width")
	flags.IntVar(&opts.height, "height", 720, "Viewport height")
	flags.Float64Var(&opts.speed, "speed", 3, "Parallax speed on the 0-10 scale")
	flags.Float64Var(&opts.lerp, "lerp", 2, "Parallax easing on the 0-10 scale, 0 snaps")
	flags.StringVar(&opts.offset, "offset", "", `Trigger offset for detected boxes, e.g. "10vh" or "25%"`)
	flags.BoolVar(&opts.once, "once", false, "Stop detecting boxes once they entered the view")
	flags.StringVar(&opts.scriptPath, "script", "", "JSON scroll script to play")

	rootCmd.Flags().BoolVar(&opts.hud, "hud", true, "Show the FPS/scroll overlay")

	rootCmd.AddCommand(newHeadlessCmd(opts))
	return rootCmd
}

func runWindow(opts *demoOptions) error {
	d, err := newDemo(opts)
	if err != nil {
		return err
	}
	defer d.tracker.Destroy()

	return ebitenhost.Run(d.tracker, d.page, ebitenhost.RunConfig{
		Title:              "parallax demo",
		Width:              opts.width,
		Height:             opts.height,
		ShowHUD:            opts.hud,
		Script:             d.script,
		ExitWhenScriptDone: d.script != nil,
	})
}

// demo is a tracker wired over a generated page.
type demo struct {
	page       *parallax.Page
	tracker    *parallax.Tracker
	script     *parallax.ScriptRunner
	detectIDs  []string
	speedIDs   []string
	enterCount int
	leaveCount int
}

func newDemo(opts *demoOptions) (*demo, error) {
	cfg := parallax.DefaultConfig()
	cfg.Logger = logging.GetLogger("parallax")
	cfg.Debug = opts.verbosity >= 3

	page := buildPage(opts.boxes, float64(opts.width), float64(opts.height))
	d := &demo{
		page:    page,
		tracker: parallax.New(page, page.Root(), cfg),
	}

	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		d.script, err = parallax.LoadScript(data)
		if err != nil {
			return nil, err
		}
	}

	var detectEls, speedEls []parallax.Element
	for i, b := range page.Boxes() {
		if i%2 == 0 {
			detectEls = append(detectEls, b)
		} else {
			speedEls = append(speedEls, b)
		}
	}

	detectOpts := parallax.ItemOptions{Once: opts.once}
	if opts.offset != "" {
		detectOpts.TriggerOffset = parallax.Symmetric(parallax.ParseOffset(opts.offset))
	}
	d.detectIDs = d.tracker.Detect.AddAll(detectEls, detectOpts)
	d.speedIDs = d.tracker.Speed.AddAll(speedEls, parallax.ItemOptions{
		Speed:    opts.speed,
		Lerp:     opts.lerp,
		AddClass: parallax.Bool(false),
	})

	if _, err := d.tracker.Detect.On("enter-view", func(ctx parallax.EventContext) {
		d.enterCount++
		log.Debug().Str("id", ctx.ID).Int("index", ctx.ItemIndex).Msg("enter view")
	}, d.detectIDs...); err != nil {
		return nil, err
	}
	if _, err := d.tracker.Detect.On("leave-view", func(ctx parallax.EventContext) {
		d.leaveCount++
		log.Debug().Str("id", ctx.ID).Int("index", ctx.ItemIndex).Msg("leave view")
	}, d.detectIDs...); err != nil {
		return nil, err
	}

	d.tracker.Initialize()
	return d, nil
}

// buildPage lays out n boxes in a centered column, each half a viewport
// tall with a quarter viewport of spacing.
func buildPage(n int, width, height float64) *parallax.Page {
	page := parallax.NewPage(width, height)
	boxW := width / 2
	boxH := height / 2
	gap := height / 4
	for i := 0; i < n; i++ {
		page.NewBox(fmt.Sprintf("box-%d", i), (width-boxW)/2, gap+float64(i)*(boxH+gap), boxW, boxH)
	}
	return page
}

const frameStep = time.Second / 60
