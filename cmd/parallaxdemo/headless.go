package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// maxHeadlessFrames bounds a headless run: ten minutes of 60 FPS frames.
const maxHeadlessFrames = 60 * 60 * 10

func newHeadlessCmd(opts *demoOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "headless",
		Short: "Play the scroll script without a window and print the final item states",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDemo(opts)
			if err != nil {
				return err
			}
			defer d.tracker.Destroy()

			if d.script != nil {
				d.tracker.SetScript(d.script)
			}
			frames := d.tracker.Settle(frameStep, maxHeadlessFrames)
			return d.report(cmd.OutOrStdout(), frames)
		},
	}
}

func (d *demo) report(out io.Writer, frames int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "frames: %d\tscroll: %.0f\tenter: %d\tleave: %d\n",
		frames, d.page.ScrollY(), d.enterCount, d.leaveCount)
	fmt.Fprintln(w, "ID\tENGINE\tIN VIEW\tY")
	for _, id := range d.detectIDs {
		st, ok := d.tracker.Registry.State(id)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\tdetect\t%t\t%.1f\n", id, st.IsInView, st.Coordinates.Y)
	}
	for _, id := range d.speedIDs {
		st, ok := d.tracker.Registry.State(id)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\tspeed\t%t\t%.1f\n", id, st.IsInView, st.Coordinates.Y)
	}
	return w.Flush()
}
