package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/engine"
	"github.com/gogpu/replay/preview"
	"github.com/gogpu/replay/tool"
)

var (
	runOut    string
	runEvery  int
	runWidth  int
	runHeight int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Record a scripted session, verify replay and render frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.OutOrStdout())
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runOut, "out", "o", "", "directory for rendered PNG frames (none when empty)")
	f.IntVar(&runEvery, "every", 10, "render one frame every N timeline frames")
	f.IntVar(&runWidth, "width", 640, "frame width")
	f.IntVar(&runHeight, "height", 400, "frame height")
}

func runSession(out io.Writer) error {
	eng := engine.New(demoScene(), engineOptions(cfg)...)
	clock := eng.Clock()
	p := message.NewPrinter(language.English)

	printHeader(out, "Recording")
	if err := record(eng, demoScript(clock.Range().Len())); err != nil {
		fmt.Fprintln(out, color.YellowString("  some gestures failed: %v", err))
	}
	summarize(out, p, eng)

	printHeader(out, "Replay")
	if t := symmetric(eng); t >= 0 {
		fmt.Fprintln(out, color.RedString("  ✗ forward and backward replay differ at frame %d", t))
		return fmt.Errorf("replay not symmetric at frame %d", t)
	}
	p.Fprintf(out, "  %s forward and backward replay agree on %d frames\n",
		color.GreenString("✓"), clock.Range().Len())

	if runOut == "" {
		return nil
	}
	n, err := renderFrames(eng, runOut)
	if err != nil {
		return err
	}
	printHeader(out, "Frames")
	p.Fprintf(out, "  %d frames written to %s\n", n, runOut)
	return nil
}

func summarize(out io.Writer, p *message.Printer, eng *engine.Engine) {
	var events, samples int
	for _, t := range eng.Store().Tracks() {
		for _, ch := range t.Channels() {
			for _, ev := range ch.Events() {
				events++
				samples += ev.Samples()
			}
		}
	}
	p.Fprintf(out, "  entities: %d\n  tracks:   %d\n  events:   %d\n  samples:  %d\n",
		eng.Scene().Len(), eng.Store().Len(), events, samples)
	if first, end, ok := eng.Store().Snapshot().Span(); ok {
		p.Fprintf(out, "  span:     [%d, %d)\n", first, end)
	}
}

// renderFrames scrubs from the start of the range to the end with the
// scrub tool, handing a snapshot every runEvery frames to a render pool.
func renderFrames(eng *engine.Engine, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	pool, err := preview.NewPool(0, runWidth, runHeight)
	if err != nil {
		return 0, err
	}

	n, err := scrubFrames(eng, dir, pool)
	return n, errors.Join(err, pool.Wait(), pool.Close())
}

func scrubFrames(eng *engine.Engine, dir string, pool *preview.Pool) (n int, err error) {
	clock := eng.Clock()
	clock.Stop()
	if err := eng.HoldTool(tool.KindScrub); err != nil {
		return 0, err
	}
	defer func() { err = errors.Join(err, eng.ReleaseTool()) }()
	if err := eng.PointerDown(replay.NilEntity, tool.Input{}); err != nil {
		return 0, err
	}
	defer func() { err = errors.Join(err, eng.PointerUp()) }()

	step := max(runEvery, 1)
	for {
		t := clock.Time()
		err := pool.Submit(preview.Frame{
			Entities: eng.Scene().Snapshot(),
			Tracks:   eng.Store().Snapshot(),
			Clock:    clock.State(),
			Path:     filepath.Join(dir, fmt.Sprintf("frame_%05d.png", t)),
		})
		if err != nil {
			return n, err
		}
		n++

		if t >= clock.Range().Max {
			return n, nil
		}
		if err := eng.PointerMove(tool.Input{Delta: gg.V2(float64(step)*clock.Zoom(), 0)}); err != nil {
			return n, fmt.Errorf("scrub at frame %d: %w", t, err)
		}
		if clock.Time() <= t {
			return n, fmt.Errorf("scrub stalled at frame %d", t)
		}
	}
}
