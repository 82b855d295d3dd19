package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/engine"
	"github.com/gogpu/replay/internal/config"
	"github.com/gogpu/replay/preview"
)

func runRootCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := replay.Logger()
	t.Cleanup(func() {
		replay.SetLogger(orig)
		resetFlags()
	})

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	rootCmd.SetArgs(nil)
	return strings.TrimSpace(buf.String()), err
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	runCmd.Flags().VisitAll(reset)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRootCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "replaydemo "+version {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestTypesCommand(t *testing.T) {
	out, err := runRootCommand(t, "types")
	if err != nil {
		t.Fatalf("types failed: %v", err)
	}
	for _, want := range []string{"translate", "mouse-move", "scrub", "marker", "samples"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunCommandWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	out, err := runRootCommand(t, "run", "--range-max", "60", "--every", "20", "--out", dir)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "forward and backward replay agree on 61 frames") {
		t.Fatalf("expected symmetry line, got:\n%s", out)
	}
	if !strings.Contains(out, "tracks:   3") {
		t.Fatalf("expected three tracks, got:\n%s", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read frames dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"frame_00000.png", "frame_00020.png", "frame_00040.png", "frame_00060.png"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("frames = %v, want %v", names, want)
	}
}

func TestRunCommandRejectsInvalidFlags(t *testing.T) {
	_, err := runRootCommand(t, "run", "--stride", "0")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestApplyOverridesOnlyChangedFlags(t *testing.T) {
	t.Cleanup(resetFlags)
	if err := rootCmd.PersistentFlags().Set("stride", "5"); err != nil {
		t.Fatalf("set stride: %v", err)
	}
	base := config.Config{RangeMax: 100, Stride: 1, Zoom: 4, LogLevel: "warn"}
	got := apply(rootCmd, base)
	want := base
	want.Stride = 5
	if got != want {
		t.Fatalf("apply = %+v, want %+v", got, want)
	}
}

func TestRecordScriptProducesEvents(t *testing.T) {
	eng := engine.New(demoScene(), engine.WithRange(0, 90))
	if err := record(eng, demoScript(91)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if eng.Store().Len() != 3 {
		t.Fatalf("tracks = %d, want 3", eng.Store().Len())
	}
	for _, tr := range eng.Store().Tracks() {
		if tr.Events() != 1 {
			t.Errorf("track %s has %d events, want 1", tr.Entity(), tr.Events())
		}
	}
	if got := symmetric(eng); got != -1 {
		t.Errorf("replay differs at frame %d", got)
	}
}

func TestScrubFramesRestoresTool(t *testing.T) {
	orig := runEvery
	runEvery = 10
	t.Cleanup(func() { runEvery = orig })

	tests := []struct {
		name    string
		closed  bool
		wantN   int
		wantErr error
	}{
		{"open pool", false, 4, nil},
		{"closed pool", true, 0, preview.ErrPoolClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := engine.New(demoScene(), engine.WithRange(0, 30))
			before := eng.ActiveTool().Kind()

			pool, err := preview.NewPool(2, 32, 32)
			if err != nil {
				t.Fatalf("NewPool: %v", err)
			}
			defer pool.Close()
			if tt.closed {
				_ = pool.Close()
			}

			n, err := scrubFrames(eng, t.TempDir(), pool)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("scrubFrames error = %v, want %v", err, tt.wantErr)
			}
			if n != tt.wantN {
				t.Errorf("frames = %d, want %d", n, tt.wantN)
			}
			if got := eng.ActiveTool(); got.Kind() != before || got.Active() {
				t.Errorf("active tool = %s (active %v), want idle %s", got.Kind(), got.Active(), before)
			}
			if err := pool.Wait(); err != nil {
				t.Errorf("pool.Wait: %v", err)
			}
		})
	}
}
