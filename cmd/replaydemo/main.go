// Command replaydemo scripts a gesture session against the replay engine,
// scrubs the recording and renders frames to PNG.
package main

import (
	"github.com/gogpu/replay/internal/cli"
	"github.com/gogpu/replay/internal/config"
)

func main() {
	if err := cli.Execute(); err != nil {
		config.Exitf("replaydemo: %v", err)
	}
}
