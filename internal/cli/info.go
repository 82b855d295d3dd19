package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/replay/tool"
	"github.com/gogpu/replay/track"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "replaydemo %s\n", version)
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List event types and tools",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		printHeader(out, "Event types")
		for _, t := range track.EventTypes() {
			c := t.Color()
			rec := "marker"
			if t.HasPayload() {
				rec = "samples"
			}
			fmt.Fprintf(out, "  %-14s #%02x%02x%02x  %s\n", t,
				uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), rec)
		}
		printHeader(out, "Tools")
		for _, k := range tool.Kinds() {
			fmt.Fprintf(out, "  %s\n", k)
		}
	},
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, color.New(color.Bold, color.FgCyan).Sprint(title))
}
