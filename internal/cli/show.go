package cli

import (
	"fmt"
	"os"

	"github.com/apeview/apeview/internal/keymap"
	"github.com/apeview/apeview/internal/reporter"
	"github.com/spf13/cobra"
)

var showFormat string

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the parsed keymap without the interactive UI",
	Long: `Parse the annotated xmonad configuration and print the keymap.

Useful for scripting and for piping into other tools:
  apeview show
  apeview show --format json | jq '.sections[].name'
  apeview show --format yaml > keymap.yaml`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "text",
		"output format: text, json or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := cfg.ResolveKeymapPath()
	if err != nil {
		logError("Failed to resolve keymap path: %v", err)
		return err
	}

	logVerbose("Reading %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logError("Failed to read keymap file: %v", err)
		return err
	}

	km := keymap.ParseWith(string(data), keymap.Options{KeepComments: cfg.ShowComments})
	logDebug("Parsed %d sections, %d keybinds", km.SectionCount(), km.KeybindCount())

	out := cmd.OutOrStdout()
	switch showFormat {
	case "text":
		return reporter.NewTextReporter(out).Generate(km)
	case "json":
		return reporter.NewJSONReporter(out, true).Generate(km)
	case "yaml":
		return reporter.NewYAMLReporter(out).Generate(km)
	default:
		return fmt.Errorf("invalid format: %s (must be text, json or yaml)", showFormat)
	}
}
