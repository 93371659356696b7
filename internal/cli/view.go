package cli

import (
	"fmt"
	"os"

	"github.com/apeview/apeview/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runView opens the interactive browser. It is the root command's RunE.
func runView(cmd *cobra.Command, args []string) error {
	path, err := cfg.ResolveKeymapPath()
	if err != nil {
		logError("Failed to resolve keymap path: %v", err)
		return err
	}

	if _, err := os.Stat(path); err != nil {
		logError("Keymap file not accessible: %v", err)
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'apeview show' for non-interactive output")
	}

	logVerbose("Opening keymap browser for %s", path)
	return tui.Run(cfg, path)
}
