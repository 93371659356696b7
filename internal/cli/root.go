package cli

import (
	"fmt"
	"os"

	"github.com/apeview/apeview/internal/config"
	"github.com/spf13/cobra"
)

const (
	ExitOK           = 0 // Success
	ExitInvalidInput = 2 // Bad configuration or flags
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	keymapFile string
	verbose    bool
	debug      bool

	version = "dev"
)

// rootCmd represents the base command. Run without a subcommand it
// opens the interactive keymap browser.
var rootCmd = &cobra.Command{
	Use:   "apeview",
	Short: "apeview - Browse annotated xmonad keybindings",
	Long: `apeview reads the annotation comments of an xmonad configuration file
and turns them into a browsable, fuzzy-searchable keymap.

Annotate your xmonad.hs with:
  -- # My keymap          begin marker (title optional)
  -- ## Section name      section header
  -- Description text     describes the binding tuple on the next line
  -- "M-x" Description    keybind with no backing binding line
  -- ! Description        hide the next binding from the keymap
  -- #                    end marker

Run apeview without arguments to open the interactive browser.

Other commands:
  apeview show --format yaml
  apeview doctor
  apeview sample-config`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override config file values.
		if keymapFile != "" {
			cfg.KeymapPath = keymapFile
		}
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
	RunE: runView,
}

// SetVersion records the build-time version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(ExitRuntimeError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./apeview.yaml, ~/apeview.yaml or $XDG_CONFIG_HOME/apeview/apeview.yaml)")
	rootCmd.PersistentFlags().StringVarP(&keymapFile, "file", "f", "",
		"annotated xmonad config file (overrides keymap_path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(sampleConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "apeview %s\n", version)
	},
}

// sampleConfigCmd prints a commented sample configuration file.
var sampleConfigCmd = &cobra.Command{
	Use:   "sample-config",
	Short: "Print a sample configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.GenerateSampleConfig())
	},
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
