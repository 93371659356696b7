package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/apeview/apeview/internal/keymap"
	"github.com/spf13/cobra"
)

var doctorFormat string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the setup and diagnose an empty keymap",
	Long: `Doctor validates your apeview setup:

  1. Configuration — valid and resolvable?
  2. Keymap file — found and readable?
  3. Annotations — begin marker present?
  4. Content — how many sections and keybinds parse?

The parser never fails on malformed input, it silently degrades; doctor
is the place to find out why a keymap came out empty.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorFormat, "format", "text",
		"output format: text or json")
}

type doctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "ok", "warn", "fail"
	Detail string `json:"detail,omitempty"`
}

type doctorResult struct {
	Checks  []doctorCheck `json:"checks"`
	Summary string        `json:"summary"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	result := doctorResult{}

	path, err := cfg.ResolveKeymapPath()
	if err != nil {
		result.Checks = append(result.Checks, doctorCheck{
			Name: "config", Status: "fail", Detail: err.Error(),
		})
		result.Summary = "configuration is broken"
		return printDoctorResult(cmd, result)
	}
	result.Checks = append(result.Checks, doctorCheck{
		Name: "config", Status: "ok",
		Detail: fmt.Sprintf("keymap_path resolves to %s", path),
	})

	data, err := os.ReadFile(path)
	if err != nil {
		result.Checks = append(result.Checks, doctorCheck{
			Name: "keymap file", Status: "fail", Detail: err.Error(),
		})
		result.Summary = "keymap file is not readable"
		return printDoctorResult(cmd, result)
	}
	result.Checks = append(result.Checks, doctorCheck{
		Name: "keymap file", Status: "ok",
		Detail: fmt.Sprintf("%d bytes", len(data)),
	})

	src := string(data)
	result.Checks = append(result.Checks, checkMarkers(src))

	km := keymap.Parse(src)
	content := doctorCheck{Name: "content"}
	switch {
	case km.Empty():
		content.Status = "warn"
		content.Detail = "no keybinds parsed; check the annotation grammar"
	default:
		content.Status = "ok"
		content.Detail = fmt.Sprintf("%d sections, %d keybinds", km.SectionCount(), km.KeybindCount())
	}
	result.Checks = append(result.Checks, content)

	result.Summary = "ready"
	for _, c := range result.Checks {
		if c.Status != "ok" {
			result.Summary = "problems found"
			break
		}
	}
	return printDoctorResult(cmd, result)
}

// checkMarkers scans for begin/end boundary markers without building
// the full keymap.
func checkMarkers(src string) doctorCheck {
	boundaries := 0
	for _, line := range strings.Split(src, "\n") {
		if keymap.Classify(line).Kind == keymap.EventBoundary {
			boundaries++
		}
	}

	check := doctorCheck{Name: "annotations"}
	switch {
	case boundaries == 0:
		check.Status = "warn"
		check.Detail = "no '-- #' begin marker found; the keymap will be empty"
	case boundaries == 1:
		check.Status = "warn"
		check.Detail = "begin marker found but no matching end marker"
	default:
		check.Status = "ok"
		check.Detail = fmt.Sprintf("%d boundary markers", boundaries)
	}
	return check
}

func printDoctorResult(cmd *cobra.Command, result doctorResult) error {
	out := cmd.OutOrStdout()

	if doctorFormat == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	icons := map[string]string{"ok": "✓", "warn": "!", "fail": "✗"}
	for _, c := range result.Checks {
		fmt.Fprintf(out, "%s %-12s %s\n", icons[c.Status], c.Name, c.Detail)
	}
	fmt.Fprintf(out, "\nSummary: %s\n", result.Summary)
	return nil
}
