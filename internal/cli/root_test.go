package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(buf.String(), "apeview 1.2.3") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}

func TestSampleConfigCommand(t *testing.T) {
	var buf bytes.Buffer
	sampleConfigCmd.SetOut(&buf)
	sampleConfigCmd.Run(sampleConfigCmd, nil)

	out := buf.String()
	for _, want := range []string{"keymap_path", "theme", "show_comments"} {
		if !strings.Contains(out, want) {
			t.Errorf("sample config missing %q", want)
		}
	}
}
