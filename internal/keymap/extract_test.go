package keymap

import "testing"

func TestExtractBinding(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantKeys   string
		wantAction string
		wantOK     bool
	}{
		{"bare tuple", `("M-t")`, "M-t", "", true},
		{"list element", `, ("M-t", spawn myTerminal)`, "M-t", "spawn myTerminal", true},
		{"keys containing paren", `, ( "M-)", stuff)`, "M-)", "stuff", true},
		{"special key token", `, ("M-<Space>", sendMessage NextLayout)`, "M-<Space>", "sendMessage NextLayout", true},
		{"quoted action argument", `, ("M-C-q", spawn "xmonad --recompile")`, "M-C-q", `spawn "xmonad --recompile"`, true},
		{"no quoted token", ", (xK_space, foo)", "", "", false},
		{"plain code", "main = xmonad def", "", "", false},
		{"unterminated quote", `, ("M-t, spawn $ myTerminal)`, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, action, ok := ExtractBinding(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ExtractBinding(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if keys != tt.wantKeys {
				t.Errorf("keys = %q, want %q", keys, tt.wantKeys)
			}
			if action != tt.wantAction {
				t.Errorf("action = %q, want %q", action, tt.wantAction)
			}
		})
	}
}
