package sanitization

import "testing"

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Jo Doe", "Jo Doe"},
		{"line breaks", "Jo\r\nDoe\nBcc: x@y.z", "Jo Doe Bcc: x@y.z"},
		{"tabs and runs", "  Jo\t\t Doe  ", "Jo Doe"},
		{"control chars", "Jo\x00\x1b Doe", "Jo Doe"},
		{"unicode separators", "Jo\u2028Doe\vSmith", "Jo Doe Smith"},
		{"unicode kept", "Zoë  Ångström", "Zoë Ångström"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SingleLine(tt.input); got != tt.want {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
