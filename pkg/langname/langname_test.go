package langname

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ja", "Japanese"},
		{"nl", "Dutch"},
		{"no", "Norwegian"},
		{"not a tag!", "not a tag!"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Name(tt.code); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
