package conf

import (
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		wantName      string
		wantCommented bool
		wantOk        bool
	}{
		{"plain scanfor", "scanfor internal,external\n", "scanfor", false, true},
		{"plain showtools", "showtools shell,about\n", "showtools", false, true},
		{"leading whitespace", "   scanfor internal\n", "scanfor", false, true},
		{"commented out", "#scanfor manual\n", "scanfor", true, true},
		{"comment run with space", "##  showtools shell\n", "showtools", true, true},
		{"uppercase keyword", "SCANFOR internal\n", "SCANFOR", false, true},
		{"mixed case", "ShowTools shell\n", "ShowTools", false, true},
		{"bare keyword", "scanfor\n", "scanfor", false, true},
		{"keyword with comma", "scanfor,internal\n", "scanfor", false, true},
		{"other directive", "timeout 20\n", "", false, false},
		{"keyword as prefix", "scanforx internal\n", "", false, false},
		{"keyword mid-line", "icon scanfor internal\n", "", false, false},
		{"ordinary comment", "# rEFInd configuration\n", "", false, false},
		{"blank line", "\n", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, commented, ok := Detect(tt.line)
			if ok != tt.wantOk {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.line, ok, tt.wantOk)
			}
			if name != tt.wantName {
				t.Errorf("Detect(%q) name = %q, want %q", tt.line, name, tt.wantName)
			}
			if commented != tt.wantCommented {
				t.Errorf("Detect(%q) commented = %v, want %v", tt.line, commented, tt.wantCommented)
			}
		})
	}
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"basic", "scanfor internal,hdbios,biosexternal\n", []string{"internal", "hdbios", "biosexternal"}},
		{"inline comment", "scanfor manual,internal # comment\n", []string{"manual", "internal"}},
		{"spaces around commas", "showtools shell , memtest , gdisk\n", []string{"shell", "memtest", "gdisk"}},
		{"trailing comma", "scanfor internal,external,\n", []string{"internal", "external"}},
		{"double comma", "scanfor internal,,external\n", []string{"internal", "external"}},
		{"no remainder", "showtools\n", nil},
		{"only comment after keyword", "scanfor # nothing here\n", nil},
		{"keyword glued to comma", "scanfor,internal\n", nil},
		{"commented out", "#scanfor external,optical\n", []string{"external", "optical"}},
		{"crlf terminator", "scanfor internal,external\r\n", []string{"internal", "external"}},
		{"no terminator", "scanfor internal", []string{"internal"}},
		{"tab separated", "scanfor\tinternal,cd\n", []string{"internal", "cd"}},
		{"not a directive", "timeout 20\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseItems(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseItems(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format("scanfor", []string{"hdbios", "internal", "biosexternal"})
	want := "scanfor hdbios,internal,biosexternal\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

// Format(Detect+ParseItems(line)) must reproduce the tokens in source
// order when no reordering is applied (inline comments aside).
func TestRoundTrip(t *testing.T) {
	lines := []string{
		"scanfor internal,hdbios,biosexternal\n",
		"showtools shell,memtest,gdisk,apple_recovery,windows_recovery,mok_tool,about,reboot,exit\n",
	}
	for _, line := range lines {
		name, _, ok := Detect(line)
		if !ok {
			t.Fatalf("Detect(%q) failed", line)
		}
		if got := Format(name, ParseItems(line)); got != line {
			t.Errorf("round trip of %q = %q", line, got)
		}
	}
}
