package reorder

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestConsoleReorder(t *testing.T) {
	items := []string{"internal", "hdbios", "biosexternal"}

	tests := []struct {
		name     string
		input    string
		want     []string
		wantWarn bool
	}{
		{"valid permutation", "2 1 3\n", []string{"hdbios", "internal", "biosexternal"}, false},
		{"empty keeps order", "\n", items, false},
		{"whitespace-only keeps order", "   \n", items, false},
		{"eof keeps order", "", items, false},
		{"non-numeric", "a b c\n", items, true},
		{"wrong count", "1 2\n", items, true},
		{"duplicate index", "1 1 2\n", items, true},
		{"out of range", "1 2 4\n", items, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsoleWith(strings.NewReader(tt.input), &out)

			got := c.Reorder("scanfor", items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reorder() = %v, want %v", got, tt.want)
			}

			warned := strings.Contains(out.String(), "Invalid input; keeping existing order.")
			if warned != tt.wantWarn {
				t.Errorf("warning printed = %v, want %v (output %q)", warned, tt.wantWarn, out.String())
			}
		})
	}
}

// The listing shown before the prompt is 1-based and in current order.
func TestConsoleListing(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleWith(strings.NewReader("\n"), &out)
	c.Reorder("showtools", []string{"shell", "about"})

	s := out.String()
	for _, want := range []string{"showtools", "Current order:", "  1. shell", "  2. about", "Enter new order"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

// Each Reorder call consumes exactly one response line, so a session
// with several directives stays in lockstep with its input.
func TestConsoleSequentialResponses(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleWith(strings.NewReader("2 1\n\n"), &out)

	first := c.Reorder("scanfor", []string{"a", "b"})
	if !reflect.DeepEqual(first, []string{"b", "a"}) {
		t.Errorf("first Reorder() = %v", first)
	}
	second := c.Reorder("showtools", []string{"x", "y"})
	if !reflect.DeepEqual(second, []string{"x", "y"}) {
		t.Errorf("second Reorder() = %v", second)
	}
}
