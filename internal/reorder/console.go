package reorder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const promptText = "Enter new order as space-separated numbers (e.g. '3 1 2') " +
	"or press Enter to keep current order: "

// Console prompts on a terminal for a new token order, one question
// per directive. Reader and writer are injected so tests can script
// the session.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole returns a Console reading from stdin and writing to stdout.
func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, os.Stdout)
}

// NewConsoleWith returns a Console over the given streams.
func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Reorder shows the current order with 1-based indices and reads one
// response line. Empty response (or EOF) keeps the current order.
// Invalid input prints a warning and keeps the current order; it never
// aborts the run.
func (c *Console) Reorder(name string, items []string) []string {
	fmt.Fprintf(c.out, "\n%s\n", name)
	fmt.Fprintln(c.out, "Current order:")
	for i, item := range items {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, item)
	}
	fmt.Fprint(c.out, promptText)

	if !c.in.Scan() {
		// EOF mid-session: same as pressing Enter.
		fmt.Fprintln(c.out)
		return items
	}
	response := strings.TrimSpace(c.in.Text())
	if response == "" {
		return items
	}

	indices, err := ParsePermutation(response, len(items))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input; keeping existing order.")
		return items
	}
	return Apply(items, indices)
}
