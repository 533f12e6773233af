package conf

import (
	"fmt"
	"os"
	"strings"

	"refindorder/internal/model"
)

// File is a loaded configuration file: the raw lines (terminators
// preserved) plus the directives detected in them. Nothing is written
// back to disk until Save is called.
type File struct {
	Path       string
	Lines      []string
	Directives []model.Directive

	// lineIdx[i] is the index into Lines for Directives[i].
	lineIdx []int
}

// Load reads the whole file and collects the scanfor/showtools
// directives that carry at least one token, in file order. Directive
// lines with no tokens are detected but not collected; they pass
// through untouched like any other line.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f := &File{
		Path:  path,
		Lines: splitLines(data),
	}

	for i, line := range f.Lines {
		name, commented, ok := Detect(line)
		if !ok {
			continue
		}
		items := ParseItems(line)
		if len(items) == 0 {
			continue
		}
		f.Directives = append(f.Directives, model.Directive{
			Name:      name,
			Items:     items,
			Line:      i + 1,
			Commented: commented,
		})
		f.lineIdx = append(f.lineIdx, i)
	}
	return f, nil
}

// Rewrite replaces directive d's underlying line with the formatted
// form of items. The directive's recorded Items are updated to match.
// Note that this drops any comment marker or inline comment the
// original line carried.
func (f *File) Rewrite(d int, items []string) {
	f.Lines[f.lineIdx[d]] = Format(f.Directives[d].Name, items)
	f.Directives[d].Items = items
	f.Directives[d].Commented = false
}

// Render returns the full current file contents.
func (f *File) Render() string {
	return strings.Join(f.Lines, "")
}

// Save writes the current contents back to the original path,
// overwriting it. The write happens in one shot; until Save is called
// the on-disk file is untouched.
func (f *File) Save() error {
	if err := os.WriteFile(f.Path, []byte(f.Render()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// Process runs the full read-reorder-write cycle: every detected
// directive is offered to the provider in file order, the returned
// order replaces the line, and the file is written back once at the
// end. This is the tool's default mode.
func Process(path string, provider Provider) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	f.Reorder(provider)
	return f.Save()
}

// Provider supplies a new ordering for a directive's tokens. The
// interactive console prompter is one implementation; the TUI and
// scripted test providers are others. Implementations must return a
// permutation of items — same length, same contents.
type Provider interface {
	Reorder(name string, items []string) []string
}

// Reorder passes each directive through the provider and rewrites its
// line with the result, in memory only.
func (f *File) Reorder(provider Provider) {
	for i, d := range f.Directives {
		f.Rewrite(i, provider.Reorder(d.Name, d.Items))
	}
}

// splitLines splits data into lines, keeping each line's terminator so
// untouched lines round-trip byte-for-byte. A final line without a
// trailing newline is kept as-is.
func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}
