package conf

import (
	"regexp"
	"strings"
	"unicode"
)

// Pattern: optional run of '#', optional whitespace, then the keyword
// as a whole word. Matches both active and commented-out lines:
// scanfor internal,external
// #showtools shell,about
var directiveRe = regexp.MustCompile(`(?i)^(#*)\s*(scanfor|showtools)\b`)

// Detect reports whether line is a scanfor/showtools directive line.
// It returns the keyword as written in the file (case preserved) and
// whether the line carries a leading comment marker.
func Detect(line string) (name string, commented bool, ok bool) {
	m := directiveRe.FindStringSubmatch(line)
	if m == nil {
		return "", false, false
	}
	return m[2], m[1] != "", true
}

// ParseItems extracts the ordered comma-separated tokens from a
// directive line. Everything from the first '#' after the keyword is
// an inline comment and contributes nothing. A directive with no
// remainder yields nil, which callers treat as "leave line untouched".
func ParseItems(line string) []string {
	// Skip past the leading '#' run and the keyword.
	loc := directiveRe.FindStringIndex(line)
	if loc == nil {
		return nil
	}
	rest := line[loc[1]:]

	// Inline comment removal.
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimRight(rest, "\r\n")

	// The remainder starts at the first whitespace run after the
	// keyword. "scanfor,internal" has no remainder at all.
	if rest == "" || !unicode.IsSpace(rune(rest[0])) {
		return nil
	}

	var items []string
	for _, piece := range strings.Split(rest, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// Format serializes a directive back into a config line:
// name, one space, comma-joined tokens, newline. No spaces around
// commas, no comment marker, no inline comment.
func Format(name string, items []string) string {
	return name + " " + strings.Join(items, ",") + "\n"
}
