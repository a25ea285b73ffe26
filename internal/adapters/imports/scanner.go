package imports

import (
	"regexp"
	"slices"
	"strings"
)

var (
	fromRE = regexp.MustCompile(`\bfrom\s*['"]([^'"\n]+)['"]`)
	bareRE = regexp.MustCompile(`\bimport\s*['"]([^'"\n]+)['"]`)
	callRE = regexp.MustCompile(`\b(?:import|require)\s*\(\s*['"]([^'"\n]+)['"]\s*\)`)
)

// scanSpecifiers extracts module specifiers from source text in order of
// appearance. It covers import/export declarations, side-effect imports,
// and require/dynamic import calls. Comments are stripped first so
// commented-out imports are not picked up.
func scanSpecifiers(src string) []string {
	code := stripComments(src)

	type match struct {
		pos  int
		spec string
	}

	var matches []match
	seen := make(map[int]struct{})

	for _, re := range []*regexp.Regexp{fromRE, bareRE, callRE} {
		for _, m := range re.FindAllStringSubmatchIndex(code, -1) {
			start := m[2]
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			matches = append(matches, match{pos: start, spec: code[m[2]:m[3]]})
		}
	}

	slices.SortFunc(matches, func(a, b match) int { return a.pos - b.pos })

	specs := make([]string, len(matches))
	for i, m := range matches {
		specs[i] = m.spec
	}
	return specs
}

// stripComments blanks out line and block comments. String literals are
// tracked so a "//" inside one (a URL, say) does not start a comment.
// Byte offsets are preserved by replacing comment content with spaces.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	const (
		stCode = iota
		stLineComment
		stBlockComment
		stString
	)

	state := stCode
	var quote byte

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch state {
		case stCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state = stLineComment
				b.WriteByte(' ')
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state = stBlockComment
				b.WriteByte(' ')
			case c == '\'' || c == '"' || c == '`':
				state = stString
				quote = c
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}

		case stLineComment:
			if c == '\n' {
				state = stCode
				b.WriteByte(c)
			} else {
				b.WriteByte(' ')
			}

		case stBlockComment:
			switch {
			case c == '*' && i+1 < len(src) && src[i+1] == '/':
				state = stCode
				b.WriteString("  ")
				i++
			case c == '\n':
				b.WriteByte(c)
			default:
				b.WriteByte(' ')
			}

		case stString:
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(c)
				i++
				b.WriteByte(src[i])
				continue
			}
			b.WriteByte(c)
			if c == quote {
				state = stCode
			}
		}
	}

	return b.String()
}
