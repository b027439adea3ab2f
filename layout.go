package krholiday

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultLayout is the ISO calendar date pattern used when no format is given.
const DefaultLayout = "yyyy-MM-dd"

type tokenKind uint8

const (
	tokLiteral tokenKind = iota
	tokYear              // yyyy
	tokMonth2            // MM
	tokMonth             // M
	tokDay2              // dd
	tokDay               // d
)

func (k tokenKind) numeric() bool { return k != tokLiteral }

// variable reports whether the token accepts either one or two digits.
func (k tokenKind) variable() bool { return k == tokMonth || k == tokDay }

type token struct {
	kind tokenKind
	lit  string
}

// Layout is a compiled date format pattern. Patterns are built from the
// tokens yyyy (4-digit year), MM and dd (2-digit month and day), M and d
// (1 or 2 digit month and day), and literal separators. ASCII letters other
// than the tokens must be quoted ('T'); a doubled quote ('') is a literal
// quote. Non-ASCII text such as "년" may be used unquoted.
//
// A Layout is immutable and safe for concurrent use.
type Layout struct {
	pattern string
	tokens  []token
}

// ParseLayout compiles a format pattern. It fails with a *FormatError if the
// pattern does not contain exactly one year, one month and one day token, or
// if it is ambiguous (a 1-or-2 digit token directly followed by another
// numeric token or a quoted digit, as in "yyyyMd" or "M'1'd").
func ParseLayout(pattern string) (Layout, error) {
	fail := func(format string, args ...any) (Layout, error) {
		return Layout{}, &FormatError{Pattern: pattern, Reason: fmt.Sprintf(format, args...)}
	}

	var tokens []token
	addLiteral := func(s string) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == tokLiteral {
			tokens[n-1].lit += s
			return
		}
		tokens = append(tokens, token{kind: tokLiteral, lit: s})
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				addLiteral("'")
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return fail("unterminated quoted literal")
			}
			if end > 0 {
				addLiteral(pattern[i+1 : i+1+end])
			}
			i += end + 2
		case c == 'y' || c == 'M' || c == 'd':
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			kind, ok := tokenFor(c, n)
			if !ok {
				return fail("unsupported token %q", pattern[i:i+n])
			}
			tokens = append(tokens, token{kind: kind})
			i += n
		case c >= '0' && c <= '9':
			return fail("digit %q cannot be used as a separator", c)
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			return fail("unknown token %q", c)
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			addLiteral(pattern[i : i+size])
			i += size
		}
	}

	var years, months, days int
	for i, t := range tokens {
		switch t.kind {
		case tokYear:
			years++
		case tokMonth, tokMonth2:
			months++
		case tokDay, tokDay2:
			days++
		}
		if t.kind.variable() && i+1 < len(tokens) && startsWithDigit(tokens[i+1]) {
			return fail("ambiguous pattern: variable-width field followed by a numeric field")
		}
	}
	switch {
	case years != 1:
		return fail("pattern must contain exactly one yyyy token")
	case months != 1:
		return fail("pattern must contain exactly one month token (MM or M)")
	case days != 1:
		return fail("pattern must contain exactly one day token (dd or d)")
	}

	return Layout{pattern: pattern, tokens: tokens}, nil
}

// startsWithDigit reports whether t can begin with a digit: every numeric
// field, and quoted literals such as '1'.
func startsWithDigit(t token) bool {
	if t.kind.numeric() {
		return true
	}
	return t.lit != "" && t.lit[0] >= '0' && t.lit[0] <= '9'
}

func tokenFor(c byte, n int) (tokenKind, bool) {
	switch {
	case c == 'y' && n == 4:
		return tokYear, true
	case c == 'M' && n == 2:
		return tokMonth2, true
	case c == 'M' && n == 1:
		return tokMonth, true
	case c == 'd' && n == 2:
		return tokDay2, true
	case c == 'd' && n == 1:
		return tokDay, true
	}
	return tokLiteral, false
}

// MustLayout is like [ParseLayout] but panics if the pattern is invalid.
func MustLayout(pattern string) Layout {
	l, err := ParseLayout(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the source pattern.
func (l Layout) String() string { return l.pattern }

// Parse parses s according to the layout. It fails with a *FormatError if s
// does not follow the layout's structure or names a date that does not exist.
func (l Layout) Parse(s string) (Date, error) {
	fail := func(format string, args ...any) (Date, error) {
		return Date{}, &FormatError{Input: s, Pattern: l.pattern, Reason: fmt.Sprintf(format, args...)}
	}
	if len(l.tokens) == 0 {
		return fail("empty layout")
	}

	var d Date
	rest := s
	for _, t := range l.tokens {
		if t.kind == tokLiteral {
			if !strings.HasPrefix(rest, t.lit) {
				return fail("expected %q at offset %d", t.lit, len(s)-len(rest))
			}
			rest = rest[len(t.lit):]
			continue
		}

		minWidth, maxWidth := 2, 2
		switch t.kind {
		case tokYear:
			minWidth, maxWidth = 4, 4
		case tokMonth, tokDay:
			minWidth = 1
		}
		n := 0
		for n < maxWidth && n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n < minWidth {
			return fail("expected %d digits at offset %d", minWidth, len(s)-len(rest))
		}
		v, _ := strconv.Atoi(rest[:n])
		rest = rest[n:]

		switch t.kind {
		case tokYear:
			d.year = v
		case tokMonth, tokMonth2:
			d.month = time.Month(v)
		case tokDay, tokDay2:
			d.day = v
		}
	}
	if rest != "" {
		return fail("unexpected trailing text %q", rest)
	}
	if reason := d.validate(); reason != "" {
		return fail("%s", reason)
	}
	return d, nil
}

// Format renders d according to the layout.
func (l Layout) Format(d Date) string {
	var b strings.Builder
	for _, t := range l.tokens {
		switch t.kind {
		case tokLiteral:
			b.WriteString(t.lit)
		case tokYear:
			fmt.Fprintf(&b, "%04d", d.year)
		case tokMonth2:
			fmt.Fprintf(&b, "%02d", int(d.month))
		case tokMonth:
			b.WriteString(strconv.Itoa(int(d.month)))
		case tokDay2:
			fmt.Fprintf(&b, "%02d", d.day)
		case tokDay:
			b.WriteString(strconv.Itoa(d.day))
		}
	}
	return b.String()
}

// Parse parses s using the given format pattern. See [Layout] for the
// supported tokens.
func Parse(s, pattern string) (Date, error) {
	l, err := ParseLayout(pattern)
	if err != nil {
		return Date{}, err
	}
	return l.Parse(s)
}

// Format renders d using the given format pattern.
func (d Date) Format(pattern string) (string, error) {
	l, err := ParseLayout(pattern)
	if err != nil {
		return "", err
	}
	return l.Format(d), nil
}
