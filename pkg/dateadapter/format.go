package dateadapter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

// ErrInvalidPattern is returned by FormatDate for patterns containing
// unknown letters or an unterminated quoted literal.
var ErrInvalidPattern = errors.New("invalid format pattern")

// formatPattern renders t using CLDR-style tokens (yyyy, MMM, dd, EEEE,
// HH, mm, ss, SSS, a, ...). Text inside single quotes is copied
// verbatim and '' is a literal quote.
func formatPattern(t time.Time, pattern string, names monday.Locale) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated literal at offset %d", ErrInvalidPattern, i)
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		if !isLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		n := 1
		for i+n < len(pattern) && pattern[i+n] == c {
			n++
		}
		s, ok := formatToken(t, c, n, names)
		if !ok {
			return "", fmt.Errorf("%w: unsupported token %q at offset %d", ErrInvalidPattern, pattern[i:i+n], i)
		}
		b.WriteString(s)
		i += n
	}
	return b.String(), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func formatToken(t time.Time, c byte, n int, names monday.Locale) (string, bool) {
	switch c {
	case 'y':
		switch n {
		case 1:
			return strconv.Itoa(t.Year()), true
		case 2:
			return pad(t.Year()%100, 2), true
		default:
			return pad(t.Year(), n), true
		}
	case 'M':
		switch n {
		case 1, 2:
			return pad(int(t.Month()), n), true
		case 3:
			return monday.Format(t, "Jan", names), true
		case 4:
			return monday.Format(t, "January", names), true
		case 5:
			return firstLetter(monday.Format(t, "January", names)), true
		}
	case 'd':
		if n <= 2 {
			return pad(t.Day(), n), true
		}
	case 'E':
		switch {
		case n <= 3:
			return monday.Format(t, "Mon", names), true
		case n == 4:
			return monday.Format(t, "Monday", names), true
		case n == 5:
			return firstLetter(monday.Format(t, "Monday", names)), true
		}
	case 'H':
		if n <= 2 {
			return pad(t.Hour(), n), true
		}
	case 'h':
		if n <= 2 {
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			return pad(h, n), true
		}
	case 'm':
		if n <= 2 {
			return pad(t.Minute(), n), true
		}
	case 's':
		if n <= 2 {
			return pad(t.Second(), n), true
		}
	case 'S':
		if n <= 9 {
			frac := pad(t.Nanosecond(), 9)
			return frac[:n], true
		}
	case 'a':
		if n <= 3 {
			return monday.Format(t, "PM", names), true
		}
	}
	return "", false
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return s[:size]
}
