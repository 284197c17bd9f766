package tgui

import (
	"html"
	"regexp"
	"strings"
)

// H represents HTML that is safe to pass to Telegram when ParseMode="HTML".
// Values of type H should be treated as already-escaped.
type H string

func (h H) String() string { return string(h) }

// Esc escapes text for Telegram HTML parse mode.
func Esc(s string) H { return H(html.EscapeString(s)) }

// Raw marks a string as already-safe HTML.
// Use sparingly.
func Raw(s string) H { return H(s) }

func wrap(tag string, inner H) H { return H("<" + tag + ">" + inner.String() + "</" + tag + ">") }

// B renders bold text; s is escaped.
func B(s string) H { return wrap("b", Esc(s)) }

// JoinH joins safe HTML lines with sep. Unlike strings.Join it keeps empty
// parts, so callers can use "" to emit blank lines.
func JoinH(sep string, parts ...H) H {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = p.String()
	}
	return H(strings.Join(ss, sep))
}

var reTag = regexp.MustCompile(`<[^<>]*>`)

// Plain strips tags and unescapes entities, for console copies of a message.
func Plain(h H) string {
	return html.UnescapeString(reTag.ReplaceAllString(h.String(), ""))
}
