package tgui

import "unicode/utf8"

// TruncRunes returns s truncated to at most n runes, the last of which is an
// ellipsis "…" when truncation happened.
func TruncRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n-1 {
			return s[:i] + "…"
		}
		count++
	}
	return s
}

// SplitHTML splits s into contiguous chunks of at most n runes, each safe to
// send on its own with ParseMode=HTML. Concatenating the chunks yields s.
//
// A chunk ends after the last newline of its window when that leaves at least
// n/3 runes in it. Otherwise the cut moves back before a tag or entity that
// would be left unterminated. A window with no usable cut is split at n.
func SplitHTML(s string, n int) []string {
	if s == "" {
		return nil
	}
	rs := []rune(s)
	if n <= 0 || len(rs) <= n {
		return []string{s}
	}

	out := make([]string, 0, len(rs)/n+1)
	for start := 0; start < len(rs); {
		end := start + n
		if end >= len(rs) {
			out = append(out, string(rs[start:]))
			break
		}
		end = htmlCut(rs, start, end, n)
		out = append(out, string(rs[start:end]))
		start = end
	}
	return out
}

func htmlCut(rs []rune, start, end, n int) int {
	for i := end - 1; i-start >= n/3; i-- {
		if rs[i] == '\n' {
			return i + 1
		}
	}
	if i := danglingMarkup(rs[start:end]); i > 0 {
		return start + i
	}
	return end
}

// danglingMarkup returns the index of the earliest "<" or "&" in rs that is
// not closed by a later ">" or ";", or -1.
func danglingMarkup(rs []rune) int {
	cut := -1
	lastOpen, lastClose := -1, -1
	lastAmp, lastSemi := -1, -1
	for i, r := range rs {
		switch r {
		case '<':
			lastOpen = i
		case '>':
			lastClose = i
		case '&':
			lastAmp = i
		case ';':
			lastSemi = i
		}
	}
	if lastOpen > lastClose {
		cut = lastOpen
	}
	if lastAmp > lastSemi && (cut == -1 || lastAmp < cut) {
		cut = lastAmp
	}
	return cut
}
