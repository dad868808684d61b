package textkit

import (
	"regexp"
	"strings"
	"unicode"
)

// Markdown flattening for example sentences and glosses that arrive with
// light formatting. This is a strip, not a render: structure markers go,
// visible text stays
var (
	reFence      = regexp.MustCompile("(?m)^```[^\n]*$")
	reInlineCode = regexp.MustCompile("`([^`]*)`")
	reImage      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	reBoldStars  = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reBoldUnder  = regexp.MustCompile(`__([^_]+)__`)
	reItalStars  = regexp.MustCompile(`\*([^*]+)\*`)
	reItalUnder  = regexp.MustCompile(`\b_([^_]+)_\b`)
	reStrike     = regexp.MustCompile(`~~([^~]+)~~`)
	reHeading    = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	reQuote      = regexp.MustCompile(`(?m)^>[ \t]?`)
	reBullet     = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	reOrdered    = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
)

// PlainText strips Markdown syntax from md and returns the readable text.
// Whitespace runs collapse to single spaces; runs containing a newline
// collapse to one newline
func PlainText(md string) string {
	if md == "" {
		return ""
	}
	s := strings.ToValidUTF8(md, "")

	s = reFence.ReplaceAllString(s, "")
	s = reInlineCode.ReplaceAllString(s, "$1")
	s = reImage.ReplaceAllString(s, "$1")
	s = reLink.ReplaceAllString(s, "$1")
	s = reBoldStars.ReplaceAllString(s, "$1")
	s = reBoldUnder.ReplaceAllString(s, "$1")
	s = reItalStars.ReplaceAllString(s, "$1")
	s = reItalUnder.ReplaceAllString(s, "$1")
	s = reStrike.ReplaceAllString(s, "$1")
	s = reHeading.ReplaceAllString(s, "")
	s = reQuote.ReplaceAllString(s, "")
	s = reBullet.ReplaceAllString(s, "")
	s = reOrdered.ReplaceAllString(s, "")

	return collapseSpaces(s)
}

// collapseSpaces converts whitespace runs to a single ASCII space, but
// preserves line breaks: runs containing a newline collapse to one newline.
// Edges are trimmed
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	sawNL := false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS = false
		sawNL = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return strings.Trim(b.String(), " \n\t\r")
}
