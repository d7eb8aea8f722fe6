// Package style parses the semi-structured default-style string attached to
// text fields. The grammar is a small CSS-like declaration line:
//
//	font: [italic ][bold ]<family>[ <size>pt]; text-align:<value>
//
// Clauses are separated by ';' and order-independent. The family may be
// quoted (quotes stripped) or bare (terminated by ',' or whitespace). A
// missing or unparseable style string is not an error; it simply yields no
// opinion and the caller supplies defaults.
package style

import (
	"regexp"
	"strconv"
	"strings"
)

// FontStyle selects the face variant within a family.
type FontStyle int

const (
	Normal FontStyle = iota
	Italic
	Bold
	BoldItalic
)

func (s FontStyle) String() string {
	switch s {
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold italic"
	default:
		return "normal"
	}
}

// Alignment is the horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Text holds the parsed pieces of a style string. Font is "" when the
// declaration carried no family; Size and Align are nil when absent.
type Text struct {
	Font  string
	Style FontStyle
	Size  *float64
	Align *Alignment
}

var fontClause = regexp.MustCompile(
	`^(italic\s+)?(bold\s+)?(?:'([^']*)'|"([^"]*)"|([^,\s]+))(?:\s+(\d+(?:\.\d+)?)pt)?`)

// Parse extracts font, style, size and alignment from a style string.
func Parse(s string) Text {
	var t Text
	for _, clause := range strings.Split(s, ";") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "font:"):
			parseFont(strings.TrimSpace(clause[len("font:"):]), &t)
		case strings.HasPrefix(clause, "text-align:"):
			parseAlign(strings.TrimSpace(clause[len("text-align:"):]), &t)
		}
	}
	return t
}

func parseFont(decl string, t *Text) {
	m := fontClause.FindStringSubmatch(decl)
	if m == nil {
		return
	}
	switch {
	case m[1] != "" && m[2] != "":
		t.Style = BoldItalic
	case m[1] != "":
		t.Style = Italic
	case m[2] != "":
		t.Style = Bold
	}
	for _, family := range m[3:6] {
		if family != "" {
			t.Font = family
			break
		}
	}
	if m[6] != "" {
		if size, err := strconv.ParseFloat(m[6], 64); err == nil {
			t.Size = &size
		}
	}
}

func parseAlign(value string, t *Text) {
	var a Alignment
	switch strings.ToLower(value) {
	case "left":
		a = AlignLeft
	case "center":
		a = AlignCenter
	case "right":
		a = AlignRight
	case "justify":
		a = AlignJustify
	default:
		return
	}
	t.Align = &a
}
