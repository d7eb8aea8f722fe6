// Package markup splits field text into styled runs so rendering surfaces
// never need to understand inline markup themselves. Two lightweight
// flavors are recognized: markdown emphasis (*em*, **strong**) and simple
// HTML tags (<b>, <strong>, <i>, <em>).
package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Run is a stretch of text sharing one inline style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Runs splits s into styled runs. Text without markup comes back as a
// single plain run.
func Runs(s string) []Run {
	if s == "" {
		return nil
	}
	var runs []Run
	if looksLikeHTML(s) {
		runs = htmlRuns(s)
	} else {
		runs = markdownRuns(s)
	}
	if len(runs) == 0 {
		return []Run{{Text: s}}
	}
	return merge(runs)
}

// Plain strips markup and returns the bare text.
func Plain(s string) string {
	var sb strings.Builder
	for _, r := range Runs(s) {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func looksLikeHTML(s string) bool {
	open := strings.IndexByte(s, '<')
	return open >= 0 && strings.IndexByte(s[open:], '>') > 0
}

func markdownRuns(s string) []Run {
	src := []byte(s)
	doc := goldmark.New().Parser().Parse(gtext.NewReader(src))
	var runs []Run
	var walk func(n ast.Node, bold, italic bool)
	walk = func(n ast.Node, bold, italic bool) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Text:
				text := string(c.Segment.Value(src))
				if c.SoftLineBreak() || c.HardLineBreak() {
					text += " "
				}
				if text != "" {
					runs = append(runs, Run{Text: text, Bold: bold, Italic: italic})
				}
			case *ast.Emphasis:
				if c.Level >= 2 {
					walk(c, true, italic)
				} else {
					walk(c, bold, true)
				}
			case *ast.CodeSpan:
				runs = append(runs, Run{Text: string(c.Text(src)), Bold: bold, Italic: italic})
			default:
				walk(child, bold, italic)
			}
		}
	}
	walk(doc, false, false)
	return runs
}

func htmlRuns(s string) []Run {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return []Run{{Text: s}}
	}
	var runs []Run
	var walk func(n *html.Node, bold, italic bool)
	walk = func(n *html.Node, bold, italic bool) {
		if n.Type == html.TextNode && n.Data != "" {
			runs = append(runs, Run{Text: n.Data, Bold: bold, Italic: italic})
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.B, atom.Strong:
				bold = true
			case atom.I, atom.Em:
				italic = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, bold, italic)
		}
	}
	walk(doc, false, false)
	return runs
}

func merge(runs []Run) []Run {
	out := runs[:0]
	for _, r := range runs {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Bold == r.Bold && last.Italic == r.Italic {
				last.Text += r.Text
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
