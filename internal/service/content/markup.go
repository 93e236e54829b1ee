package content

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripMarkup returns the visible text of markdown or HTML content with runs of
// whitespace collapsed. Script and style bodies are dropped.
func StripMarkup(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	// Parsers carry state, so each call gets its own.
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.SkipImages})
	rendered := markdown.ToHTML([]byte(s), p, r)

	z := html.NewTokenizer(bytes.NewReader(rendered))
	var b strings.Builder
	hidden := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			if isHidden(z) {
				hidden++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if isHidden(z) && hidden > 0 {
				hidden--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isHidden(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style, atom.Template:
		return true
	}
	return false
}
