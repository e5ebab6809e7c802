// Package markup turns markdown input into the plain text the scorer reads
package markup

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var bareURL = regexp.MustCompile(`https?://\S+|www\.\S+`)

// PlainText renders md to plain text. Link and image targets are dropped, their
// labels kept. Block boundaries become spaces and whitespace is collapsed
func PlainText(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	root := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions)).Parse([]byte(md))

	var b strings.Builder
	b.Grow(len(md))
	root.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			switch n.Type {
			case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item,
				blackfriday.BlockQuote, blackfriday.TableCell:
				b.WriteByte(' ')
			}
			return blackfriday.GoToNext
		}
		switch n.Type {
		case blackfriday.Text, blackfriday.Code:
			b.Write(n.Literal)
		case blackfriday.CodeBlock:
			b.Write(n.Literal)
			b.WriteByte(' ')
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			b.WriteByte(' ')
		}
		return blackfriday.GoToNext
	})

	out := bareURL.ReplaceAllString(b.String(), "")
	return strings.Join(strings.Fields(out), " ")
}
