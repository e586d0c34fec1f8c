package bridge

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/flytaly/cardtext/pkg/parser"
)

// frame is an open formatting tag while reading markup.
type frame struct {
	tag      atom.Atom
	node     parser.Node // nil when the tag adds nothing, e.g. <b> inside <b>
	children []parser.Node
	raw      strings.Builder
}

type markupReader struct {
	stack []*frame
}

// parseMarkup reads author markup into the node tree the markdown parser
// would produce: <b>/<strong>, <i>/<em>, <a href> and <br>. Other tags are
// dropped and their text kept. Text content is taken literally, so
// markdown markers in it have no effect. Unclosed tags end with the input.
func parseMarkup(src string) []parser.Node {
	r := &markupReader{stack: []*frame{{}}}
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())
		tok := z.Token()

		switch tt {
		case html.TextToken:
			r.add(&parser.Text{Leaf: parser.Leaf{Literal: []byte(tok.Data), Content: []byte(raw)}})

		case html.SelfClosingTagToken, html.StartTagToken:
			if tok.DataAtom == atom.Br {
				r.add(&parser.LineBreak{Leaf: parser.Leaf{Content: []byte(raw)}})
				continue
			}
			if tt == html.StartTagToken {
				r.open(tok, raw)
			}

		case html.EndTagToken:
			r.close(tok.DataAtom, raw)
		}
	}
	for len(r.stack) > 1 {
		r.pop("")
	}
	return r.stack[0].children
}

func (r *markupReader) top() *frame {
	return r.stack[len(r.stack)-1]
}

func (r *markupReader) add(n parser.Node) {
	f := r.top()
	f.children = append(f.children, n)
	f.raw.Write(n.GetContent())
}

func (r *markupReader) active(kinds ...atom.Atom) bool {
	for _, f := range r.stack {
		if f.node == nil {
			continue
		}
		for _, k := range kinds {
			if f.tag == k {
				return true
			}
		}
	}
	return false
}

func (r *markupReader) open(tok html.Token, raw string) {
	var f *frame
	switch tok.DataAtom {
	case atom.B, atom.Strong:
		f = &frame{tag: atom.B}
		if !r.active(atom.B) {
			f.node = &parser.Strong{}
		}
	case atom.I, atom.Em:
		f = &frame{tag: atom.I}
		if !r.active(atom.I) {
			f.node = &parser.Emphasis{}
		}
	case atom.A:
		f = &frame{tag: atom.A}
		if href, ok := attr(tok, "href"); ok && !r.active(atom.A) {
			f.node = &parser.Link{Destination: []byte(href)}
		}
	default:
		return
	}
	f.raw.WriteString(raw)
	r.stack = append(r.stack, f)
}

// close ends the innermost open frame for tag along with any frames
// opened after it. End tags without an open frame are ignored.
func (r *markupReader) close(tag atom.Atom, raw string) {
	switch tag {
	case atom.Strong:
		tag = atom.B
	case atom.Em:
		tag = atom.I
	}
	for i := len(r.stack) - 1; i > 0; i-- {
		if r.stack[i].tag != tag {
			continue
		}
		for len(r.stack) > i+1 {
			r.pop("")
		}
		r.pop(raw)
		return
	}
}

func (r *markupReader) pop(raw string) {
	f := r.top()
	r.stack = r.stack[:len(r.stack)-1]
	f.raw.WriteString(raw)
	content := []byte(f.raw.String())

	switch n := f.node.(type) {
	case *parser.Strong:
		n.Children, n.Content = f.children, content
	case *parser.Emphasis:
		n.Children, n.Content = f.children, content
	case *parser.Link:
		n.Children, n.Content = f.children, content
	default:
		// transparent tag: hand the children to the parent
		p := r.top()
		p.children = append(p.children, f.children...)
		p.raw.Write(content)
		return
	}
	p := r.top()
	p.children = append(p.children, f.node)
	p.raw.Write(content)
}

func attr(tok html.Token, key string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
