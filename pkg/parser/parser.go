/*
Package parser implements a parser for the inline markdown subset used in
card text: backslash escapes, links, strong and emphasis, and explicit line
breaks. It produces a tree of nodes and never fails: anything that does
not form a complete construct is kept as literal text.
*/
package parser

// for each character that triggers a response when parsing inline data.
type inlineParser func(p *Parser, data []byte, offset int) (int, Node)

// variant is a set of span kinds open on the current nesting path. Each
// kind may appear once per path.
type variant uint8

const (
	emphVar variant = 1 << iota
	strongVar
	linkVar
)

// width is the number of marker characters delimiting the variant.
func (v variant) width() int {
	if v == strongVar {
		return 2
	}
	return 1
}

type Parser struct {
	inlineCallback [256]inlineParser
	active         variant
	sc             *scanner

	Nodes []Node
}

// New creates a markdown parser
func New() *Parser {
	p := Parser{
		Nodes: make([]Node, 0),
	}

	p.inlineCallback[' '] = maybeLineBreak
	p.inlineCallback['\\'] = escape
	p.inlineCallback['['] = link
	p.inlineCallback['*'] = emphasis
	p.inlineCallback['_'] = emphasis

	return &p
}

// Parse parses input into a slice of inline nodes. The input is not
// modified; CR and CRLF line endings are read as LF.
func (p *Parser) Parse(input []byte) []Node {
	data := NormalizeNewlines(append([]byte(nil), input...))
	p.active = 0
	p.Nodes = p.Inline(data)
	return p.Nodes
}

// Parse parses input with a fresh parser.
func Parse(input []byte) []Node {
	return New().Parse(input)
}

// nested parses data as the children of a span of variant v.
func (p *Parser) nested(v variant, data []byte) []Node {
	active := p.active
	p.active |= v
	nodes := p.Inline(data)
	p.active = active
	return nodes
}

// IsPunctuation returns true if c is a punctuation symbol.
func IsPunctuation(c byte) bool {
	for _, r := range []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~") {
		if c == r {
			return true
		}
	}
	return false
}

// IsSpace returns true if c is a white-space charactr
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func NormalizeNewlines(d []byte) []byte {
	wi := 0
	n := len(d)
	for i := 0; i < n; i++ {
		c := d[i]
		// 13 is CR
		if c != 13 {
			d[wi] = c
			wi++
			continue
		}
		// replace CR (mac / win) with LF (unix)
		d[wi] = 10
		wi++
		if i < n-1 && d[i+1] == 10 {
			// this was CRLF, so skip the LF
			i++
		}

	}
	return d[:wi]
}

func skipSpace(data []byte, i int) int {
	n := len(data)
	for i < n && IsSpace(data[i]) {
		i++
	}
	return i
}

func skipChar(data []byte, start int, char byte) int {
	i := start
	n := len(data)
	for i < n && data[i] == char {
		i++
	}
	return i
}
