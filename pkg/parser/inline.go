package parser

import (
	"bytes"
	"unicode/utf8"
)

// Parsing of inline elements

// Inline parses text within a block and returns its nodes.
// Each handler returns the number of consumed bytes, 0 meaning the
// trigger character is literal.
func (p *Parser) Inline(data []byte) []Node {
	outer := p.sc
	p.sc = newScanner(data)
	defer func() { p.sc = outer }()

	var nodes []Node
	beg, end := 0, 0

	n := len(data)
	for end < n {
		handler := p.inlineCallback[data[end]]
		if handler == nil {
			_, size := utf8.DecodeRune(data[end:])
			end += size
			continue
		}
		consumed, node := handler(p, data, end)
		if consumed == 0 {
			// no action from the callback
			end++
			continue
		}
		nodes = appendText(nodes, data[beg:end])
		if node != nil {
			nodes = append(nodes, node)
		}
		beg = end + consumed
		end = beg
	}
	return appendText(nodes, data[beg:end])
}

// newline preceded by two spaces becomes a line break
func maybeLineBreak(p *Parser, data []byte, offset int) (int, Node) {
	if offset > 0 && data[offset-1] == ' ' {
		// only the first space of a run starts a break
		return 0, nil
	}
	end := skipChar(data, offset, ' ')

	if end < len(data) && data[end] == '\n' && end-offset >= 2 {
		br := &LineBreak{}
		br.Content = data[offset : end+1]
		return end - offset + 1, br
	}
	return 0, nil
}

// '\\' backslash escape
func escape(p *Parser, data []byte, offset int) (int, Node) {
	data = data[offset:]

	if len(data) < 2 {
		return 0, nil
	}

	switch {
	case data[1] == '\n':
		br := &LineBreak{}
		br.Content = data[:2]
		return 2, br
	case IsPunctuation(data[1]):
		return 2, &Text{Leaf: Leaf{Literal: data[1:2], Content: data[:2]}}
	}

	return 0, nil
}

// '[': parse a link
func link(p *Parser, data []byte, offset int) (int, Node) {
	// links cannot contain other links
	if p.active&linkVar != 0 {
		return 0, nil
	}

	ls, ok := p.sc.link(offset)
	if !ok {
		return 0, nil
	}

	data = data[offset:]
	node := &Link{}
	node.Content = data[:ls.end]
	if ls.destE > ls.destB {
		var buf bytes.Buffer
		unescapeText(&buf, data[ls.destB:ls.destE])
		node.Destination = buf.Bytes()
	}
	if ls.titleE > ls.titleB {
		node.Title = data[ls.titleB:ls.titleE]
	}
	node.Children = p.nested(linkVar, data[1:ls.labelEnd])
	return ls.end, node
}

type linkSpan struct {
	labelEnd       int // index of the closing ']'
	destB, destE   int
	titleB, titleE int
	end            int // index past the closing ')'
}

// linkIndex holds the bracket and parenthesis pairs of the data and the
// next quote or closing parenthesis from every position. Escaped bytes
// take part in neither.
type linkIndex struct {
	closeBracket []int // for '[' at i, the matching ']' or -1
	closeParen   []int // for '(' at i, the matching ')' or -1
	next         [3][]int
}

var linkStops = [3]byte{'"', '\'', ')'}

func newLinkIndex(data []byte) *linkIndex {
	n := len(data)
	x := &linkIndex{closeBracket: make([]int, n), closeParen: make([]int, n)}
	escaped := make([]bool, n)
	var brackets, parens []int
	for i := 0; i < n; i++ {
		x.closeBracket[i], x.closeParen[i] = -1, -1
		if escaped[i] {
			continue
		}
		switch data[i] {
		case '\\':
			if i+1 < n {
				escaped[i+1] = true
			}
		case '[':
			brackets = append(brackets, i)
		case ']':
			if k := len(brackets); k > 0 {
				x.closeBracket[brackets[k-1]] = i
				brackets = brackets[:k-1]
			}
		case '(':
			parens = append(parens, i)
		case ')':
			if k := len(parens); k > 0 {
				x.closeParen[parens[k-1]] = i
				parens = parens[:k-1]
			}
		}
	}
	for k, c := range linkStops {
		next := make([]int, n+1)
		next[n] = -1
		for i := n - 1; i >= 0; i-- {
			if data[i] == c && !escaped[i] {
				next[i] = i
			} else {
				next[i] = next[i+1]
			}
		}
		x.next[k] = next
	}
	return x
}

// nextStop returns the first unescaped c at or after i, or -1.
func (x *linkIndex) nextStop(c byte, i int) int {
	for k, stop := range linkStops {
		if stop == c {
			if i >= len(x.next[k]) {
				return -1
			}
			return x.next[k][i]
		}
	}
	return -1
}

// link checks whether the data at start holds [label](destination "title").
// The offsets of the result are relative to start.
func (s *scanner) link(start int) (linkSpan, bool) {
	var ls linkSpan
	data := s.data
	if start >= len(data) || data[start] != '[' {
		return ls, false
	}
	if s.links == nil {
		s.links = newLinkIndex(data)
	}
	x := s.links

	// the matching closing bracket
	i := x.closeBracket[start]
	if i < 0 {
		return ls, false
	}
	labelEnd := i
	i++

	if i >= len(data) || data[i] != '(' {
		return ls, false
	}
	open := i
	i = skipSpace(data, i+1)
	linkB := i

	// link end: the first quote, or the ')' closing the destination
	end := x.closeParen[open]
	for _, q := range []byte{'"', '\''} {
		if k := x.nextStop(q, i); k >= 0 && (end < 0 || k < end) {
			end = k
		}
	}
	if end < 0 {
		return ls, false
	}
	i = end
	linkE := i

	// title end if present: the first ')' after the closing quote
	titleB, titleE := 0, 0
	if data[i] == '\'' || data[i] == '"' {
		i++
		titleB = i
		q := x.nextStop(data[titleB-1], titleB)
		if q < 0 {
			return ls, false
		}
		i = x.nextStop(')', q+1)
		if i < 0 {
			return ls, false
		}

		// skip whitespace after title
		titleE = i - 1
		for titleE > titleB && IsSpace(data[titleE]) {
			titleE--
		}

		// check for closing quote presence
		if data[titleE] != '\'' && data[titleE] != '"' {
			titleB, titleE = 0, 0
			linkE = i
		}
	}

	// remove whitespace at the end of the link
	for linkE > linkB && IsSpace(data[linkE-1]) {
		linkE--
	}

	// remove optional angle brackets around the link
	if linkE-linkB >= 2 && data[linkB] == '<' && data[linkE-1] == '>' {
		linkB++
		linkE--
	}

	ls.labelEnd = labelEnd - start
	ls.destB, ls.destE = linkB-start, linkE-start
	if titleE > titleB {
		ls.titleB, ls.titleE = titleB-start, titleE-start
	}
	ls.end = i + 1 - start
	return ls, true
}

// '*' and '_': strong or emphasis
func emphasis(p *Parser, data []byte, offset int) (int, Node) {
	v, closer, ok := p.sc.open(offset, p.active)
	if !ok {
		return 0, nil
	}
	w := v.width()
	content := data[offset+w : closer]
	children := p.nested(v, content)
	src := data[offset : closer+w]

	if v == strongVar {
		return len(src), &Strong{Container{Children: children, Content: src}}
	}
	return len(src), &Emphasis{Container{Children: children, Content: src}}
}

func unescapeText(ob *bytes.Buffer, src []byte) {
	i := 0
	for i < len(src) {
		org := i
		for i < len(src) && src[i] != '\\' {
			i++
		}

		if i > org {
			ob.Write(src[org:i])
		}

		if i+1 >= len(src) {
			if i < len(src) {
				ob.WriteByte(src[i])
			}
			break
		}

		if !IsPunctuation(src[i+1]) {
			ob.WriteByte(src[i])
		}
		ob.WriteByte(src[i+1])
		i += 2
	}
}

func appendText(nodes []Node, d []byte) []Node {
	if len(d) == 0 {
		return nodes
	}
	return append(nodes, &Text{Leaf: Leaf{Literal: d, Content: d}})
}
