package parser

// Node is one unit of parsed inline markdown. GetContent returns the
// markdown source the node was parsed from, markers included.
type Node interface {
	GetContent() []byte
}

// Leaf is a type of node that cannot have children
type Leaf struct {
	Literal []byte // text the node stands for, markers removed
	Content []byte // markdown source of the node
}

func (l *Leaf) GetContent() []byte {
	return l.Content
}

func (l *Leaf) GetLiteral() []byte {
	return l.Literal
}

// Container is a node whose children preserve source order.
type Container struct {
	Children []Node
	Content  []byte
}

func (c *Container) GetContent() []byte {
	return c.Content
}

func (c *Container) GetChildren() []Node {
	return c.Children
}

// Text represents a plain run
type Text struct {
	Leaf
}

// LineBreak represents an explicit line break: two or more spaces or a
// backslash before a newline.
type LineBreak struct {
	Leaf
}

// Emphasis represents *text* or _text_
type Emphasis struct {
	Container
}

// Strong represents **text** or __text__
type Strong struct {
	Container
}

// Link represents [label](destination "title")
type Link struct {
	Container

	Destination []byte // Destination is what goes into a href
	Title       []byte // Title is the tooltip thing that goes in a title attribute
}

// Source concatenates the markdown source of nodes. For the output of
// Parse it reproduces the (newline-normalized) input.
func Source(nodes []Node) []byte {
	var out []byte
	for _, n := range nodes {
		out = append(out, n.GetContent()...)
	}
	return out
}

// Literal concatenates the text of nodes with markers removed and escapes
// resolved.
func Literal(nodes []Node) []byte {
	var out []byte
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			out = append(out, n.Literal...)
		case *Emphasis:
			out = append(out, Literal(n.Children)...)
		case *Strong:
			out = append(out, Literal(n.Children)...)
		case *Link:
			out = append(out, Literal(n.Children)...)
		}
	}
	return out
}
