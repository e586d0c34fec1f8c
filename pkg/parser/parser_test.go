package parser

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dump renders a node tree in a compact form: T(text), E[..], S[..],
// L(dest)[..] and BR.
func dump(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			parts = append(parts, fmt.Sprintf("T(%s)", n.Literal))
		case *LineBreak:
			parts = append(parts, "BR")
		case *Emphasis:
			parts = append(parts, "E["+dump(n.Children)+"]")
		case *Strong:
			parts = append(parts, "S["+dump(n.Children)+"]")
		case *Link:
			parts = append(parts, fmt.Sprintf("L(%s)[%s]", n.Destination, dump(n.Children)))
		default:
			parts = append(parts, fmt.Sprintf("?%T", n))
		}
	}
	return strings.Join(parts, " ")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "T(hello world)"},
		{"empty", "", ""},
		{"emphasis", "*hi*", "E[T(hi)]"},
		{"underscore emphasis", "_hi_", "E[T(hi)]"},
		{"strong", "**hi**", "S[T(hi)]"},
		{"underscore strong", "__hi__", "S[T(hi)]"},
		{"strong and emphasis", "***x***", "S[E[T(x)]]"},
		{"nested emphasis", "**bold *and italic* text**", "S[T(bold ) E[T(and italic)] T( text)]"},
		{"strong inside emphasis", "*a **b** c*", "E[T(a ) S[T(b)] T( c)]"},
		{"emphasis opening with strong", "***a** b*", "E[S[T(a)] T( b)]"},
		{"strong opening with emphasis", "***a* b**", "S[E[T(a)] T( b)]"},
		{"emphasis on last marker of run", "***a*", "T(**) E[T(a)]"},
		{"emphasis after double marker", "**a*", "T(*) E[T(a)]"},
		{"unclosed", "a *b", "T(a *b)"},
		{"unclosed strong", "**a", "T(**a)"},
		{"space after opener", "* a*", "T(* a*)"},
		{"space before closer", "*a *b* c*", "E[T(a *b)] T( c*)"},
		{"overlapping closes innermost first", "*a**b*c**", "T(*a) S[T(b*c)]"},
		{"strong closer not split", "**a*b**", "S[T(a*b)]"},
		{"closer donates first marker", "*a**", "E[T(a)] T(*)"},
		{"variant once per path", "**a **b** c**", "S[T(a **b)] T( c**)"},
		{"only markers", "****", "T(****)"},
		{"mixed markers", "*a_", "T(*a_)"},
		{"underscore inside word", "snake_case_name", "T(snake_case_name)"},
		{"underscore before letter", "_a_é", "T(_a_é)"},
		{"unicode", "*é*ü", "E[T(é)] T(ü)"},
		{"escape", `\*not\*`, "T(*) T(not) T(*)"},
		{"escape non punctuation", `a\b`, `T(a\b)`},
		{"trailing backslash", `a\`, `T(a\)`},
		{"escaped closer", `*a\*`, `T(*a) T(*)`},
		{"hard break", "a  \nb", "T(a) BR T(b)"},
		{"long hard break", "a     \nb", "T(a) BR T(b)"},
		{"backslash break", "a\\\nb", "T(a) BR T(b)"},
		{"soft newline", "a\nb", "T(a\nb)"},
		{"single space newline", "a \nb", "T(a \nb)"},
		{"crlf break", "a  \r\nb", "T(a) BR T(b)"},
		{"link", "[go](https://go.dev)", "L(https://go.dev)[T(go)]"},
		{"link with strong", "[**go**](https://go.dev)", "L(https://go.dev)[S[T(go)]]"},
		{"links do not nest", "[a [b](c)](d)", "L(d)[T(a [b](c))]"},
		{"link target unescaped", `[a](x\_y)`, "L(x_y)[T(a)]"},
		{"link target parentheses", "[a](f(x))", "L(f(x))[T(a)]"},
		{"not a link", "[a] (b)", "T([a] (b))"},
		{"unclosed link", "[a](b", "T([a](b)"},
		{"emphasis skips link", "*[a*](b)", "T(*) L(b)[T(a*)]"},
		{"emphasis around link", "*see [a](b)*", "E[T(see ) L(b)[T(a)]]"},
		{"empty label", "[](b)", "L(b)[]"},
		{"link title", `[a](b "t")`, "L(b)[T(a)]"},
		{"link quote in target", `[a](b "t) c`, `T([a](b "t) c)`},
		{"escaped bracket", `[a\](b)`, `T([a) T(]) T((b))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.input))
			assert.Equal(t, tt.want, dump(got))
		})
	}
}

func TestParseLink(t *testing.T) {
	p := New()
	p.Parse([]byte("Hello [text](<./some file.png> \"title\")"))

	var got *Link
	for _, v := range p.Nodes {
		if found, ok := v.(*Link); ok {
			got = found
			break
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "./some file.png", string(got.Destination))
	assert.Equal(t, "title", string(got.Title))
	assert.Equal(t, "[text](<./some file.png> \"title\")", string(got.GetContent()))
	assert.Equal(t, "text", string(Literal(got.Children)))
}

func TestParseKeepsInput(t *testing.T) {
	input := []byte("a  \r\nb")
	Parse(input)
	assert.Equal(t, "a  \r\nb", string(input))
}

func TestParserReuse(t *testing.T) {
	p := New()
	first := p.Parse([]byte("**a**"))
	second := p.Parse([]byte("*b*"))
	assert.Equal(t, "S[T(a)]", dump(first))
	assert.Equal(t, "E[T(b)]", dump(second))
	assert.Equal(t, second, p.Nodes)
}

func TestLiteral(t *testing.T) {
	nodes := Parse([]byte(`**bold** \*x\* [link](u) a  ` + "\nb"))
	assert.Equal(t, "bold *x* link ab", string(Literal(nodes)))
}

// Sources of the top-level nodes always reproduce the input, and parsing
// never panics, for any arrangement of markers.
func TestSourceReconstructsInput(t *testing.T) {
	alphabet := []string{"*", "**", "_", "[", "]", "(", ")", `\`, " ", "  ", "\n", "a", "b", "é", "<", ">", `"`}
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		var sb strings.Builder
		for j := rnd.Intn(24); j >= 0; j-- {
			sb.WriteString(alphabet[rnd.Intn(len(alphabet))])
		}
		input := sb.String()

		var nodes []Node
		require.NotPanics(t, func() { nodes = Parse([]byte(input)) }, "input %q", input)
		require.Equal(t, input, string(Source(nodes)), "input %q", input)
	}
}

func TestParseUnmatchedMarkers(t *testing.T) {
	for _, unit := range []string{"**a *b ", "*a ", "_a __b ", "***a ", "[a](b ", `[a]("b `, "[[a "} {
		input := strings.Repeat(unit, 20*1024/len(unit))
		start := time.Now()
		nodes := Parse([]byte(input))
		assert.Less(t, time.Since(start), 2*time.Second, "unit %q", unit)
		assert.Equal(t, input, string(Source(nodes)), "unit %q", unit)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", string(NormalizeNewlines([]byte("a\r\nb\rc\n"))))
}
