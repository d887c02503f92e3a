// Package parser turns external tree representations into the
// in-memory ordered labeled trees the distance engine works on.
package parser

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/treedist/internal/tree"
)

// ParseBracket parses the bracket notation {label{child}{child}...}
// into a tree. Labels run until the next brace and may be empty.
// Malformed input (unbalanced braces, trailing characters, empty
// input) is an error, never silently repaired.
func ParseBracket(input string) (*tree.Tree, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, fmt.Errorf("empty tree notation")
	}
	p := &bracketParser{input: s}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input at offset %d", p.pos)
	}
	return tree.New(root)
}

type bracketParser struct {
	input string
	pos   int
}

func (p *bracketParser) parseNode() (*tree.Node, error) {
	if p.pos >= len(p.input) || p.input[p.pos] != '{' {
		return nil, fmt.Errorf("expected '{' at offset %d", p.pos)
	}
	p.pos++

	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '{' && p.input[p.pos] != '}' {
		p.pos++
	}
	node := tree.NewNode(p.input[start:p.pos])

	for p.pos < len(p.input) && p.input[p.pos] == '{' {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if err := node.AddChild(child); err != nil {
			return nil, err
		}
	}

	if p.pos >= len(p.input) || p.input[p.pos] != '}' {
		return nil, fmt.Errorf("unbalanced brackets: expected '}' at offset %d", p.pos)
	}
	p.pos++
	return node, nil
}

// FormatBracket renders a tree back into bracket notation, the inverse
// of ParseBracket for trees whose labels contain no braces.
func FormatBracket(t *tree.Tree) string {
	if t == nil || t.IsEmpty() {
		return ""
	}
	var b strings.Builder
	var rec func(n *tree.Node)
	rec = func(n *tree.Node) {
		b.WriteByte('{')
		b.WriteString(n.Label())
		for _, c := range n.Children() {
			rec(c)
		}
		b.WriteByte('}')
	}
	rec(t.Root())
	return b.String()
}
