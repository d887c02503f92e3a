package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/treedist/internal/tree"
)

func collectLabels(t *tree.Tree, into map[string]bool) {
	t.Walk(func(n *tree.Node) { into[n.Label()] = true })
}

func TestPythonParser_Parse(t *testing.T) {
	p := NewPythonParser()
	tr, err := p.Parse(context.Background(), []byte("x = 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "module", tr.Root().Label())
	assert.Greater(t, tr.NodeCount(), 1)
}

func TestPythonParser_LabelsCarryText(t *testing.T) {
	p := NewPythonParser()
	tr, err := p.Parse(context.Background(), []byte("answer = 42\n"))
	require.NoError(t, err)

	found := map[string]bool{}
	collectLabels(tr, found)
	assert.True(t, found["identifier(answer)"])
	assert.True(t, found["integer(42)"])
}

func TestPythonParser_RenameVisibleInLabels(t *testing.T) {
	p := NewPythonParser()
	ctx := context.Background()

	tr1, err := p.Parse(ctx, []byte("def f(a):\n    return a\n"))
	require.NoError(t, err)
	tr2, err := p.Parse(ctx, []byte("def f(b):\n    return b\n"))
	require.NoError(t, err)

	// Same shape, different identifier labels.
	assert.Equal(t, tr1.NodeCount(), tr2.NodeCount())
	l1 := map[string]bool{}
	l2 := map[string]bool{}
	collectLabels(tr1, l1)
	collectLabels(tr2, l2)
	assert.True(t, l1["identifier(a)"])
	assert.False(t, l2["identifier(a)"])
	assert.True(t, l2["identifier(b)"])
}

func TestPythonParser_SyntaxError(t *testing.T) {
	p := NewPythonParser()
	_, err := p.Parse(context.Background(), []byte("def broken(:\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax errors")
}

func TestPythonParser_ParseFile(t *testing.T) {
	p := NewPythonParser()
	tr, err := p.ParseFile(context.Background(), strings.NewReader("pass\n"))
	require.NoError(t, err)
	assert.Equal(t, "module", tr.Root().Label())
}
