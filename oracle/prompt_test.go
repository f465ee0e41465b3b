package oracle

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/askrank/core"
)

func TestPromptOracle_Questions(t *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader("yes\nnope\n"), &out)
	o := NewPromptOracle(p)
	ctx := context.Background()

	ok, err := o.AskPreferred(ctx, "pizza", "salad")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.AskEquivalent(ctx, "pizza", 42)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t,
		`Is "pizza" better than "salad" (y/[n])? `+
			`Is "pizza" roughly equivalent to "42" (y/[n])? `,
		out.String())
}

func TestLinePrompter_Echo(t *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader("y\r\n"), &out)
	p.Echo = true

	answer, err := p.Prompt(context.Background(), "Q? ")
	require.NoError(t, err)
	assert.Equal(t, "y", answer)
	assert.Equal(t, "Q? \"y\"\n", out.String())
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader("sure"), &out)

	answer, err := p.Prompt(context.Background(), "Q? ")
	require.NoError(t, err)
	assert.Equal(t, "sure", answer)

	_, err = p.Prompt(context.Background(), "Q? ")
	require.ErrorIs(t, err, ErrNoAnswer)
	assert.True(t, core.IsInvalidInput(err))
}

func TestLinePrompter_EmptyLineIsNo(t *testing.T) {
	o := NewPromptOracle(NewLinePrompter(strings.NewReader("\n"), &strings.Builder{}))
	ok, err := o.AskPreferred(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader("y\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Prompt(ctx, "Q? ")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
