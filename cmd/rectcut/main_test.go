package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
)

func TestRender2x2(t *testing.T) {
	t.Parallel()

	query := rectcut.NewQuery(rectcut.Enumerator{})
	solutions, err := query.Solutions(context.Background(), 2, 2)
	require.NoError(t, err)

	var buf strings.Builder
	render(&buf, 2, 2, solutions, true)

	want := "#1\n" +
		".#\n.#\n" +
		"\n" +
		"#2\n" +
		"..\n##\n" +
		"\n" +
		"2 x 2: 2\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderCountOnly(t *testing.T) {
	t.Parallel()

	query := rectcut.NewQuery(rectcut.Enumerator{})
	solutions, err := query.Solutions(context.Background(), 3, 4)
	require.NoError(t, err)

	var buf strings.Builder
	render(&buf, 3, 4, solutions, false)

	assert.Equal(t, "3 x 4: 9\n", buf.String())
}
