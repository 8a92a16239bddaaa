package framegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/framegraph"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

var (
	f0 = frame.Frame{Kind: "F0"}
	f1 = frame.Frame{Kind: "F1"}
	f2 = frame.Frame{Kind: "F2"}
	f3 = frame.Frame{Kind: "F3"}

	t2020 = epoch.FromYear(2020)
)

func shift(t *testing.T, from, to frame.Frame, x, cost float64) transform.Factory {
	t.Helper()
	f, err := transform.NewTranslation(from, to, matrix.Vec3{x, 0, 0}, cost)
	require.NoError(t, err)

	return f
}

// triangle builds F0 → F1 (cost 1) → F2 (cost 2) plus a direct F0 → F2
// shortcut (cost 5). Each hop shifts x by a distinct amount so the chosen
// route shows in the result.
func triangle(t *testing.T, opts ...framegraph.Option) *framegraph.Graph {
	t.Helper()
	g := framegraph.New(opts...)
	require.NoError(t, g.AddRoot(f0))
	require.NoError(t, g.Register(f0, f1, shift(t, f0, f1, 1, 1), nil))
	require.NoError(t, g.Register(f1, f2, shift(t, f1, f2, 10, 2), nil))
	require.NoError(t, g.Connect(f0, f2, shift(t, f0, f2, 100, 5), nil))

	return g
}
