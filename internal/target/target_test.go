package target

import (
	"testing"

	"github.com/phobologic/javamake/internal/model"
	"github.com/phobologic/javamake/internal/view"
	"github.com/phobologic/javamake/internal/view/memview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitive(t *testing.T) {
	t.Parallel()

	n, err := Parse(memview.Demo(), "int")
	require.NoError(t, err)
	assert.Equal(t, model.NewPrimitiveNode(view.Int).Key(), n.Key())
}

func TestParsePrimitiveArray(t *testing.T) {
	t.Parallel()

	n, err := Parse(memview.Demo(), "int[]")
	require.NoError(t, err)

	arr, ok := n.(model.ArrayNode)
	require.True(t, ok)
	assert.Equal(t, 1, arr.Dim)
}

func TestParseMultiDimensionalArray(t *testing.T) {
	t.Parallel()

	n, err := Parse(memview.Demo(), "java.lang.String[][]")
	require.NoError(t, err)

	arr, ok := n.(model.ArrayNode)
	require.True(t, ok)
	assert.Equal(t, 2, arr.Dim)
}

func TestParseClass(t *testing.T) {
	t.Parallel()

	n, err := Parse(memview.Demo(), "org.example.demo.Greeting")
	require.NoError(t, err)

	cn, ok := n.(model.ClassNode)
	require.True(t, ok)
	assert.Equal(t, "org.example.demo.Greeting", cn.Class.Type.FullyQualifiedName)
}

func TestParseUnknownClassFails(t *testing.T) {
	t.Parallel()

	_, err := Parse(memview.Demo(), "com.example.Nope")
	assert.Error(t, err)
}
