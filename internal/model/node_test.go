package model

import (
	"testing"

	"github.com/phobologic/javamake/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassNodeKeyIsStructural(t *testing.T) {
	widget := view.ClassType{FullyQualifiedName: "com.example.Widget", PackageName: "com.example"}

	a := NewClassNode(view.Class{Name: "Widget", Type: widget, IsPublic: true})
	b := NewClassNode(view.Class{Name: "Widget", Type: widget, IsPublic: true})

	assert.Equal(t, a.Key(), b.Key())
}

func TestPrimitiveNodeKeyDistinguishesKind(t *testing.T) {
	assert.NotEqual(t, NewPrimitiveNode(view.Int).Key(), NewPrimitiveNode(view.Long).Key())
}

func TestNewArrayNodeRejectsZeroDimension(t *testing.T) {
	_, err := NewArrayNode(NewPrimitiveNode(view.Int), 0)
	assert.Error(t, err)
}

func TestNewArrayNodeRejectsNonScalarElement(t *testing.T) {
	elem, err := NewArrayNode(NewPrimitiveNode(view.Int), 1)
	require.NoError(t, err)

	_, err = NewArrayNode(elem, 1)
	assert.Error(t, err, "array-of-array must be rejected; multi-dim is expressed via Dim")
}

func TestArrayNodeKeyIncludesDimension(t *testing.T) {
	one, err := NewArrayNode(NewPrimitiveNode(view.Int), 1)
	require.NoError(t, err)
	two, err := NewArrayNode(NewPrimitiveNode(view.Int), 2)
	require.NoError(t, err)

	assert.NotEqual(t, one.Key(), two.Key())
}

func TestNewConstructorCallNodeRequiresInit(t *testing.T) {
	widget := view.ClassType{FullyQualifiedName: "com.example.Widget"}

	_, err := NewConstructorCallNode(view.Method{Name: "build", DeclClassType: widget})
	assert.Error(t, err)

	ctor, err := NewConstructorCallNode(view.Method{Name: "<init>", DeclClassType: widget})
	require.NoError(t, err)
	assert.True(t, ctor.Method.IsConstructor())
}

func TestMethodKeyDistinguishesOverloads(t *testing.T) {
	widget := view.ClassType{FullyQualifiedName: "com.example.Widget"}
	str := view.ClassType{FullyQualifiedName: "java.lang.String"}

	noArgs := NewMethodCallNode(view.Method{Name: "make", DeclClassType: widget, ReturnType: widget})
	withArg := NewMethodCallNode(view.Method{
		Name: "make", DeclClassType: widget, ReturnType: widget,
		ParameterTypes: []view.Type{str},
	})

	assert.NotEqual(t, noArgs.Key(), withArg.Key())
}

func TestStaticAndInstanceMethodNodesWithSameMethodHaveDifferentKeys(t *testing.T) {
	widget := view.ClassType{FullyQualifiedName: "com.example.Widget"}
	m := view.Method{Name: "make", DeclClassType: widget, ReturnType: widget}

	assert.NotEqual(t, NewStaticMethodCallNode(m).Key(), NewMethodCallNode(m).Key())
}
