package model

import (
	"testing"

	"github.com/phobologic/javamake/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestCallMethodDepRequirementsOmitsNilReceiver(t *testing.T) {
	target := NewMethodCallNode(view.Method{Name: "m", DeclClassType: view.ClassType{FullyQualifiedName: "C"}})
	p := NewPrimitiveNode(view.Int)

	d := CallMethodDep{Target: target, Params: []Node{p}}
	assert.Equal(t, []Node{p}, d.Requirements())
	assert.Equal(t, 1, d.Cost())
}

func TestCallMethodDepRequirementsIncludesReceiver(t *testing.T) {
	recv := NewClassNode(view.Class{Type: view.ClassType{FullyQualifiedName: "C"}})
	target := NewMethodCallNode(view.Method{Name: "m", DeclClassType: view.ClassType{FullyQualifiedName: "C"}})
	p := NewPrimitiveNode(view.Int)

	d := CallMethodDep{Target: target, Receiver: recv, Params: []Node{p}}
	reqs := d.Requirements()
	assert.Equal(t, []Node{recv, p}, reqs)
}

func TestDependencyCostsMatchFixedTable(t *testing.T) {
	class := NewClassNode(view.Class{Type: view.ClassType{FullyQualifiedName: "C"}})
	method := mustConstructorNode(view.Method{Name: "<init>", DeclClassType: view.ClassType{FullyQualifiedName: "C"}})
	sup := NewClassNode(view.Class{Type: view.ClassType{FullyQualifiedName: "S"}})
	sub := NewClassNode(view.Class{Type: view.ClassType{FullyQualifiedName: "C"}})
	prim := NewPrimitiveNode(view.Int)
	arr, _ := NewArrayNode(prim, 1)

	cases := []struct {
		name string
		dep  Dependency
		cost int
	}{
		{"CallMethod", CallMethodDep{Target: method}, 1},
		{"UseMethod", UseMethodDep{Class: class, Method: method}, 0},
		{"JdkInitialization", JdkInitializationDep{Class: class}, 2},
		{"Upcast", UpcastDep{Super: sup, Subclass: sub}, 0},
		{"Primitive", PrimitiveDep{Primitive: prim}, 0},
		{"EmptyArray", EmptyArrayDep{Array: arr}, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.cost, c.dep.Cost())
		})
	}
}

func TestJdkInitializationAndPrimitiveAndEmptyArrayHaveNoRequirements(t *testing.T) {
	class := NewClassNode(view.Class{Type: view.ClassType{FullyQualifiedName: "java.lang.Object"}})
	prim := NewPrimitiveNode(view.Int)
	arr, _ := NewArrayNode(prim, 1)

	assert.Nil(t, JdkInitializationDep{Class: class}.Requirements())
	assert.Nil(t, PrimitiveDep{Primitive: prim}.Requirements())
	assert.Nil(t, EmptyArrayDep{Array: arr}.Requirements())
}

// mustConstructorNode is a test-only helper avoiding repeated error handling
// for fixtures known to be valid constructors.
func mustConstructorNode(m view.Method) Node {
	n, err := NewConstructorCallNode(m)
	if err != nil {
		panic(err)
	}
	return n
}
