// Package model defines the AND/OR construction graph's data: Node,
// Dependency, and Plan. Everything here is pure, immutable value data —
// Nodes and Dependencies are created on demand by the miner and never
// mutated, per spec.md §3's lifecycle note.
package model

import (
	"fmt"
	"strings"

	"github.com/phobologic/javamake/internal/view"
)

// Node is the closed sum type over the six construction-node kinds from
// spec.md §3: ClassNode, PrimitiveNode, ArrayNode, ConstructorCallNode,
// StaticMethodCallNode, MethodCallNode. New variants are added by extending
// this set and every exhaustive switch over it, per spec.md §9's design
// note preferring closed tagged variants to open inheritance.
//
// Key returns a canonical string computed from the node's contents; it
// stands in for the spec's "identity = structural equality" since Go
// structs holding slices are not comparable with ==. Two nodes with equal
// Key values are the same node for memoization and plan-validity purposes.
type Node interface {
	Key() string
	nodeSealed()
}

// ClassNode wraps a loaded class entity.
type ClassNode struct {
	Class view.Class
}

func (ClassNode) nodeSealed() {}
func (n ClassNode) Key() string { return "class:" + n.Class.Type.FullyQualifiedName }

// PrimitiveNode names one of the eight primitive kinds.
type PrimitiveNode struct {
	Kind view.PrimitiveKind
}

func (PrimitiveNode) nodeSealed() {}
func (n PrimitiveNode) Key() string { return "primitive:" + string(n.Kind) }

// ArrayNode names an array of Elem with dimension Dim >= 1. Elem must be a
// ClassNode or PrimitiveNode, enforced by NewArrayNode (invariant (iii)).
type ArrayNode struct {
	Elem Node
	Dim  int
}

func (ArrayNode) nodeSealed() {}
func (n ArrayNode) Key() string {
	return fmt.Sprintf("array:%s:%d", n.Elem.Key(), n.Dim)
}

// NewArrayNode validates invariant (iii): dimension must be at least 1.
func NewArrayNode(elem Node, dim int) (ArrayNode, error) {
	if dim < 1 {
		return ArrayNode{}, fmt.Errorf("model: array dimension must be >= 1, got %d", dim)
	}
	switch elem.(type) {
	case ClassNode, PrimitiveNode:
	default:
		return ArrayNode{}, fmt.Errorf("model: array element must be a class or primitive, got %T", elem)
	}
	return ArrayNode{Elem: elem, Dim: dim}, nil
}

// ConstructorCallNode references a public <init> method. Invariant (ii):
// Method.Name must be "<init>", enforced by NewConstructorCallNode.
type ConstructorCallNode struct {
	Method view.Method
}

func (ConstructorCallNode) nodeSealed() {}
func (n ConstructorCallNode) Key() string { return "ctor:" + methodKey(n.Method) }

// NewConstructorCallNode validates invariant (ii).
func NewConstructorCallNode(m view.Method) (ConstructorCallNode, error) {
	if !m.IsConstructor() {
		return ConstructorCallNode{}, fmt.Errorf("model: constructor node requires <init>, got %q", m.Name)
	}
	return ConstructorCallNode{Method: m}, nil
}

// StaticMethodCallNode references a public static method returning a class
// type.
type StaticMethodCallNode struct {
	Method view.Method
}

func (StaticMethodCallNode) nodeSealed() {}
func (n StaticMethodCallNode) Key() string { return "static:" + methodKey(n.Method) }

// MethodCallNode references a public instance method returning a class
// type.
type MethodCallNode struct {
	Method view.Method
}

func (MethodCallNode) nodeSealed() {}
func (n MethodCallNode) Key() string { return "method:" + methodKey(n.Method) }

// methodKey builds a deterministic descriptor-like key for a method:
// declaring class, name, parameter types, and return type.
func methodKey(m view.Method) string {
	var b strings.Builder
	b.WriteString(m.DeclClassType.FullyQualifiedName)
	b.WriteByte('.')
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.ParameterTypes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(typeKey(p))
	}
	b.WriteByte(')')
	if m.ReturnType != nil {
		b.WriteString(typeKey(m.ReturnType))
	}
	return b.String()
}

// typeKey builds a deterministic key for a view.Type.
func typeKey(t view.Type) string {
	switch v := t.(type) {
	case view.PrimitiveType:
		return string(v.Kind)
	case view.ClassType:
		return v.FullyQualifiedName
	case view.ArrayType:
		return fmt.Sprintf("%s%s", typeKey(v.ElementType), strings.Repeat("[]", v.Dimension))
	default:
		return "?"
	}
}

// NewClassNode constructs a ClassNode, validating invariant (i) is the
// caller's responsibility: the Class must have come from a successful
// view.GetClass lookup.
func NewClassNode(c view.Class) ClassNode { return ClassNode{Class: c} }

// NewPrimitiveNode constructs a PrimitiveNode for kind.
func NewPrimitiveNode(kind view.PrimitiveKind) PrimitiveNode { return PrimitiveNode{Kind: kind} }

// NewStaticMethodCallNode constructs a StaticMethodCallNode.
func NewStaticMethodCallNode(m view.Method) StaticMethodCallNode {
	return StaticMethodCallNode{Method: m}
}

// NewMethodCallNode constructs a MethodCallNode.
func NewMethodCallNode(m view.Method) MethodCallNode { return MethodCallNode{Method: m} }
