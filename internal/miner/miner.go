// Package miner implements the deterministic Node -> []Dependency mapping
// over a fixed view.View, per spec.md §4.1. A Miner precomputes two indices
// once at construction and uses them for every DependenciesOf call.
package miner

import (
	"github.com/phobologic/javamake/internal/model"
	"github.com/phobologic/javamake/internal/view"
)

// Miner mines construction candidates from a read-only view.View. It holds
// no mutable state beyond its two precomputed indices, so a single Miner is
// safe to share across concurrent solvers (the view and the indices are
// read-only once built).
type Miner struct {
	view view.View

	// subclassIndex maps a class/interface's fully qualified name to the
	// loaded public classes that name as superclass or implemented
	// interface. Only direct subtypes; transitivity is not computed.
	subclassIndex map[string][]view.Class

	// methodByReturnTypeIndex maps a class's fully qualified name to the
	// public methods (excluding <init> and <clinit>) whose declared
	// return type resolves to that class.
	methodByReturnTypeIndex map[string][]view.Method
}

// New builds a Miner over v, computing both indices in a single pass over
// v.Classes(). Only public classes are indexed; non-public and
// unresolvable references are skipped silently, per spec.md §4.1 and the
// ViewLookupMissing error policy in §7.
func New(v view.View) *Miner {
	m := &Miner{
		view:                    v,
		subclassIndex:           make(map[string][]view.Class),
		methodByReturnTypeIndex: make(map[string][]view.Method),
	}

	classes := v.Classes()
	for _, c := range classes {
		if !c.IsPublic {
			continue
		}

		if c.Superclass != nil {
			m.subclassIndex[c.Superclass.FullyQualifiedName] = append(
				m.subclassIndex[c.Superclass.FullyQualifiedName], c)
		}
		for _, iface := range c.Interfaces {
			m.subclassIndex[iface.FullyQualifiedName] = append(
				m.subclassIndex[iface.FullyQualifiedName], c)
		}

		for _, meth := range c.Methods {
			if !meth.IsPublic || meth.Name == "<init>" || meth.Name == "<clinit>" {
				continue
			}
			rt, ok := meth.ReturnType.(view.ClassType)
			if !ok {
				continue
			}
			m.methodByReturnTypeIndex[rt.FullyQualifiedName] = append(
				m.methodByReturnTypeIndex[rt.FullyQualifiedName], meth)
		}
	}

	// Index order depends only on v.Classes()'s enumeration order, which the
	// View contract requires to be stable; no further sorting is applied so
	// that DependenciesOf's fixed ordering (§4.1) is preserved.
	return m
}

// DependenciesOf returns node's candidate dependencies (the OR-choices) in
// the fixed order specified by spec.md §4.1. An empty result means node is
// unconstructible from this view.
func (m *Miner) DependenciesOf(node model.Node) []model.Dependency {
	switch n := node.(type) {
	case model.ClassNode:
		return m.dependenciesOfClass(n)
	case model.ConstructorCallNode:
		return m.dependenciesOfCall(n, n.Method, nil)
	case model.StaticMethodCallNode:
		return m.dependenciesOfCall(n, n.Method, nil)
	case model.MethodCallNode:
		return m.dependenciesOfMethodCall(n)
	case model.PrimitiveNode:
		return []model.Dependency{model.PrimitiveDep{Primitive: n}}
	case model.ArrayNode:
		return []model.Dependency{model.EmptyArrayDep{Array: n}}
	default:
		return nil
	}
}

func (m *Miner) dependenciesOfClass(n model.ClassNode) []model.Dependency {
	c := n.Class
	if isJDK(c) {
		return []model.Dependency{model.JdkInitializationDep{Class: n}}
	}

	var deps []model.Dependency

	// 1. Public constructors, in declaration order.
	for _, meth := range c.Methods {
		if !meth.IsPublic || meth.Name != "<init>" {
			continue
		}
		ctor, err := model.NewConstructorCallNode(meth)
		if err != nil {
			continue
		}
		deps = append(deps, model.UseMethodDep{Class: n, Method: ctor})
	}

	// 2. Direct subtypes, in a stable order (declaration order within
	// subclassIndex, which preserves v.Classes()'s enumeration order).
	for _, sub := range m.subclassIndex[c.Type.FullyQualifiedName] {
		subNode := model.NewClassNode(sub)
		deps = append(deps, model.UpcastDep{Super: n, Subclass: subNode})
	}

	// 3. Methods returning exactly this class.
	for _, meth := range m.methodByReturnTypeIndex[c.Type.FullyQualifiedName] {
		methodNode := model.NewMethodCallNode(meth)
		deps = append(deps, model.UseMethodDep{Class: n, Method: methodNode})
	}

	return deps
}

func (m *Miner) dependenciesOfCall(of model.Node, meth view.Method, receiver model.Node) []model.Dependency {
	params, ok := m.paramsOf(meth)
	if !ok {
		return nil
	}
	return []model.Dependency{model.CallMethodDep{Target: of, Receiver: receiver, Params: params}}
}

func (m *Miner) dependenciesOfMethodCall(n model.MethodCallNode) []model.Dependency {
	declClass, ok := m.view.GetClass(n.Method.DeclClassType)
	if !ok {
		return nil
	}
	receiver := model.NewClassNode(declClass)
	return m.dependenciesOfCall(n, n.Method, receiver)
}

// paramsOf maps each declared parameter type of m to a Node, per spec.md
// §4.1: primitive -> PrimitiveNode, class -> ClassNode (resolved via the
// view), array -> ArrayNode. Any unresolvable or unsupported parameter
// kind causes the whole call to be dropped (ok=false), per the
// UnresolvableType error policy in §7.
func (m *Miner) paramsOf(meth view.Method) ([]model.Node, bool) {
	params := make([]model.Node, 0, len(meth.ParameterTypes))
	for _, t := range meth.ParameterTypes {
		n, ok := m.nodeForType(t)
		if !ok {
			return nil, false
		}
		params = append(params, n)
	}
	return params, true
}

func (m *Miner) nodeForType(t view.Type) (model.Node, bool) {
	switch tt := t.(type) {
	case view.PrimitiveType:
		return model.NewPrimitiveNode(tt.Kind), true
	case view.ClassType:
		c, ok := m.view.GetClass(tt)
		if !ok {
			return nil, false
		}
		return model.NewClassNode(c), true
	case view.ArrayType:
		elem, ok := m.nodeForType(tt.ElementType)
		if !ok {
			return nil, false
		}
		arr, err := model.NewArrayNode(elem, tt.Dimension)
		if err != nil {
			return nil, false
		}
		return arr, true
	default:
		// Generics, wildcards, and anything else: unsupported per spec.md
		// §1's non-goals. Drop silently.
		return nil, false
	}
}

func isJDK(c view.Class) bool { return c.IsJDK() }
