// Package emit translates a solved model.Plan into Java source, per
// spec.md §4.3. An Emitter is single-use per call to Emit: its name table
// and used-identifier set are reset at the start of every emission and
// released at the end, per spec.md §5.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phobologic/javamake/internal/model"
	"github.com/phobologic/javamake/internal/view"
)

// ErrEmissionIncomplete is returned when a bound value is required for a
// parameter slot and AnyValue cannot supply one, per spec.md §7's
// EmissionIncomplete policy: the emitter fails the whole emission rather
// than produce invalid Java.
var ErrEmissionIncomplete = fmt.Errorf("emit: no value available for a required parameter")

// Emitter walks a Plan in creation order and produces Java statements for a
// generated main(String[] args) body.
type Emitter struct {
	names map[string]string // Node.Key() -> Java identifier
	used  map[string]struct{}
}

// New returns an Emitter ready for one or more independent Emit calls.
func New() *Emitter {
	return &Emitter{}
}

// Emit produces a complete Java compilation unit for plan: package
// org.example, class Main, with a main body realizing plan's creation
// order, per spec.md §4.3/§6.
func (e *Emitter) Emit(plan *model.Plan) (string, error) {
	e.names = make(map[string]string)
	e.used = make(map[string]struct{})
	defer func() {
		e.names = nil
		e.used = nil
	}()

	var body strings.Builder
	for i, node := range plan.CreationOrder {
		dep := plan.DependencyOrder[i]
		if err := e.emitOne(&body, node, dep); err != nil {
			return "", err
		}
	}

	var out strings.Builder
	out.WriteString("package org.example;\n\n")
	out.WriteString("public final class Main {\n")
	out.WriteString("    public static void main(String[] args) {\n")
	for _, line := range strings.Split(strings.TrimRight(body.String(), "\n"), "\n") {
		if line == "" {
			out.WriteString("\n")
			continue
		}
		out.WriteString("        ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	out.WriteString("    }\n")
	out.WriteString("}\n")
	return out.String(), nil
}

func (e *Emitter) emitOne(w *strings.Builder, node model.Node, dep model.Dependency) error {
	w.WriteString("// ")
	w.WriteString(repr(dep))
	w.WriteString("\n")

	switch d := dep.(type) {
	case model.CallMethodDep:
		return e.emitCallMethod(w, node, d)
	case model.UseMethodDep:
		return e.emitUseMethod(node, d)
	case model.JdkInitializationDep:
		return e.emitJdkInitialization(w, node, d)
	case model.UpcastDep:
		return e.emitUpcast(w, node, d)
	case model.PrimitiveDep:
		return e.emitPrimitive(w, node, d)
	case model.EmptyArrayDep:
		return e.emitEmptyArray(w, node, d)
	default:
		return fmt.Errorf("emit: unsupported dependency kind %T", dep)
	}
}

func (e *Emitter) emitCallMethod(w *strings.Builder, node model.Node, d model.CallMethodDep) error {
	switch m := node.(type) {
	case model.ConstructorCallNode:
		t := m.Method.DeclClassType.FullyQualifiedName
		v := e.freshName(m.Method.DeclClassType.SimpleName())
		args, err := e.argsFor(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s = new %s(%s);\n", t, v, t, args)
		e.bind(node, v)
		return nil

	case model.StaticMethodCallNode:
		r := typeName(m.Method.ReturnType)
		t := m.Method.DeclClassType.FullyQualifiedName
		v := e.freshName(simpleNameOf(m.Method.ReturnType))
		args, err := e.argsFor(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s = %s.%s(%s);\n", r, v, t, m.Method.Name, args)
		e.bind(node, v)
		return nil

	case model.MethodCallNode:
		recv := e.boundName(d.Receiver)
		r := typeName(m.Method.ReturnType)
		v := e.freshName(simpleNameOf(m.Method.ReturnType))
		args, err := e.argsFor(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s = %s.%s(%s);\n", r, v, recv, m.Method.Name, args)
		e.bind(node, v)
		return nil

	default:
		return fmt.Errorf("emit: CallMethod dependency targets unsupported node %T", node)
	}
}

// emitUseMethod binds the Class node to the variable already bound for its
// method node. No statement is emitted: the class is realized by the
// constructor's or factory method's result, per spec.md §4.3.
func (e *Emitter) emitUseMethod(node model.Node, d model.UseMethodDep) error {
	v, ok := e.names[d.Method.Key()]
	if !ok {
		return fmt.Errorf("emit: method node %q has no bound variable", d.Method.Key())
	}
	e.bind(node, v)
	return nil
}

func (e *Emitter) emitJdkInitialization(w *strings.Builder, node model.Node, d model.JdkInitializationDep) error {
	cn, ok := node.(model.ClassNode)
	if !ok {
		return fmt.Errorf("emit: JdkInitialization targets non-class node %T", node)
	}
	t := cn.Class.Type.FullyQualifiedName
	v := e.freshName(cn.Class.Type.SimpleName())
	fmt.Fprintf(w, "%s %s = new %s();\n", t, v, t)
	e.bind(node, v)
	return nil
}

func (e *Emitter) emitUpcast(w *strings.Builder, node model.Node, d model.UpcastDep) error {
	cn, ok := node.(model.ClassNode)
	if !ok {
		return fmt.Errorf("emit: Upcast targets non-class node %T", node)
	}
	sn := cn.Class.Type.FullyQualifiedName
	v := e.freshName(cn.Class.Type.SimpleName())
	x := e.boundName(d.Subclass)
	fmt.Fprintf(w, "%s %s = (%s) %s;\n", sn, v, sn, x)
	e.bind(node, v)
	return nil
}

func (e *Emitter) emitPrimitive(w *strings.Builder, node model.Node, d model.PrimitiveDep) error {
	pn, ok := node.(model.PrimitiveNode)
	if !ok {
		return fmt.Errorf("emit: Primitive dependency targets non-primitive node %T", node)
	}
	p := string(pn.Kind)
	v := e.freshName(p)
	lit, ok := AnyValue(view.PrimitiveType{Kind: pn.Kind})
	if !ok {
		return ErrEmissionIncomplete
	}
	fmt.Fprintf(w, "%s %s = %s;\n", p, v, lit)
	e.bind(node, v)
	return nil
}

func (e *Emitter) emitEmptyArray(w *strings.Builder, node model.Node, d model.EmptyArrayDep) error {
	an, ok := node.(model.ArrayNode)
	if !ok {
		return fmt.Errorf("emit: EmptyArray dependency targets non-array node %T", node)
	}
	elemName, err := elemTypeName(an.Elem)
	if err != nil {
		return err
	}
	suffix := strings.Repeat("[]", an.Dim)
	v := e.freshName(elemName)
	fmt.Fprintf(w, "%s%s %s = new %s[0];\n", elemName, suffix, v, elemName)
	e.bind(node, v)
	return nil
}

// argsFor builds the comma-joined argument list for a CallMethodDep: each
// element is the bound variable of the corresponding requirement if
// present, else AnyValue(param.type), per spec.md §4.3.
func (e *Emitter) argsFor(d model.CallMethodDep) (string, error) {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if v, ok := e.names[p.Key()]; ok {
			parts = append(parts, v)
			continue
		}
		lit, ok := AnyValue(typeOf(p))
		if !ok {
			return "", ErrEmissionIncomplete
		}
		parts = append(parts, lit)
	}
	return strings.Join(parts, ", "), nil
}

func (e *Emitter) bind(node model.Node, v string) { e.names[node.Key()] = v }

func (e *Emitter) boundName(node model.Node) string {
	if v, ok := e.names[node.Key()]; ok {
		return v
	}
	return "null"
}

// freshName sanitizes hint by replacing '$' with '_', appends "_var", and
// suffixes an increasing integer starting at 1 on collision, per spec.md
// §4.3. The result is always non-empty and identifier-safe.
func (e *Emitter) freshName(hint string) string {
	if e.used == nil {
		e.used = make(map[string]struct{})
	}
	base := strings.ReplaceAll(hint, "$", "_")
	if base == "" {
		base = "v"
	}
	candidate := base + "_var"
	if _, taken := e.used[candidate]; !taken {
		e.used[candidate] = struct{}{}
		return candidate
	}
	for i := 1; ; i++ {
		next := candidate + strconv.Itoa(i)
		if _, taken := e.used[next]; !taken {
			e.used[next] = struct{}{}
			return next
		}
	}
}

// repr renders dep's comment form, with '$' replaced by '.' for
// readability, per spec.md §4.3.
func repr(dep model.Dependency) string {
	var s string
	switch d := dep.(type) {
	case model.CallMethodDep:
		s = fmt.Sprintf("call %s", d.Target.Key())
	case model.UseMethodDep:
		s = fmt.Sprintf("use %s via %s", d.Class.Key(), d.Method.Key())
	case model.JdkInitializationDep:
		s = fmt.Sprintf("jdk-init %s", d.Class.Key())
	case model.UpcastDep:
		s = fmt.Sprintf("upcast %s <- %s", d.Super.Key(), d.Subclass.Key())
	case model.PrimitiveDep:
		s = fmt.Sprintf("primitive %s", d.Primitive.Key())
	case model.EmptyArrayDep:
		s = fmt.Sprintf("empty-array %s", d.Array.Key())
	default:
		s = fmt.Sprintf("%T", dep)
	}
	return strings.ReplaceAll(s, "$", ".")
}

func typeName(t view.Type) string { return typeNameImpl(t) }

func typeNameImpl(t view.Type) string {
	switch tt := t.(type) {
	case view.PrimitiveType:
		return string(tt.Kind)
	case view.ClassType:
		return tt.FullyQualifiedName
	case view.ArrayType:
		return typeNameImpl(tt.ElementType) + strings.Repeat("[]", tt.Dimension)
	default:
		return "java.lang.Object"
	}
}

func simpleNameOf(t view.Type) string {
	switch tt := t.(type) {
	case view.ClassType:
		return tt.SimpleName()
	case view.PrimitiveType:
		return string(tt.Kind)
	case view.ArrayType:
		return simpleNameOf(tt.ElementType)
	default:
		return "v"
	}
}

func typeOf(n model.Node) view.Type {
	switch nn := n.(type) {
	case model.PrimitiveNode:
		return view.PrimitiveType{Kind: nn.Kind}
	case model.ClassNode:
		return nn.Class.Type
	case model.ArrayNode:
		return view.ArrayType{ElementType: typeOf(nn.Elem), Dimension: nn.Dim}
	default:
		return view.ClassType{FullyQualifiedName: "java.lang.Object"}
	}
}

func elemTypeName(n model.Node) (string, error) {
	switch nn := n.(type) {
	case model.PrimitiveNode:
		return string(nn.Kind), nil
	case model.ClassNode:
		return nn.Class.Type.FullyQualifiedName, nil
	default:
		return "", fmt.Errorf("emit: array element node %T is not a class or primitive", n)
	}
}
