// Package target parses a CLI-facing class/type name (the string a user
// types after `javamake solve`/`javamake demo`) into the model.Node the
// solver should construct a plan for. It is the one place javamake turns
// free text into a Node, mirroring the miner's own nodeForType but working
// from a string rather than a view.Type already supplied by the bytecode
// view.
package target

import (
	"fmt"
	"strings"

	"github.com/phobologic/javamake/internal/model"
	"github.com/phobologic/javamake/internal/view"
)

var primitiveByName = func() map[string]view.PrimitiveKind {
	m := make(map[string]view.PrimitiveKind, len(view.Primitives))
	for _, p := range view.Primitives {
		m[string(p)] = p
	}
	return m
}()

// Parse resolves spec into a Node: a bare primitive name ("int"), a
// primitive or class name followed by one or more "[]" suffixes
// ("int[]", "java.lang.String[][]"), or a fully qualified class name
// resolved via v.GetClass. Per spec.md §1's non-goals, anything else
// (generics, wildcards, unresolvable classes) is reported as an error
// rather than guessed at.
func Parse(v view.View, spec string) (model.Node, error) {
	base, dim := splitArraySuffix(spec)

	elem, err := parseScalar(v, base)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		return elem, nil
	}

	arr, err := model.NewArrayNode(elem, dim)
	if err != nil {
		return nil, fmt.Errorf("target: %q: %w", spec, err)
	}
	return arr, nil
}

// splitArraySuffix strips trailing "[]" pairs from spec, returning the
// base name and how many pairs were stripped.
func splitArraySuffix(spec string) (base string, dim int) {
	base = spec
	for strings.HasSuffix(base, "[]") {
		base = base[:len(base)-2]
		dim++
	}
	return base, dim
}

func parseScalar(v view.View, name string) (model.Node, error) {
	if kind, ok := primitiveByName[name]; ok {
		return model.NewPrimitiveNode(kind), nil
	}

	ct := view.ClassType{
		FullyQualifiedName: name,
		PackageName:        packageNameOf(name),
	}
	c, ok := v.GetClass(ct)
	if !ok {
		return nil, fmt.Errorf("target: class %q not found in the view", name)
	}
	return model.NewClassNode(c), nil
}

func packageNameOf(fqcn string) string {
	if i := strings.LastIndexByte(fqcn, '.'); i >= 0 {
		return fqcn[:i]
	}
	return ""
}
