// Package memview is a plain in-memory view.View used by the miner, target
// and pipeline package tests and by the CLI's demo and solve subcommands. It is
// the bytecode analogue of the teacher's synthetic test fixtures
// (main_test.go's createSampleRepo writes tiny source files instead of
// depending on a live repository); memview lets the rest of javamake be
// tested without a real classfile/jar loader, which spec.md §2.1 treats as
// an external collaborator out of scope for this repository.
package memview

import (
	"sort"

	"github.com/phobologic/javamake/internal/view"
)

// View is a read-only, order-preserving in-memory implementation of
// view.View.
type View struct {
	order   []string
	classes map[string]view.Class
}

// NewBuilder returns an empty Builder for constructing a View.
func NewBuilder() *Builder {
	return &Builder{classes: make(map[string]view.Class)}
}

// Builder accumulates classes before producing an immutable View.
type Builder struct {
	order   []string
	classes map[string]view.Class
}

// Add registers c, keyed by its fully qualified name. Later calls with the
// same name overwrite the earlier one but keep its original position, so
// Build's enumeration order stays stable.
func (b *Builder) Add(c view.Class) *Builder {
	key := c.Type.FullyQualifiedName
	if _, exists := b.classes[key]; !exists {
		b.order = append(b.order, key)
	}
	b.classes[key] = c
	return b
}

// Build returns the immutable View. The Builder remains usable afterward;
// further Add calls do not affect views already built.
func (b *Builder) Build() *View {
	v := &View{
		order:   append([]string(nil), b.order...),
		classes: make(map[string]view.Class, len(b.classes)),
	}
	for k, c := range b.classes {
		v.classes[k] = c
	}
	return v
}

// Classes returns every registered class in the order they were Added.
func (v *View) Classes() []view.Class {
	out := make([]view.Class, 0, len(v.order))
	for _, k := range v.order {
		out = append(out, v.classes[k])
	}
	return out
}

// GetClass resolves t to its Class, or reports absence.
func (v *View) GetClass(t view.ClassType) (view.Class, bool) {
	c, ok := v.classes[t.FullyQualifiedName]
	return c, ok
}

// SortedNames returns every class name in this view, sorted, useful for
// deterministic test assertions.
func (v *View) SortedNames() []string {
	names := make([]string, 0, len(v.order))
	for _, k := range v.order {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
