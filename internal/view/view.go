// Package view defines the read-only facade over a loaded Java bytecode
// image that the rest of javamake mines for construction candidates.
//
// A View is supplied by the caller (a real classfile/jar loader, a test
// fixture, or the in-memory universe in the memview subpackage); nothing in
// this package or its consumers knows how classes were loaded.
package view

// PrimitiveKind enumerates the eight Java primitive types.
type PrimitiveKind string

const (
	Boolean PrimitiveKind = "boolean"
	Byte    PrimitiveKind = "byte"
	Short   PrimitiveKind = "short"
	Char    PrimitiveKind = "char"
	Int     PrimitiveKind = "int"
	Long    PrimitiveKind = "long"
	Float   PrimitiveKind = "float"
	Double  PrimitiveKind = "double"
)

// Primitives lists all eight kinds in a fixed, deterministic order.
var Primitives = []PrimitiveKind{Boolean, Byte, Short, Char, Int, Long, Float, Double}

// Type is the sealed union of PrimitiveType, ClassType, and ArrayType.
// Consumers switch on the concrete type; no other implementations exist.
type Type interface {
	// typeSealed is unexported so only this package's types satisfy Type.
	typeSealed()
}

// PrimitiveType names one of the eight primitive kinds.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (PrimitiveType) typeSealed() {}

// ClassType names a class or interface by fully qualified name.
type ClassType struct {
	FullyQualifiedName string
	PackageName        string
}

func (ClassType) typeSealed() {}

// SimpleName returns the unqualified, inner-class-normalized name: the
// portion after the last '.' or '$'.
func (t ClassType) SimpleName() string {
	name := t.FullyQualifiedName
	if i := lastIndexAny(name, ".$"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// ArrayType names an array of Dimension dimensions over ElementType.
// ElementType is never itself an ArrayType; multi-dimensional arrays are
// represented by Dimension, not by nesting.
type ArrayType struct {
	ElementType Type
	Dimension   int
}

func (ArrayType) typeSealed() {}

func lastIndexAny(s, chars string) int {
	for i := len(s) - 1; i >= 0; i-- {
		for _, c := range chars {
			if s[i] == byte(c) {
				return i
			}
		}
	}
	return -1
}

// Method describes one method or constructor on a Class, as exposed by the
// view. A constructor is a Method whose Name is "<init>".
type Method struct {
	Name           string
	IsPublic       bool
	DeclClassType  ClassType
	ParameterTypes []Type
	ReturnType     Type
}

// IsConstructor reports whether m is a constructor reference.
func (m Method) IsConstructor() bool {
	return m.Name == "<init>"
}

// Class describes one loaded class or interface.
type Class struct {
	Name       string
	Type       ClassType
	IsPublic   bool
	Superclass *ClassType
	Interfaces []ClassType
	Methods    []Method
}

// IsJDK reports whether the class's package is part of the java.* namespace,
// per spec.md §4.1's short-circuit for JDK classes.
func (c Class) IsJDK() bool {
	return isJDKPackage(c.Type.PackageName)
}

func isJDKPackage(pkg string) bool {
	return len(pkg) >= 5 && pkg[:5] == "java."
}

// View is the read-only facade the miner consumes. GetClass may return
// the zero value with ok=false ("absent") instead of an error: absence is
// expected and routine (an unresolved reference, a class the loader never
// saw), not exceptional.
type View interface {
	// Classes enumerates every loaded class in a stable, deterministic
	// order. Implementations must not reorder between calls.
	Classes() []Class
	// GetClass resolves a ClassType to its Class, or reports absence.
	GetClass(t ClassType) (Class, bool)
}
