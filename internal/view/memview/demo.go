package memview

import "github.com/phobologic/javamake/internal/view"

// Demo returns a small, self-contained universe of classes: two JDK classes
// (Object, and String, the one class the emitter's AnyValue table has a
// literal for), a library class with a String-only constructor, and an
// abstract class with a single public subclass — enough to exercise every
// dependency kind in spec.md §3 without needing real jars or a javac. Used
// by the CLI's demo and solve subcommands and by the miner, target and
// pipeline package tests.
func Demo() *View {
	object := view.ClassType{FullyQualifiedName: "java.lang.Object", PackageName: "java.lang"}
	str := view.ClassType{FullyQualifiedName: "java.lang.String", PackageName: "java.lang"}
	greeting := view.ClassType{FullyQualifiedName: "org.example.demo.Greeting", PackageName: "org.example.demo"}
	shape := view.ClassType{FullyQualifiedName: "org.example.demo.Shape", PackageName: "org.example.demo"}
	circle := view.ClassType{FullyQualifiedName: "org.example.demo.Circle", PackageName: "org.example.demo"}
	factory := view.ClassType{FullyQualifiedName: "org.example.demo.Shapes", PackageName: "org.example.demo"}

	b := NewBuilder()

	b.Add(view.Class{
		Name: "java.lang.Object", Type: object, IsPublic: true,
	})
	b.Add(view.Class{
		Name: "java.lang.String", Type: str, IsPublic: true,
	})

	b.Add(view.Class{
		Name: "org.example.demo.Greeting", Type: greeting, IsPublic: true,
		Superclass: &object,
		Methods: []view.Method{
			{
				Name: "<init>", IsPublic: true, DeclClassType: greeting,
				ParameterTypes: []view.Type{str},
			},
		},
	})

	b.Add(view.Class{
		Name: "org.example.demo.Shape", Type: shape, IsPublic: true,
		Superclass: &object,
	})

	b.Add(view.Class{
		Name: "org.example.demo.Circle", Type: circle, IsPublic: true,
		Superclass: &shape,
		Methods: []view.Method{
			{
				Name: "<init>", IsPublic: true, DeclClassType: circle,
				ParameterTypes: []view.Type{view.PrimitiveType{Kind: view.Double}},
			},
		},
	})

	b.Add(view.Class{
		Name: "org.example.demo.Shapes", Type: factory, IsPublic: true,
		Superclass: &object,
		Methods: []view.Method{
			{
				Name: "<init>", IsPublic: true, DeclClassType: factory,
			},
			{
				Name: "unitCircle", IsPublic: true, DeclClassType: factory,
				ParameterTypes: nil,
				ReturnType:     shape,
			},
		},
	})

	return b.Build()
}
