package emit

import "github.com/phobologic/javamake/internal/view"

// AnyValue returns a literal stand-in for a parameter slot when no
// registered value exists, per spec.md §4.3. It reports ok=false for
// anything not representable by a literal (arrays, arbitrary classes
// other than java.lang.String), which the caller must turn into
// ErrEmissionIncomplete.
func AnyValue(t view.Type) (string, bool) {
	switch tt := t.(type) {
	case view.PrimitiveType:
		return primitiveLiteral(tt.Kind), true
	case view.ClassType:
		if tt.FullyQualifiedName == "java.lang.String" {
			return `"string"`, true
		}
		return "", false
	default:
		return "", false
	}
}

func primitiveLiteral(kind view.PrimitiveKind) string {
	switch kind {
	case view.Char:
		return "'?'"
	case view.Boolean:
		return "true"
	case view.Byte, view.Short, view.Int:
		return "0"
	case view.Long:
		return "0"
	case view.Float:
		return "0f"
	case view.Double:
		return "0.0"
	default:
		return "0"
	}
}
