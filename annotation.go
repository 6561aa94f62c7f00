package resetinfer

// AnnotationClass identifies which reset annotation an Annotation carries.
// The two class strings are bit-exact copies of the wire-format class
// names; they must never change independent of the format they mirror.
type AnnotationClass string

const (
	// FullAsyncResetAnnotationClass marks a port, wire, or node as the
	// root reset for its module's reset domain.
	FullAsyncResetAnnotationClass AnnotationClass = "sifive.enterprise.firrtl.FullAsyncResetAnnotation"
	// IgnoreFullAsyncResetAnnotationClass marks a module as explicitly
	// outside any reset domain.
	IgnoreFullAsyncResetAnnotationClass AnnotationClass = "sifive.enterprise.firrtl.IgnoreFullAsyncResetAnnotation"
)

// Annotation is a single recognized reset annotation attached to a module,
// port, wire, or node. Real annotation deserialization is out of scope;
// circuits under test attach Annotation values directly.
type Annotation struct {
	Class AnnotationClass
	Loc   Pos
}

// IsClass reports whether a matches any of the given classes.
func (a Annotation) IsClass(classes ...AnnotationClass) bool {
	for _, c := range classes {
		if a.Class == c {
			return true
		}
	}
	return false
}

// annotatable is implemented by every value that can legally carry reset
// annotations (module, port, wire, node) plus, deliberately, everything
// else in the op set so the collector can detect and reject a stray
// annotation on an operation that isn't one of those four kinds.
type annotatable interface {
	getAnnos() []Annotation
	setAnnos([]Annotation)
}

// removeAnnotations removes and returns every annotation of the given
// classes from v, leaving the rest untouched. This models the
// AnnotationSet::removeAnnotations consume-as-you-go pattern used by the
// annotation collector.
func removeAnnotations(v annotatable, classes ...AnnotationClass) []Annotation {
	all := v.getAnnos()
	var kept, removed []Annotation
	for _, a := range all {
		if a.IsClass(classes...) {
			removed = append(removed, a)
		} else {
			kept = append(kept, a)
		}
	}
	v.setAnnos(kept)
	return removed
}
