package javadoc

// DeclarationKind is the closed set of declaration variants that can own a
// documentation block.
type DeclarationKind int

const (
	DeclMethod DeclarationKind = iota
	DeclType
	DeclField
	DeclEnumConstant
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclMethod:
		return "method"
	case DeclType:
		return "type"
	case DeclField:
		return "field"
	case DeclEnumConstant:
		return "enum constant"
	default:
		return "unknown"
	}
}

// Parameter is a value parameter of a method or constructor.
type Parameter struct {
	Name string
	Type string
}

// TypeParameter is a generic type parameter of a method or type.
type TypeParameter struct {
	Name string
}

// ThrownException is one entry of a method's throws clause.
type ThrownException struct {
	// Name is the simple type name, used to match existing @throws tags.
	Name string
	// Qualified is the type text as written in the throws clause, used as
	// the synthesized tag's argument.
	Qualified string
	// Resolved reports whether external resolution succeeded. Unresolved
	// exceptions are skipped, best-effort, never an error.
	Resolved bool
}

// ReturnSlot describes a method's return type. It is absent (nil) on
// constructors.
type ReturnSlot struct {
	Type string
	Void bool
}

// Declaration is a documentable source declaration as supplied by the
// parser. The tag sequence inside Doc is mutated only through insertion;
// everything else is read-only to this package.
type Declaration struct {
	Kind        DeclarationKind
	Name        string
	Constructor bool

	TypeParams []TypeParameter
	Params     []Parameter
	Returns    *ReturnSlot
	Throws     []ThrownException

	// Doc is nil when the declaration has no documentation block at all;
	// such declarations are routed to comment-stub generation instead of
	// tag insertion.
	Doc *Doc

	// Span covers the declaration header in the source (used to position
	// generated comment stubs).
	Span Span
}

// RenderTypeParam is the textual form of a type-parameter name inside a tag
// argument.
func RenderTypeParam(name string) string {
	return "<" + name + ">"
}
