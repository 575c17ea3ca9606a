package java

import "strings"

// javaLangThrowables are the java.lang throwable types visible without an
// import. Kept to throwables since resolution only gates @throws generation.
var javaLangThrowables = map[string]bool{
	"Throwable":                      true,
	"Error":                          true,
	"Exception":                      true,
	"RuntimeException":               true,
	"ArithmeticException":            true,
	"ArrayIndexOutOfBoundsException": true,
	"ArrayStoreException":            true,
	"ClassCastException":             true,
	"ClassNotFoundException":         true,
	"CloneNotSupportedException":     true,
	"IllegalAccessException":         true,
	"IllegalArgumentException":       true,
	"IllegalStateException":          true,
	"IndexOutOfBoundsException":      true,
	"InterruptedException":           true,
	"NegativeArraySizeException":     true,
	"NoSuchFieldException":           true,
	"NoSuchMethodException":          true,
	"NullPointerException":           true,
	"NumberFormatException":          true,
	"ReflectiveOperationException":   true,
	"SecurityException":              true,
	"StringIndexOutOfBoundsException": true,
	"UnsupportedOperationException":   true,
	"AssertionError":                  true,
	"OutOfMemoryError":                true,
	"StackOverflowError":              true,
}

// resolver answers whether an exception type written in a throws clause can
// be considered resolved, from single-file evidence only. Best effort: a
// wildcard import makes every simple name plausible.
type resolver struct {
	imports  map[string]string
	wildcard bool
	declared map[string]bool
}

func newResolver(imports map[string]string, wildcard bool, declaredTypes []string) *resolver {
	declared := make(map[string]bool, len(declaredTypes))
	for _, t := range declaredTypes {
		declared[t] = true
	}
	return &resolver{imports: imports, wildcard: wildcard, declared: declared}
}

func (r *resolver) resolves(typeText string) bool {
	if strings.Contains(typeText, ".") {
		// written qualified; taken at face value
		return true
	}
	simple := simpleTypeName(typeText)
	if r.imports[simple] != "" || r.declared[simple] || javaLangThrowables[simple] {
		return true
	}
	return r.wildcard
}
