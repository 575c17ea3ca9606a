package javadoc

import "strings"

// Argument recovers the associated name recorded in a tag's leading
// fragments: the parameter name of a @param tag, the type-parameter name in
// its angle-bracket form, or the exception name of a @throws tag.
//
// A bracketed type-parameter name has two physical encodings: a single fused
// text atom "<T>", or the three atoms "<", T, ">". Both extract to the
// identical "<T>" — required for detection to work across comment formatting
// variants, not an optimization.
//
// Tags with no associated name (@return, @deprecated, a bare @param) yield
// ok == false.
func Argument(t *Tag) (string, bool) {
	if len(t.Fragments) == 0 {
		return "", false
	}

	first := t.Fragments[0]
	if first.Kind == FragmentName {
		return first.Text, true
	}

	if t.Kind == KindParam && first.Kind == FragmentText {
		text := first.Text
		if text == "<" && len(t.Fragments) >= 3 {
			second := t.Fragments[1]
			third := t.Fragments[2]
			if second.Kind == FragmentName && third.Kind == FragmentText && third.Text == ">" {
				return "<" + second.Text + ">", true
			}
		} else if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") && len(text) > 2 {
			// Already fused
			return text, true
		}
	}

	return "", false
}

// FindTag returns the first tag of the given kind whose argument equals arg,
// or nil. An empty arg matches the first tag of the kind regardless of
// argument (used for @return, which carries no name).
func FindTag(d *Doc, kind TagKind, arg string) *Tag {
	for _, t := range d.Tags {
		if t.Kind != kind {
			continue
		}
		if arg == "" {
			return t
		}
		if a, ok := Argument(t); ok && a == arg {
			return t
		}
	}
	return nil
}

// FindParamTag returns the first @param tag documenting arg, or nil.
func FindParamTag(d *Doc, arg string) *Tag {
	return FindTag(d, KindParam, arg)
}

// FindThrowsTag returns the first @throws or @exception tag documenting arg
// (a simple exception name), or nil. The documented type may be an identifier
// atom or, on synthesized tags, a text atom, and either may be qualified;
// all forms match by simple type name.
func FindThrowsTag(d *Doc, arg string) *Tag {
	for _, t := range d.Tags {
		if t.Kind != KindThrows && t.Kind != KindException {
			continue
		}
		if a, ok := Argument(t); ok && a == arg {
			return t
		}
		if len(t.Fragments) > 0 {
			first := t.Fragments[0]
			if first.Text != "" && simpleTypeName(first.Text) == arg {
				return t
			}
		}
	}
	return nil
}

// simpleTypeName strips any type arguments and package qualifier from a type
// reference: "java.util.List<String>" becomes "List".
func simpleTypeName(ref string) string {
	if i := strings.IndexByte(ref, '<'); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.LastIndexByte(ref, '.'); i >= 0 {
		ref = ref[i+1:]
	}
	return strings.TrimSpace(ref)
}
