package javadoc

// Category classifies the structural role of a documentable element.
type Category int

const (
	CategoryTypeParam Category = iota
	CategoryParam
	CategoryReturn
	CategoryThrows
)

func (c Category) String() string {
	switch c {
	case CategoryTypeParam:
		return "type parameter"
	case CategoryParam:
		return "parameter"
	case CategoryReturn:
		return "return"
	case CategoryThrows:
		return "throws"
	default:
		return "unknown"
	}
}

// TagKind returns the tag kind synthesized for the category.
func (c Category) TagKind() TagKind {
	switch c {
	case CategoryTypeParam, CategoryParam:
		return KindParam
	case CategoryReturn:
		return KindReturn
	default:
		return KindThrows
	}
}

// Policy carries the project-level options that shape tag generation.
type Policy struct {
	// MethodTypeParameters enables @param tags for method-level type
	// parameters. Type-level type parameters are always tagged.
	MethodTypeParameters bool
	// QualifiedThrows uses the qualified type text for @throws arguments.
	QualifiedThrows bool
}

// Missing identifies one documentable element that has no corresponding tag.
type Missing struct {
	Category Category
	// Index is the element's position in its declaration list, -1 for the
	// return slot. Leading names derive from it, so no node identity is
	// needed.
	Index int
	// Name is the rendered form used to match existing tags: a bare
	// identifier for parameters and exceptions, "<T>" for type parameters.
	Name string
	// Argument is the text placed in the synthesized tag's argument. It
	// differs from Name for exceptions, where the throws-clause type text
	// (qualified per policy) is used.
	Argument string
}

// MissingTags enumerates the declaration's documentable elements that have
// no tag, in declaration order: type parameters, value parameters, the
// return slot, thrown exceptions. A Type declaration contributes only its
// type parameters; fields and enum constants have no taggable elements.
//
// Detection re-reads the Doc each call, so running it again after insertion
// yields nothing.
func MissingTags(decl *Declaration, pol Policy) []Missing {
	if decl.Doc == nil {
		return nil
	}

	var missing []Missing
	switch decl.Kind {
	case DeclMethod:
		missing = appendMissingTypeParams(missing, decl, pol.MethodTypeParameters)
		missing = appendMissingParams(missing, decl)
		missing = appendMissingReturn(missing, decl)
		missing = appendMissingThrows(missing, decl, pol)
	case DeclType:
		missing = appendMissingTypeParams(missing, decl, true)
	case DeclField, DeclEnumConstant:
		// No parameters, type parameters, return, or throws to document.
	}
	return missing
}

func appendMissingTypeParams(missing []Missing, decl *Declaration, enabled bool) []Missing {
	if !enabled {
		return missing
	}
	for i, tp := range decl.TypeParams {
		name := RenderTypeParam(tp.Name)
		if FindParamTag(decl.Doc, name) == nil {
			missing = append(missing, Missing{
				Category: CategoryTypeParam,
				Index:    i,
				Name:     name,
				Argument: name,
			})
		}
	}
	return missing
}

func appendMissingParams(missing []Missing, decl *Declaration) []Missing {
	for i, p := range decl.Params {
		if FindParamTag(decl.Doc, p.Name) == nil {
			missing = append(missing, Missing{
				Category: CategoryParam,
				Index:    i,
				Name:     p.Name,
				Argument: p.Name,
			})
		}
	}
	return missing
}

func appendMissingReturn(missing []Missing, decl *Declaration) []Missing {
	if decl.Constructor || decl.Returns == nil || decl.Returns.Void {
		return missing
	}
	if FindTag(decl.Doc, KindReturn, "") == nil {
		missing = append(missing, Missing{
			Category: CategoryReturn,
			Index:    -1,
		})
	}
	return missing
}

func appendMissingThrows(missing []Missing, decl *Declaration, pol Policy) []Missing {
	for i, exc := range decl.Throws {
		if !exc.Resolved {
			// Best-effort: an exception type that failed resolution is
			// simply not tagged.
			continue
		}
		if FindThrowsTag(decl.Doc, exc.Name) == nil {
			arg := exc.Name
			if pol.QualifiedThrows {
				arg = exc.Qualified
			}
			missing = append(missing, Missing{
				Category: CategoryThrows,
				Index:    i,
				Name:     exc.Name,
				Argument: arg,
			})
		}
	}
	return missing
}

// Synthesize builds the placeholder tag for a missing element: the rendered
// argument as the leading fragment plus one empty text fragment that the
// edit layer exposes as the editable description slot.
func Synthesize(m Missing) *Tag {
	tag := &Tag{Kind: m.Category.TagKind()}
	switch m.Category {
	case CategoryParam:
		tag.Fragments = append(tag.Fragments, Name(m.Argument))
	case CategoryTypeParam, CategoryThrows:
		tag.Fragments = append(tag.Fragments, Text(m.Argument))
	case CategoryReturn:
		// @return has no argument.
	}
	tag.Fragments = append(tag.Fragments, Text(""))
	return tag
}
