package edit

import (
	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/javadoc"
)

// Stub carries the template values placed in generated comment blocks.
type Stub struct {
	// Author fills an @author tag on generated type comments; empty omits it.
	Author string
	// Since fills a @since tag on generated type comments; empty omits it.
	Since string
}

// CommentStub builds the edit inserting a complete documentation block above
// an undocumented declaration: an empty description line plus tags for every
// documentable element, already in canonical order. This path never consults
// the ordered inserter; there is no existing sequence to respect.
func CommentStub(src []byte, decl *javadoc.Declaration, pol javadoc.Policy, stub Stub) (TextEdit, error) {
	if decl.Doc != nil {
		return TextEdit{}, errors.AssertionFailedf("comment stub requested for already documented declaration %q", decl.Name)
	}

	tags := stubTags(decl, pol, stub)
	indent := commentIndent(src, decl.Span.Start)
	delim := lineDelimiter(src)

	offset := lineStart(src, decl.Span.Start)
	text := indent + RenderComment("", tags, indent, delim) + delim
	return TextEdit{Offset: offset, Text: text}, nil
}

func stubTags(decl *javadoc.Declaration, pol javadoc.Policy, stub Stub) []*javadoc.Tag {
	var tags []*javadoc.Tag
	add := func(kind javadoc.TagKind, frags ...javadoc.Fragment) {
		tags = append(tags, &javadoc.Tag{Kind: kind, Fragments: frags})
	}

	switch decl.Kind {
	case javadoc.DeclMethod:
		if pol.MethodTypeParameters {
			for _, tp := range decl.TypeParams {
				add(javadoc.KindParam, javadoc.Text(javadoc.RenderTypeParam(tp.Name)))
			}
		}
		for _, p := range decl.Params {
			add(javadoc.KindParam, javadoc.Name(p.Name))
		}
		if !decl.Constructor && decl.Returns != nil && !decl.Returns.Void {
			add(javadoc.KindReturn)
		}
		for _, exc := range decl.Throws {
			if !exc.Resolved {
				continue
			}
			arg := exc.Name
			if pol.QualifiedThrows {
				arg = exc.Qualified
			}
			add(javadoc.KindThrows, javadoc.Text(arg))
		}

	case javadoc.DeclType:
		if stub.Author != "" {
			add(javadoc.KindAuthor, javadoc.Text(stub.Author))
		}
		for _, tp := range decl.TypeParams {
			add(javadoc.KindParam, javadoc.Text(javadoc.RenderTypeParam(tp.Name)))
		}
		if stub.Since != "" {
			add(javadoc.KindSince, javadoc.Text(stub.Since))
		}

	case javadoc.DeclField, javadoc.DeclEnumConstant:
		// description-only block
	}
	return tags
}

// DeclarationEdits computes the full set of edits for one declaration:
// missing-tag insertions when it carries a documentation block, a comment
// stub when it carries none and withStubs is set. decl.Doc is mutated by the
// insertion pass.
func DeclarationEdits(src []byte, decl *javadoc.Declaration, pol javadoc.Policy, stub Stub, withStubs bool) ([]TextEdit, error) {
	if decl.Doc == nil {
		if !withStubs {
			return nil, nil
		}
		e, err := CommentStub(src, decl, pol, stub)
		if err != nil {
			return nil, err
		}
		return []TextEdit{e}, nil
	}

	insertions, err := javadoc.InsertMissing(decl, pol)
	if err != nil {
		return nil, err
	}
	return InsertTagEdits(src, decl, insertions)
}
