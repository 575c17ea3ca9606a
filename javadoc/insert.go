package javadoc

import "github.com/javelin-dev/javelin/errors"

// Insert splices tag into the documentation block and returns the chosen
// index.
//
// The sequence is scanned from its last tag backward. The insertion point is
// immediately after the first tag that either
//
//  1. ranks strictly below the new tag in the canonical order — the nearest
//     predecessor that must come before it regardless of content — or
//  2. is of the same kind (@exception counting as @throws) and documents a
//     name in sameKindLeadingNames, i.e. the nearest already-present tag for
//     an earlier-declared element.
//
// If no tag matches, the new tag goes to the front of the sequence. A nil
// sameKindLeadingNames disables rule 2 entirely; @return uses this, since at
// most one instance is expected and cross-kind ranking places it alone.
//
// Rule 2 is correct even when earlier-declared elements have no tag yet: the
// set contains only names declared before the new tag's element, so any
// same-kind tag not in the set belongs to a later-declared element and must
// not become the anchor. If malformed input holds duplicate tags for one
// name, the first match scanning backward wins.
func Insert(d *Doc, tag *Tag, sameKindLeadingNames map[string]bool) int {
	rank := Rank(tag.Kind)

	index := 0
	for i := len(d.Tags) - 1; i >= 0; i-- {
		curr := d.Tags[i]
		if rank > Rank(curr.Kind) {
			index = i + 1
			break
		}
		if sameKindLeadingNames != nil && sameKind(tag.Kind, curr.Kind) {
			if arg, ok := Argument(curr); ok && sameKindLeadingNames[arg] {
				index = i + 1
				break
			}
		}
	}

	d.InsertTagAt(index, tag)
	return index
}

// Insertion records one performed insertion: the synthesized tag and the
// index it occupied at insertion time. The edit layer replays these in order
// against the same sequence snapshots.
type Insertion struct {
	Index   int
	Tag     *Tag
	Missing Missing
}

// InsertSingle synthesizes and inserts the tag for one missing element,
// mutating decl's Doc.
//
// A Missing whose category is not one of the four structural roles is a
// caller bug and fails the contract rather than degrading.
func InsertSingle(decl *Declaration, m Missing) (Insertion, error) {
	leading, err := leadingNames(decl, m)
	if err != nil {
		return Insertion{}, err
	}

	tag := Synthesize(m)
	index := Insert(decl.Doc, tag, leading)
	return Insertion{Index: index, Tag: tag, Missing: m}, nil
}

// InsertMissing synthesizes and inserts tags for every missing element of
// the declaration.
//
// Within each category the candidates are processed in reverse declaration
// order, categories running type parameters, value parameters, return,
// exceptions. Processing last-declared first guarantees that when an
// earlier-declared candidate is inserted, every later-declared sibling is
// already in the sequence, so the leading-name anchor of rule 2 lands each
// tag directly in final position — no re-sort pass afterwards.
//
// The returned insertions are in processing order.
func InsertMissing(decl *Declaration, pol Policy) ([]Insertion, error) {
	missing := MissingTags(decl, pol)
	if len(missing) == 0 {
		return nil, nil
	}

	byCategory := make(map[Category][]Missing)
	for _, m := range missing {
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}

	var insertions []Insertion
	for _, cat := range []Category{CategoryTypeParam, CategoryParam, CategoryReturn, CategoryThrows} {
		group := byCategory[cat]
		for i := len(group) - 1; i >= 0; i-- {
			ins, err := InsertSingle(decl, group[i])
			if err != nil {
				return nil, err
			}
			insertions = append(insertions, ins)
		}
	}
	return insertions, nil
}

// leadingNames computes the rendered names of elements declared before the
// missing one, by positional index into the declaration's lists.
func leadingNames(decl *Declaration, m Missing) (map[string]bool, error) {
	switch m.Category {
	case CategoryTypeParam:
		names := make(map[string]bool)
		for i := 0; i < m.Index && i < len(decl.TypeParams); i++ {
			names[RenderTypeParam(decl.TypeParams[i].Name)] = true
		}
		return names, nil

	case CategoryParam:
		names := make(map[string]bool)
		for i := 0; i < m.Index && i < len(decl.Params); i++ {
			names[decl.Params[i].Name] = true
		}
		// Type-parameter tags conventionally precede ordinary parameter
		// tags even though both use @param, so every rendered
		// type-parameter name counts as leading.
		for _, tp := range decl.TypeParams {
			names[RenderTypeParam(tp.Name)] = true
		}
		return names, nil

	case CategoryReturn:
		// Rule 2 disabled: cross-kind ranking fully determines @return.
		return nil, nil

	case CategoryThrows:
		names := make(map[string]bool)
		for i := 0; i < m.Index && i < len(decl.Throws); i++ {
			names[decl.Throws[i].Qualified] = true
		}
		return names, nil

	default:
		return nil, errors.AssertionFailedf("unexpected missing-node category %d", int(m.Category))
	}
}
