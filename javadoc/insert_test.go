package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramTag(name string) *Tag {
	return &Tag{Kind: KindParam, Fragments: []Fragment{Name(name), Text("")}}
}

func returnTag() *Tag {
	return &Tag{Kind: KindReturn, Fragments: []Fragment{Text("")}}
}

func TestInsertIntoEmptySequence(t *testing.T) {
	d := &Doc{}
	index := Insert(d, paramTag("x"), map[string]bool{})
	assert.Equal(t, 0, index)
	assert.Len(t, d.Tags, 1)
}

func TestInsertAfterLeadingName(t *testing.T) {
	// [param(a), param(b), return], inserting param(c) with leading {a, b}
	d := &Doc{Tags: []*Tag{paramTag("a"), paramTag("b"), returnTag()}}

	index := Insert(d, paramTag("c"), map[string]bool{"a": true, "b": true})

	// Immediately after param(b), before return.
	assert.Equal(t, 2, index)
	arg, _ := Argument(d.Tags[2])
	assert.Equal(t, "c", arg)
	assert.Equal(t, KindReturn, d.Tags[3].Kind)
}

func TestInsertParamBeforeReturn(t *testing.T) {
	// [return] only: param ranks before return, rule 1 never fires, rule 2
	// finds nothing, so the tag falls to the start of the sequence.
	d := &Doc{Tags: []*Tag{returnTag()}}

	index := Insert(d, paramTag("x"), map[string]bool{})

	assert.Equal(t, 0, index)
	assert.Equal(t, KindParam, d.Tags[0].Kind)
	assert.Equal(t, KindReturn, d.Tags[1].Kind)
}

func TestInsertCrossKindRanking(t *testing.T) {
	// @throws after an existing @param: param ranks strictly lower.
	d := &Doc{Tags: []*Tag{paramTag("a")}}
	throwsTag := &Tag{Kind: KindThrows, Fragments: []Fragment{Text("IOException"), Text("")}}

	index := Insert(d, throwsTag, map[string]bool{})
	assert.Equal(t, 1, index)
}

func TestInsertAnchorsOnExceptionSynonym(t *testing.T) {
	// An existing @exception tag anchors a new @throws for a later-declared
	// exception.
	d := &Doc{Tags: []*Tag{
		{Kind: KindException, Fragments: []Fragment{Name("IOException"), Text("")}},
	}}
	newTag := &Tag{Kind: KindThrows, Fragments: []Fragment{Text("SQLException"), Text("")}}

	index := Insert(d, newTag, map[string]bool{"IOException": true})
	assert.Equal(t, 1, index)
}

func TestInsertSkipsLaterDeclaredSibling(t *testing.T) {
	// Doc has a tag only for the later-declared parameter b. Inserting
	// param(a) with empty leading names must go before it, not after.
	d := &Doc{Tags: []*Tag{paramTag("b"), returnTag()}}

	index := Insert(d, paramTag("a"), map[string]bool{})
	assert.Equal(t, 0, index)
}

func TestInsertNilLeadingDisablesRule2(t *testing.T) {
	// A malformed duplicate @return would anchor via rule 2 if enabled; nil
	// disables it, leaving only cross-kind ranking.
	d := &Doc{Tags: []*Tag{paramTag("a")}}

	index := Insert(d, returnTag(), nil)
	assert.Equal(t, 1, index)
}

func methodDecl() *Declaration {
	return &Declaration{
		Kind: DeclMethod,
		Name: "foo",
		Params: []Parameter{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "int"},
		},
		Returns: &ReturnSlot{Type: "int"},
		Throws: []ThrownException{
			{Name: "IOException", Qualified: "java.io.IOException", Resolved: true},
		},
		Doc: &Doc{},
	}
}

func TestInsertMissingBatchOrder(t *testing.T) {
	// Two value parameters, no existing tags: processing p2 then p1 must
	// produce final order [param(p1), param(p2)].
	decl := &Declaration{
		Kind: DeclMethod,
		Name: "pair",
		Params: []Parameter{
			{Name: "p1", Type: "int"},
			{Name: "p2", Type: "int"},
		},
		Doc: &Doc{},
	}

	insertions, err := InsertMissing(decl, Policy{})
	require.NoError(t, err)
	require.Len(t, insertions, 2)

	// p2 is processed first.
	arg, _ := Argument(insertions[0].Tag)
	assert.Equal(t, "p2", arg)

	first, _ := Argument(decl.Doc.Tags[0])
	second, _ := Argument(decl.Doc.Tags[1])
	assert.Equal(t, "p1", first)
	assert.Equal(t, "p2", second)
}

func TestInsertMissingEndToEnd(t *testing.T) {
	// Method foo(int a, int b) throws java.io.IOException with a non-void
	// return and an empty documentation block.
	decl := methodDecl()

	insertions, err := InsertMissing(decl, Policy{QualifiedThrows: true})
	require.NoError(t, err)
	assert.Len(t, insertions, 4)

	require.Len(t, decl.Doc.Tags, 4)
	argA, _ := Argument(decl.Doc.Tags[0])
	argB, _ := Argument(decl.Doc.Tags[1])
	assert.Equal(t, KindParam, decl.Doc.Tags[0].Kind)
	assert.Equal(t, "a", argA)
	assert.Equal(t, KindParam, decl.Doc.Tags[1].Kind)
	assert.Equal(t, "b", argB)
	assert.Equal(t, KindReturn, decl.Doc.Tags[2].Kind)
	assert.Equal(t, KindThrows, decl.Doc.Tags[3].Kind)
	assert.Equal(t, "java.io.IOException", decl.Doc.Tags[3].Fragments[0].Text)
}

func TestInsertMissingTypeParameters(t *testing.T) {
	decl := &Declaration{
		Kind:       DeclMethod,
		Name:       "map",
		TypeParams: []TypeParameter{{Name: "K"}, {Name: "V"}},
		Params:     []Parameter{{Name: "key", Type: "K"}},
		Returns:    &ReturnSlot{Type: "V"},
		Doc:        &Doc{},
	}

	_, err := InsertMissing(decl, Policy{MethodTypeParameters: true})
	require.NoError(t, err)

	require.Len(t, decl.Doc.Tags, 4)
	args := make([]string, 0, 3)
	for _, tag := range decl.Doc.Tags[:3] {
		a, ok := Argument(tag)
		require.True(t, ok)
		args = append(args, a)
	}
	// Type-parameter tags precede value-parameter tags.
	assert.Equal(t, []string{"<K>", "<V>", "key"}, args)
	assert.Equal(t, KindReturn, decl.Doc.Tags[3].Kind)
}

func TestInsertMissingTypeParamPolicyDisabled(t *testing.T) {
	decl := &Declaration{
		Kind:       DeclMethod,
		Name:       "of",
		TypeParams: []TypeParameter{{Name: "T"}},
		Params:     []Parameter{{Name: "value", Type: "T"}},
		Returns:    &ReturnSlot{Type: "T"},
		Doc:        &Doc{},
	}

	_, err := InsertMissing(decl, Policy{MethodTypeParameters: false})
	require.NoError(t, err)

	require.Len(t, decl.Doc.Tags, 2)
	arg, _ := Argument(decl.Doc.Tags[0])
	assert.Equal(t, "value", arg)
	assert.Equal(t, KindReturn, decl.Doc.Tags[1].Kind)
}

func TestInsertMissingRespectsExistingTags(t *testing.T) {
	// Existing doc documents b only; a must slot in before it, and the
	// remaining categories follow canonical order.
	decl := methodDecl()
	decl.Doc = &Doc{
		Description: "Adds things.",
		Tags: []*Tag{
			{Kind: KindParam, Fragments: []Fragment{Name("b"), Text("second addend")}},
			{Kind: KindSince, Fragments: []Fragment{Text("1.2")}},
		},
	}

	_, err := InsertMissing(decl, Policy{QualifiedThrows: true})
	require.NoError(t, err)

	kinds := make([]TagKind, 0, len(decl.Doc.Tags))
	for _, tag := range decl.Doc.Tags {
		kinds = append(kinds, tag.Kind)
	}
	assert.Equal(t, []TagKind{KindParam, KindParam, KindReturn, KindThrows, KindSince}, kinds)

	argA, _ := Argument(decl.Doc.Tags[0])
	argB, _ := Argument(decl.Doc.Tags[1])
	assert.Equal(t, "a", argA)
	assert.Equal(t, "b", argB)
}

func TestInsertMissingSkipsUnresolvedExceptions(t *testing.T) {
	decl := methodDecl()
	decl.Throws = append(decl.Throws, ThrownException{Name: "Mystery", Qualified: "Mystery", Resolved: false})

	insertions, err := InsertMissing(decl, Policy{})
	require.NoError(t, err)

	for _, ins := range insertions {
		assert.NotEqual(t, "Mystery", ins.Missing.Name)
	}
}

func TestMissingTagsIdempotent(t *testing.T) {
	decl := methodDecl()

	first := MissingTags(decl, Policy{})
	require.NotEmpty(t, first)

	_, err := InsertMissing(decl, Policy{})
	require.NoError(t, err)

	// Detection re-examines existing tags, so a second run finds nothing.
	second := MissingTags(decl, Policy{})
	assert.Empty(t, second)
}

func TestMissingTagsIdempotentQualifiedThrows(t *testing.T) {
	// The synthesized throws tag carries the qualified name as a text atom;
	// detection matches it against the simple exception name.
	decl := methodDecl()
	pol := Policy{QualifiedThrows: true}

	_, err := InsertMissing(decl, pol)
	require.NoError(t, err)

	assert.Empty(t, MissingTags(decl, pol))
}

func TestMissingTagsConstructorAndVoid(t *testing.T) {
	ctor := &Declaration{
		Kind:        DeclMethod,
		Name:        "Foo",
		Constructor: true,
		Params:      []Parameter{{Name: "size", Type: "int"}},
		Doc:         &Doc{},
	}
	missing := MissingTags(ctor, Policy{})
	require.Len(t, missing, 1)
	assert.Equal(t, CategoryParam, missing[0].Category)

	void := &Declaration{
		Kind:    DeclMethod,
		Name:    "run",
		Returns: &ReturnSlot{Type: "void", Void: true},
		Doc:     &Doc{},
	}
	assert.Empty(t, MissingTags(void, Policy{}))
}

func TestMissingTagsNoDoc(t *testing.T) {
	decl := methodDecl()
	decl.Doc = nil
	assert.Nil(t, MissingTags(decl, Policy{}))
}

func TestMissingTagsTypeDeclaration(t *testing.T) {
	decl := &Declaration{
		Kind:       DeclType,
		Name:       "Pair",
		TypeParams: []TypeParameter{{Name: "L"}, {Name: "R"}},
		// Methods inside the type are separate declarations; a type only
		// contributes its type parameters.
		Params: []Parameter{{Name: "ignored"}},
		Doc:    &Doc{},
	}

	missing := MissingTags(decl, Policy{})
	require.Len(t, missing, 2)
	assert.Equal(t, "<L>", missing[0].Name)
	assert.Equal(t, "<R>", missing[1].Name)
}

func TestLeadingNamesUnknownCategoryFails(t *testing.T) {
	decl := methodDecl()
	_, err := InsertSingle(decl, Missing{Category: Category(99)})
	require.Error(t, err)
}

func TestSynthesizePlaceholderFragment(t *testing.T) {
	tests := []struct {
		name string
		m    Missing
		kind TagKind
	}{
		{"param", Missing{Category: CategoryParam, Name: "a", Argument: "a"}, KindParam},
		{"type param", Missing{Category: CategoryTypeParam, Name: "<T>", Argument: "<T>"}, KindParam},
		{"return", Missing{Category: CategoryReturn, Index: -1}, KindReturn},
		{"throws", Missing{Category: CategoryThrows, Name: "IOException", Argument: "java.io.IOException"}, KindThrows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := Synthesize(tt.m)
			assert.Equal(t, tt.kind, tag.Kind)
			// The trailing fragment is the empty editable placeholder.
			last := tag.Fragments[len(tag.Fragments)-1]
			assert.Equal(t, FragmentText, last.Kind)
			assert.Empty(t, last.Text)
		})
	}
}
