package edit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javelin-dev/javelin/java"
	"github.com/javelin-dev/javelin/javadoc"
)

func TestRenderTag(t *testing.T) {
	tests := []struct {
		name string
		tag  *javadoc.Tag
		want string
	}{
		{
			"param with description",
			&javadoc.Tag{Kind: javadoc.KindParam, Fragments: []javadoc.Fragment{javadoc.Name("a"), javadoc.Text("the addend")}},
			"@param a the addend",
		},
		{
			"synthesized param placeholder",
			&javadoc.Tag{Kind: javadoc.KindParam, Fragments: []javadoc.Fragment{javadoc.Name("a"), javadoc.Text("")}},
			"@param a",
		},
		{
			"bare return",
			&javadoc.Tag{Kind: javadoc.KindReturn, Fragments: []javadoc.Fragment{javadoc.Text("")}},
			"@return",
		},
		{
			"throws qualified",
			&javadoc.Tag{Kind: javadoc.KindThrows, Fragments: []javadoc.Fragment{javadoc.Text("java.io.IOException"), javadoc.Text("")}},
			"@throws java.io.IOException",
		},
		{
			"three-atom type parameter",
			&javadoc.Tag{Kind: javadoc.KindParam, Fragments: []javadoc.Fragment{javadoc.Text("<"), javadoc.Name("T"), javadoc.Text(">"), javadoc.Text("the type")}},
			"@param <T> the type",
		},
		{
			"fused type parameter",
			&javadoc.Tag{Kind: javadoc.KindParam, Fragments: []javadoc.Fragment{javadoc.Text("<T>"), javadoc.Text("")}},
			"@param <T>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTag(tt.tag))
		})
	}
}

const missingTagSource = `package p;

public class Calc {

    /**
     * Adds two numbers.
     *
     * @param a the first addend
     * @return the sum
     */
    public int add(int a, int b) throws ArithmeticException {
        return a + b;
    }
}
`

func fixedSource(t *testing.T, source string, pol javadoc.Policy) string {
	t.Helper()
	src := []byte(source)
	cu, err := java.NewParser().Parse(context.Background(), src, "test.java")
	require.NoError(t, err)

	var edits []TextEdit
	for _, decl := range cu.Decls {
		declEdits, err := DeclarationEdits(src, decl, pol, Stub{}, false)
		require.NoError(t, err)
		edits = append(edits, declEdits...)
	}

	out, err := Apply(src, edits)
	require.NoError(t, err)
	return string(out)
}

func TestInsertTagEditsSplicesLines(t *testing.T) {
	out := fixedSource(t, missingTagSource, javadoc.Policy{})

	want := `package p;

public class Calc {

    /**
     * Adds two numbers.
     *
     * @param a the first addend
     * @param b
     * @return the sum
     * @throws ArithmeticException
     */
    public int add(int a, int b) throws ArithmeticException {
        return a + b;
    }
}
`
	assert.Equal(t, want, out)
}

func TestInsertTagEditsAppendAfterLastTag(t *testing.T) {
	source := `package p;

public class C {
    /**
     * Runs once.
     *
     * @param input the input
     */
    public int run(String input) {
        return input.length();
    }
}
`
	out := fixedSource(t, source, javadoc.Policy{})
	want := `package p;

public class C {
    /**
     * Runs once.
     *
     * @param input the input
     * @return
     */
    public int run(String input) {
        return input.length();
    }
}
`
	assert.Equal(t, want, out)
}

func TestInsertTagEditsNoExistingTags(t *testing.T) {
	source := `package p;

public class C {
    /**
     * Runs once.
     */
    public int run(String input) {
        return input.length();
    }
}
`
	out := fixedSource(t, source, javadoc.Policy{})
	want := `package p;

public class C {
    /**
     * Runs once.
     * @param input
     * @return
     */
    public int run(String input) {
        return input.length();
    }
}
`
	assert.Equal(t, want, out)
}

func TestInsertTagEditsRegeneratesSingleLineComment(t *testing.T) {
	source := `package p;

public class C {
    /** Runs once. */
    public int run(String input) {
        return input.length();
    }
}
`
	out := fixedSource(t, source, javadoc.Policy{})
	want := `package p;

public class C {
    /**
     * Runs once.
     *
     * @param input
     * @return
     */
    public int run(String input) {
        return input.length();
    }
}
`
	assert.Equal(t, want, out)
}

func TestInsertTagEditsNothingMissing(t *testing.T) {
	source := `package p;

public class C {
    /**
     * Runs once.
     *
     * @param input the input
     * @return the length
     */
    public int run(String input) {
        return input.length();
    }
}
`
	assert.Equal(t, source, fixedSource(t, source, javadoc.Policy{}))
}

func TestRenderCommentEmptyDescription(t *testing.T) {
	tags := []*javadoc.Tag{
		{Kind: javadoc.KindParam, Fragments: []javadoc.Fragment{javadoc.Name("a"), javadoc.Text("")}},
	}
	got := RenderComment("", tags, "  ", "\n")
	assert.Equal(t, "/**\n   *\n   * @param a\n   */", got)
}
