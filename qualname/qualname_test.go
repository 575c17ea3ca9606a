package qualname

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javelin-dev/javelin/edit"
)

func TestFindBoundedMatches(t *testing.T) {
	content := []byte(`<bean class="com.example.Foo"/>
<bean class="com.example.FooBar"/>
<bean class="x.com.example.Foo"/>
value=com.example.Foo
`)
	matches, err := Find(content, "com.example.Foo")
	require.NoError(t, err)

	// FooBar and the x.-prefixed name must not match.
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 4, matches[1].Line)
	for _, m := range matches {
		assert.Equal(t, "com.example.Foo", string(content[m.Offset:m.Offset+m.Length]))
	}
}

func TestFindEscapesMetacharacters(t *testing.T) {
	// the dots must not match arbitrary characters
	matches, err := Find([]byte("comXexampleXFoo"), "com.example.Foo")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindAtBufferBoundaries(t *testing.T) {
	matches, err := Find([]byte("com.example.Foo"), "com.example.Foo")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFindAdjacentOccurrences(t *testing.T) {
	// Occurrences separated by a single delimiter must all be found.
	content := []byte("com.example.Foo,com.example.Foo")
	matches, err := Find(content, "com.example.Foo")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Offset)
	assert.Equal(t, 16, matches[1].Offset)
}

func TestPatternRejectsEmptyName(t *testing.T) {
	_, err := Pattern("  ")
	require.Error(t, err)
}

func TestReplaceEdits(t *testing.T) {
	content := []byte(`class=com.example.Foo other=com.example.Foo`)
	edits, err := ReplaceEdits(content, "com.example.Foo", "com.example.bar.Foo")
	require.NoError(t, err)
	require.Len(t, edits, 2)

	out, err := edit.Apply(content, edits)
	require.NoError(t, err)
	assert.Equal(t, "class=com.example.bar.Foo other=com.example.bar.Foo", string(out))
}

func TestFindInTree(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("beans.xml", `<bean class="com.example.Foo"/>`)
	write("app.properties", "main=com.example.Foo\n")
	write("Main.java", "import com.example.Foo;") // .java is not searched
	write("notes.md", "com.example.Foo")          // extension not in the set

	found, err := NewFinder().FindInTree(dir, "com.example.Foo")
	require.NoError(t, err)

	paths := make([]string, 0, len(found))
	for _, fm := range found {
		paths = append(paths, filepath.Base(fm.Path))
	}
	assert.ElementsMatch(t, []string{"beans.xml", "app.properties"}, paths)
}

func TestReplaceInTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beans.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<bean class="com.example.Foo"/>`), 0o644))

	changed, err := NewFinder().ReplaceInTree(dir, "com.example.Foo", "org.example.Foo")
	require.NoError(t, err)
	require.Len(t, changed, 1)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<bean class="org.example.Foo"/>`, string(out))
}
