package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankCanonicalOrder(t *testing.T) {
	assert.Equal(t, 0, Rank(KindAuthor))
	assert.Equal(t, 1, Rank(KindVersion))
	assert.Equal(t, 2, Rank(KindParam))
	assert.Equal(t, 3, Rank(KindReturn))
	assert.Equal(t, 4, Rank(KindThrows))
	assert.Equal(t, 5, Rank(KindSee))
	assert.Equal(t, 6, Rank(KindSince))
	assert.Equal(t, 7, Rank(KindSerial))
	assert.Equal(t, 8, Rank(KindDeprecated))
}

func TestRankThrowsExceptionSynonym(t *testing.T) {
	assert.Equal(t, Rank(KindThrows), Rank(KindException))
}

func TestRankUnknownKindsRankLastAndTie(t *testing.T) {
	assert.Equal(t, len(tagOrder), Rank(KindOther))
	assert.Greater(t, Rank(KindOther), Rank(KindDeprecated))
}

func TestParseTagKind(t *testing.T) {
	tests := []struct {
		name string
		want TagKind
	}{
		{"@param", KindParam},
		{"param", KindParam},
		{"@throws", KindThrows},
		{"@exception", KindException},
		{"@return", KindReturn},
		{"@author", KindAuthor},
		{"@deprecated", KindDeprecated},
		{"@link", KindOther},
		{"@customTag", KindOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTagKind(tt.name), tt.name)
	}
}

func TestSameKind(t *testing.T) {
	assert.True(t, sameKind(KindParam, KindParam))
	assert.True(t, sameKind(KindThrows, KindException))
	assert.False(t, sameKind(KindException, KindThrows)) // synthesized tags are always @throws
	assert.False(t, sameKind(KindParam, KindReturn))
}

func TestInsertTagAt(t *testing.T) {
	d := &Doc{Tags: []*Tag{
		{Kind: KindParam},
		{Kind: KindReturn},
	}}

	mid := &Tag{Kind: KindParam}
	d.InsertTagAt(1, mid)
	assert.Len(t, d.Tags, 3)
	assert.Same(t, mid, d.Tags[1])

	front := &Tag{Kind: KindAuthor}
	d.InsertTagAt(0, front)
	assert.Same(t, front, d.Tags[0])

	back := &Tag{Kind: KindSee}
	d.InsertTagAt(len(d.Tags), back)
	assert.Same(t, back, d.Tags[len(d.Tags)-1])
}
