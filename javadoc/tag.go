package javadoc

import "strings"

// TagKind identifies a Javadoc block tag category.
type TagKind int

const (
	// KindOther covers tags outside the canonical order table (@link,
	// @inheritDoc, custom tags). They rank after every known kind and tie
	// with each other.
	KindOther TagKind = iota
	KindAuthor
	KindVersion
	KindParam
	KindReturn
	KindThrows
	// KindException is a synonym of KindThrows and always ranks equal to it.
	KindException
	KindSee
	KindSince
	KindSerial
	KindDeprecated
)

var kindNames = map[TagKind]string{
	KindAuthor:     "@author",
	KindVersion:    "@version",
	KindParam:      "@param",
	KindReturn:     "@return",
	KindThrows:     "@throws",
	KindException:  "@exception",
	KindSee:        "@see",
	KindSince:      "@since",
	KindSerial:     "@serial",
	KindDeprecated: "@deprecated",
}

func (k TagKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "@?"
}

// ParseTagKind maps a tag name as written in source (with or without the
// leading '@') to its kind. Unknown names map to KindOther.
func ParseTagKind(name string) TagKind {
	name = strings.TrimPrefix(name, "@")
	switch name {
	case "author":
		return KindAuthor
	case "version":
		return KindVersion
	case "param":
		return KindParam
	case "return":
		return KindReturn
	case "throws":
		return KindThrows
	case "exception":
		return KindException
	case "see":
		return KindSee
	case "since":
		return KindSince
	case "serial":
		return KindSerial
	case "deprecated":
		return KindDeprecated
	default:
		return KindOther
	}
}

// tagOrder is the canonical cross-kind tag ranking, per the Javadoc
// specification's recommended order of tags. Process-wide immutable.
var tagOrder = []TagKind{
	KindAuthor,
	KindVersion,
	KindParam,
	KindReturn,
	KindThrows, // synonym to KindException
	KindSee,
	KindSince,
	KindSerial,
	KindDeprecated,
}

// Rank returns the canonical position of a tag kind. KindException ranks
// equal to KindThrows. Kinds absent from the table return len(table) and tie
// with each other.
func Rank(kind TagKind) int {
	if kind == KindException {
		kind = KindThrows
	}
	for i, k := range tagOrder {
		if kind == k {
			return i
		}
	}
	return len(tagOrder)
}

// sameKind reports whether an existing tag's kind matches the kind being
// inserted, treating @exception as @throws.
func sameKind(inserted, existing TagKind) bool {
	if inserted == existing {
		return true
	}
	if existing == KindException {
		return inserted == KindThrows
	}
	return false
}

// FragmentKind distinguishes the two fragment atoms.
type FragmentKind int

const (
	// FragmentName is an identifier-like atom: a parameter name or a type
	// reference reduced to its simple identifier.
	FragmentName FragmentKind = iota
	// FragmentText is an opaque text atom.
	FragmentText
)

// Fragment is one atom of a tag's content.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// Name builds an identifier fragment.
func Name(s string) Fragment { return Fragment{Kind: FragmentName, Text: s} }

// Text builds an opaque text fragment.
func Text(s string) Fragment { return Fragment{Kind: FragmentText, Text: s} }

// Span is a half-open byte range into the source buffer. Synthesized tags
// carry the zero Span until the edit layer renders them.
type Span struct {
	Start int
	End   int
}

// Tag is a single Javadoc block tag.
type Tag struct {
	Kind      TagKind
	Fragments []Fragment

	// Span locates the tag in the original source, including its leading
	// "* " continuation. Zero for synthesized tags.
	Span Span
}

// Doc is a declaration's documentation block. The leading description is
// held apart from the block tags; Tags contains only real tags, in rendering
// order. That order is the subject of the insertion algorithm.
type Doc struct {
	Description string
	Tags        []*Tag

	// Span covers the whole /** ... */ comment in the source.
	Span Span
}

// InsertTagAt splices tag into the sequence at index i (0 <= i <= len).
func (d *Doc) InsertTagAt(i int, tag *Tag) {
	d.Tags = append(d.Tags, nil)
	copy(d.Tags[i+1:], d.Tags[i:])
	d.Tags[i] = tag
}
