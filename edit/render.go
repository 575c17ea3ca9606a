package edit

import (
	"bytes"
	"strings"

	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/javadoc"
)

// RenderTag renders a tag to its bare textual form, no comment scaffolding:
// "@param amount the amount, in cents".
func RenderTag(t *javadoc.Tag) string {
	parts := []string{t.Kind.String()}

	frags := t.Fragments
	// three-atom bracket encoding fuses without spaces
	if len(frags) >= 3 &&
		frags[0] == javadoc.Text("<") &&
		frags[1].Kind == javadoc.FragmentName &&
		frags[2] == javadoc.Text(">") {
		parts = append(parts, "<"+frags[1].Text+">")
		frags = frags[3:]
	}
	for _, f := range frags {
		if f.Text == "" {
			continue
		}
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// InsertTagEdits builds the edits that realize the given insertions inside
// the declaration's existing documentation block. The insertions must
// already be applied to decl.Doc (InsertMissing does both).
//
// Regular multi-line comments are spliced: each synthesized tag becomes one
// inserted line, anchored at the following original tag's first line, or
// after the preceding original tag's last line, or at the closing-delimiter
// line. Single-line comments, and comments holding a tag without a
// line-aligned span, are regenerated wholesale.
func InsertTagEdits(src []byte, decl *javadoc.Declaration, insertions []javadoc.Insertion) ([]TextEdit, error) {
	doc := decl.Doc
	if doc == nil {
		return nil, errors.AssertionFailedf("tag edits requested for declaration %q without documentation", decl.Name)
	}
	if len(insertions) == 0 {
		return nil, nil
	}

	synthesized := make(map[*javadoc.Tag]bool, len(insertions))
	for _, ins := range insertions {
		synthesized[ins.Tag] = true
	}

	if irregularComment(src, doc, synthesized) {
		return []TextEdit{regenerate(src, doc)}, nil
	}

	delim := lineDelimiter(src)
	continuation := commentIndent(src, doc.Span.Start) + " * "

	// anchor offset, in tag-sequence order, for each synthesized tag
	type pending struct {
		offset int
		text   string
	}
	var inserts []pending
	for i, t := range doc.Tags {
		if !synthesized[t] {
			continue
		}
		offset := -1
		for j := i + 1; j < len(doc.Tags); j++ {
			if !synthesized[doc.Tags[j]] {
				offset = doc.Tags[j].Span.Start
				break
			}
		}
		if offset < 0 {
			for j := i - 1; j >= 0; j-- {
				if !synthesized[doc.Tags[j]] {
					offset = doc.Tags[j].Span.End
					break
				}
			}
		}
		if offset < 0 {
			offset = closingLineStart(src, doc.Span)
		}
		inserts = append(inserts, pending{
			offset: offset,
			text:   continuation + RenderTag(t) + delim,
		})
	}

	// merge same-offset runs, preserving sequence order
	var edits []TextEdit
	for _, p := range inserts {
		if n := len(edits); n > 0 && edits[n-1].Offset == p.offset {
			edits[n-1].Text += p.text
			continue
		}
		edits = append(edits, TextEdit{Offset: p.offset, Text: p.text})
	}
	return edits, nil
}

// irregularComment reports whether the block cannot be spliced line-wise:
// it occupies a single physical line, or an original tag carries no span.
func irregularComment(src []byte, doc *javadoc.Doc, synthesized map[*javadoc.Tag]bool) bool {
	if !bytes.ContainsRune(src[doc.Span.Start:doc.Span.End], '\n') {
		return true
	}
	for _, t := range doc.Tags {
		if !synthesized[t] && t.Span == (javadoc.Span{}) {
			return true
		}
	}
	return false
}

// regenerate replaces the whole comment with a freshly rendered multi-line
// block carrying the final tag sequence.
func regenerate(src []byte, doc *javadoc.Doc) TextEdit {
	indent := commentIndent(src, doc.Span.Start)
	text := RenderComment(doc.Description, doc.Tags, indent, lineDelimiter(src))
	return TextEdit{
		Offset: doc.Span.Start,
		Length: doc.Span.End - doc.Span.Start,
		Text:   text,
	}
}

// RenderComment renders a complete /** ... */ block. The first line carries
// no indent (the caller positions it); continuation lines carry indent.
// An empty description still renders one editable blank line.
func RenderComment(description string, tags []*javadoc.Tag, indent, delim string) string {
	var b strings.Builder
	b.WriteString("/**")
	b.WriteString(delim)

	if description == "" {
		b.WriteString(indent + " *" + delim)
	} else {
		for _, line := range strings.Split(description, "\n") {
			b.WriteString(indent + " * " + line + delim)
		}
	}
	if len(tags) > 0 {
		if description != "" {
			b.WriteString(indent + " *" + delim)
		}
		for _, t := range tags {
			b.WriteString(indent + " * " + RenderTag(t) + delim)
		}
	}
	b.WriteString(indent + " */")
	return b.String()
}

// lineDelimiter picks the buffer's dominant delimiter.
func lineDelimiter(src []byte) string {
	if bytes.Contains(src, []byte("\r\n")) {
		return "\r\n"
	}
	return "\n"
}

// commentIndent returns the leading whitespace of the line containing offset.
func commentIndent(src []byte, offset int) string {
	start := lineStart(src, offset)
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

// lineStart returns the offset of the first byte of the line containing
// offset.
func lineStart(src []byte, offset int) int {
	if i := bytes.LastIndexByte(src[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// closingLineStart returns the start of the line holding the comment's
// closing delimiter.
func closingLineStart(src []byte, span javadoc.Span) int {
	return lineStart(src, span.End-1)
}
