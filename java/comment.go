package java

import (
	"strings"
	"unicode"

	"github.com/javelin-dev/javelin/javadoc"
)

// ParseComment parses the /** ... */ comment at span into a documentation
// block. Returns nil if the range is not a Javadoc comment.
//
// Each block tag records a line-aligned span: from the start of the line its
// "@" appears on through the start of the line following its last content
// line. The edit layer splices whole lines at these boundaries. Tags of a
// single-line comment carry the zero span; that form is regenerated wholesale
// on edit.
func ParseComment(src []byte, span javadoc.Span) *javadoc.Doc {
	if span.End > len(src) || span.End-span.Start < 5 {
		return nil
	}
	raw := string(src[span.Start:span.End])
	if !strings.HasPrefix(raw, "/**") || !strings.HasSuffix(raw, "*/") {
		return nil
	}

	doc := &javadoc.Doc{Span: span}

	if !strings.Contains(raw, "\n") {
		parseSingleLine(doc, raw)
		return doc
	}

	lines := splitLines(raw, span.Start)

	type tagBlock struct {
		name      string
		content   []string
		startLine int // index into lines
		endLine   int // exclusive
	}

	var descLines []string
	var blocks []tagBlock

	for i, ln := range lines {
		content := stripCommentLine(ln.text, i == 0, i == len(lines)-1)
		if name, rest, ok := leadingTag(content); ok {
			blocks = append(blocks, tagBlock{
				name:      name,
				content:   []string{rest},
				startLine: i,
				endLine:   i + 1,
			})
			continue
		}
		if len(blocks) == 0 {
			if content != "" {
				descLines = append(descLines, content)
			}
			continue
		}
		// continuation of the previous tag; the closing-delimiter line never
		// extends a tag
		last := &blocks[len(blocks)-1]
		if i == len(lines)-1 {
			if content != "" {
				last.content = append(last.content, content)
				last.endLine = i + 1
			}
			continue
		}
		last.content = append(last.content, content)
		last.endLine = i + 1
	}

	doc.Description = strings.TrimSpace(strings.Join(descLines, "\n"))

	for _, b := range blocks {
		tag := &javadoc.Tag{Kind: javadoc.ParseTagKind(b.name)}
		// A tag sharing a line with the closing delimiter gets no line-aligned
		// span; the edit layer regenerates such comments wholesale.
		if b.endLine < len(lines) {
			tag.Span = javadoc.Span{
				Start: lines[b.startLine].offset,
				End:   lineEnd(lines, b.endLine, span.End),
			}
		}
		tag.Fragments = tagFragments(tag.Kind, b.content)
		doc.Tags = append(doc.Tags, tag)
	}
	return doc
}

type commentLine struct {
	text   string
	offset int // absolute byte offset of line start in src
}

func splitLines(raw string, base int) []commentLine {
	var out []commentLine
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == '\n' {
			out = append(out, commentLine{text: raw[start:i], offset: base + start})
			start = i + 1
		}
	}
	return out
}

// lineEnd returns the absolute offset of the start of line index, or the
// comment end when index is past the last line.
func lineEnd(lines []commentLine, index, spanEnd int) int {
	if index < len(lines) {
		return lines[index].offset
	}
	return spanEnd
}

// stripCommentLine removes the comment scaffolding from one physical line:
// the opening "/**", the leading "* " continuation, and the trailing "*/".
func stripCommentLine(line string, first, last bool) string {
	s := strings.TrimRight(line, "\r")
	if first {
		s = strings.TrimPrefix(strings.TrimLeft(s, " \t"), "/**")
	}
	if last {
		if i := strings.LastIndex(s, "*/"); i >= 0 {
			s = s[:i]
		}
	}
	if !first {
		s = strings.TrimLeft(s, " \t")
		if strings.HasPrefix(s, "*") && !strings.HasPrefix(s, "*/") {
			s = strings.TrimPrefix(s[1:], " ")
		}
	}
	return strings.TrimSpace(s)
}

// leadingTag reports whether content begins a block tag, and splits off the
// tag name. An "@" elsewhere in the line is inline ({@link}) and ignored.
func leadingTag(content string) (name, rest string, ok bool) {
	if !strings.HasPrefix(content, "@") || len(content) < 2 {
		return "", "", false
	}
	r := rune(content[1])
	if !unicode.IsLetter(r) {
		return "", "", false
	}
	end := len(content)
	for i := 1; i < len(content); i++ {
		if content[i] == ' ' || content[i] == '\t' {
			end = i
			break
		}
	}
	return content[1:end], strings.TrimSpace(content[end:]), true
}

// tagFragments atomizes a tag's content lines. Only the leading argument is
// structured; everything after it is opaque text.
func tagFragments(kind javadoc.TagKind, content []string) []javadoc.Fragment {
	joined := strings.TrimSpace(strings.Join(content, "\n"))
	if joined == "" {
		return nil
	}

	if kind != javadoc.KindParam && kind != javadoc.KindThrows && kind != javadoc.KindException {
		return []javadoc.Fragment{javadoc.Text(joined)}
	}

	token := joined
	rest := ""
	if i := strings.IndexAny(joined, " \t\n"); i >= 0 {
		token = joined[:i]
		rest = strings.TrimSpace(joined[i:])
	}

	var frags []javadoc.Fragment
	switch {
	case isBracketedName(token):
		// "@param <T>" as written by javadoc itself: three atoms
		frags = append(frags,
			javadoc.Text("<"),
			javadoc.Name(token[1:len(token)-1]),
			javadoc.Text(">"))
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") && len(token) > 2:
		frags = append(frags, javadoc.Text(token))
	case isTypeReference(token):
		frags = append(frags, javadoc.Name(simpleTypeName(token)))
	default:
		frags = append(frags, javadoc.Text(token))
	}
	if rest != "" {
		frags = append(frags, javadoc.Text(rest))
	}
	return frags
}

// isBracketedName matches "<Ident>" exactly, a simple identifier in angle
// brackets with no bounds or nesting.
func isBracketedName(s string) bool {
	if len(s) < 3 || s[0] != '<' || s[len(s)-1] != '>' {
		return false
	}
	return isIdentifier(s[1 : len(s)-1])
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// isTypeReference accepts identifiers and dotted identifier chains.
func isTypeReference(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

// parseSingleLine handles the "/** one physical line */" form. Tags parse
// normally but carry no spans; edits replace the comment as a whole.
func parseSingleLine(doc *javadoc.Doc, raw string) {
	content := strings.TrimSuffix(strings.TrimPrefix(raw, "/**"), "*/")
	content = strings.TrimSpace(content)

	// split at block-tag boundaries: an "@" word preceded by whitespace
	segments := splitTopLevelTags(content)
	for i, seg := range segments {
		if name, rest, ok := leadingTag(seg); ok {
			tag := &javadoc.Tag{Kind: javadoc.ParseTagKind(name)}
			tag.Fragments = tagFragments(tag.Kind, []string{rest})
			doc.Tags = append(doc.Tags, tag)
		} else if i == 0 {
			doc.Description = seg
		}
	}
}

func splitTopLevelTags(content string) []string {
	var segs []string
	start := 0
	depth := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '@':
			if depth > 0 || i == 0 {
				continue
			}
			prev := content[i-1]
			if (prev == ' ' || prev == '\t') && i+1 < len(content) && unicode.IsLetter(rune(content[i+1])) {
				if seg := strings.TrimSpace(content[start:i]); seg != "" || len(segs) == 0 {
					segs = append(segs, seg)
				}
				start = i
			}
		}
	}
	if seg := strings.TrimSpace(content[start:]); seg != "" {
		segs = append(segs, seg)
	}
	if len(segs) == 0 {
		segs = []string{""}
	}
	return segs
}
