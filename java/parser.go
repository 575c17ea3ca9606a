package java

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"
	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/javadoc"
	"github.com/javelin-dev/javelin/logger"
)

// CompilationUnit is one parsed Java source file: its import table and every
// documentable declaration, nested types flattened, in source order.
type CompilationUnit struct {
	Path    string
	Package string
	Decls   []*javadoc.Declaration

	resolver *resolver
}

// DeclAt returns the innermost declaration whose span covers the byte
// offset, or nil.
func (cu *CompilationUnit) DeclAt(offset int) *javadoc.Declaration {
	var best *javadoc.Declaration
	for _, d := range cu.Decls {
		if offset < d.Span.Start || offset >= d.Span.End {
			continue
		}
		if best == nil || d.Span.End-d.Span.Start < best.Span.End-best.Span.Start {
			best = d
		}
	}
	return best
}

// Parser turns Java source text into compilation units. Safe for reuse from a
// single goroutine; tree-sitter parser state is not goroutine safe.
type Parser struct {
	parser *sitter.Parser
	log    *zap.SugaredLogger
}

func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsjava.GetLanguage())
	return &Parser{
		parser: p,
		log:    logger.Named("java"),
	}
}

// Parse parses src into a compilation unit. path is used for logging only.
func (p *Parser) Parse(ctx context.Context, src []byte, path string) (*CompilationUnit, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrParse, "parsing %s: %v", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	cu := &CompilationUnit{Path: path}

	imports := make(map[string]string)
	wildcard := false
	var declaredTypes []string

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			if name := firstNamedOfType(child, "scoped_identifier", "identifier"); name != nil {
				cu.Package = name.Content(src)
			}
		case "import_declaration":
			collectImport(child, src, imports, &wildcard)
		}
	}

	// Two passes: declared type names participate in resolution, and a
	// nested type may be referenced before its declaration.
	walkTypes(root, src, func(typeNode *sitter.Node) {
		if name := typeNode.ChildByFieldName("name"); name != nil {
			declaredTypes = append(declaredTypes, name.Content(src))
		}
	})

	cu.resolver = newResolver(imports, wildcard, declaredTypes)

	walkTypes(root, src, func(typeNode *sitter.Node) {
		p.extractType(cu, typeNode, src)
	})

	p.log.Debugw("parsed compilation unit",
		logger.FieldFile, path,
		"declarations", len(cu.Decls))
	return cu, nil
}

// walkTypes visits every type declaration under node, including nested ones.
func walkTypes(node *sitter.Node, src []byte, visit func(*sitter.Node)) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration",
			"record_declaration", "annotation_type_declaration":
			visit(child)
			if body := child.ChildByFieldName("body"); body != nil {
				walkTypes(body, src, visit)
			}
		case "class_body", "interface_body", "enum_body", "enum_body_declarations":
			walkTypes(child, src, visit)
		}
	}
}

func (p *Parser) extractType(cu *CompilationUnit, node *sitter.Node, src []byte) {
	decl := &javadoc.Declaration{
		Kind: javadoc.DeclType,
		Span: spanOf(node),
		Doc:  docFor(node, src),
	}
	if name := node.ChildByFieldName("name"); name != nil {
		decl.Name = name.Content(src)
	}
	decl.TypeParams = typeParams(node.ChildByFieldName("type_parameters"), src)
	cu.Decls = append(cu.Decls, decl)

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "method_declaration":
			cu.Decls = append(cu.Decls, p.extractMethod(cu, member, src, false))
		case "constructor_declaration":
			cu.Decls = append(cu.Decls, p.extractMethod(cu, member, src, true))
		case "field_declaration", "constant_declaration":
			if d := extractField(member, src); d != nil {
				cu.Decls = append(cu.Decls, d)
			}
		case "enum_constant":
			cu.Decls = append(cu.Decls, &javadoc.Declaration{
				Kind: javadoc.DeclEnumConstant,
				Name: fieldContent(member, "name", src),
				Span: spanOf(member),
				Doc:  docFor(member, src),
			})
		case "enum_body_declarations":
			// enum bodies nest methods and fields one level deeper
			for j := 0; j < int(member.NamedChildCount()); j++ {
				inner := member.NamedChild(j)
				switch inner.Type() {
				case "method_declaration":
					cu.Decls = append(cu.Decls, p.extractMethod(cu, inner, src, false))
				case "constructor_declaration":
					cu.Decls = append(cu.Decls, p.extractMethod(cu, inner, src, true))
				case "field_declaration":
					if d := extractField(inner, src); d != nil {
						cu.Decls = append(cu.Decls, d)
					}
				}
			}
		}
	}
}

func (p *Parser) extractMethod(cu *CompilationUnit, node *sitter.Node, src []byte, constructor bool) *javadoc.Declaration {
	decl := &javadoc.Declaration{
		Kind:        javadoc.DeclMethod,
		Name:        fieldContent(node, "name", src),
		Constructor: constructor,
		Span:        spanOf(node),
		Doc:         docFor(node, src),
	}

	decl.TypeParams = typeParams(node.ChildByFieldName("type_parameters"), src)

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			pn := params.NamedChild(i)
			switch pn.Type() {
			case "formal_parameter":
				decl.Params = append(decl.Params, javadoc.Parameter{
					Name: fieldContent(pn, "name", src),
					Type: fieldContent(pn, "type", src),
				})
			case "spread_parameter":
				// varargs: the name sits inside a variable_declarator child
				param := javadoc.Parameter{}
				for j := 0; j < int(pn.NamedChildCount()); j++ {
					c := pn.NamedChild(j)
					switch {
					case c.Type() == "variable_declarator":
						param.Name = fieldContent(c, "name", src)
					case c.Type() != "modifiers" && param.Type == "":
						param.Type = c.Content(src) + "..."
					}
				}
				decl.Params = append(decl.Params, param)
			}
		}
	}

	if !constructor {
		if ret := node.ChildByFieldName("type"); ret != nil {
			text := ret.Content(src)
			decl.Returns = &javadoc.ReturnSlot{
				Type: text,
				Void: ret.Type() == "void_type" || text == "void",
			}
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "throws" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			tn := child.NamedChild(j)
			written := tn.Content(src)
			simple := simpleTypeName(written)
			decl.Throws = append(decl.Throws, javadoc.ThrownException{
				Name:      simple,
				Qualified: written,
				Resolved:  cu.resolver.resolves(written),
			})
		}
	}

	return decl
}

// extractField returns the declaration for the first declarator of a field.
// Multi-declarator fields share one documentation comment; the first name
// stands for the group.
func extractField(node *sitter.Node, src []byte) *javadoc.Declaration {
	declarator := firstNamedOfType(node, "variable_declarator")
	if declarator == nil {
		return nil
	}
	return &javadoc.Declaration{
		Kind: javadoc.DeclField,
		Name: fieldContent(declarator, "name", src),
		Span: spanOf(node),
		Doc:  docFor(node, src),
	}
}

// docFor associates a declaration with the Javadoc comment immediately
// preceding it, if any. Line comments and plain block comments do not count.
func docFor(node *sitter.Node, src []byte) *javadoc.Doc {
	prev := node.PrevNamedSibling()
	if prev == nil {
		return nil
	}
	if prev.Type() != "block_comment" && prev.Type() != "comment" {
		return nil
	}
	span := spanOf(prev)
	if !strings.HasPrefix(string(src[span.Start:span.End]), "/**") {
		return nil
	}
	return ParseComment(src, span)
}

func typeParams(node *sitter.Node, src []byte) []javadoc.TypeParameter {
	if node == nil {
		return nil
	}
	var out []javadoc.TypeParameter
	for i := 0; i < int(node.NamedChildCount()); i++ {
		tp := node.NamedChild(i)
		if tp.Type() != "type_parameter" {
			continue
		}
		// the bare identifier before any bound
		for j := 0; j < int(tp.NamedChildCount()); j++ {
			c := tp.NamedChild(j)
			if c.Type() == "type_identifier" || c.Type() == "identifier" {
				out = append(out, javadoc.TypeParameter{Name: c.Content(src)})
				break
			}
		}
	}
	return out
}

func collectImport(node *sitter.Node, src []byte, imports map[string]string, wildcard *bool) {
	path := firstNamedOfType(node, "scoped_identifier", "identifier")
	if path == nil {
		return
	}
	qualified := path.Content(src)
	if firstNamedOfType(node, "asterisk") != nil || strings.Contains(node.Content(src), ".*") {
		*wildcard = true
		return
	}
	imports[simpleTypeName(qualified)] = qualified
}

func spanOf(n *sitter.Node) javadoc.Span {
	return javadoc.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func fieldContent(n *sitter.Node, field string, src []byte) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}
	return c.Content(src)
}

func firstNamedOfType(n *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		for _, t := range types {
			if c.Type() == t {
				return c
			}
		}
	}
	return nil
}

// simpleTypeName reduces a possibly qualified, possibly generic type text to
// its simple identifier: "java.io.IOException" and "IOException" both yield
// "IOException"; "Box<T>" yields "Box".
func simpleTypeName(text string) string {
	if i := strings.IndexByte(text, '<'); i >= 0 {
		text = text[:i]
	}
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		text = text[i+1:]
	}
	return text
}
