// Package langserver exposes tag completion over the language server
// protocol: code actions that add missing Javadoc tags or whole comment
// stubs, over stdio or WebSocket.
package langserver

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/config"
	"github.com/javelin-dev/javelin/edit"
	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/java"
	"github.com/javelin-dev/javelin/javadoc"
	"github.com/javelin-dev/javelin/logger"
	"github.com/javelin-dev/javelin/version"
)

// documentEntry is one cached document in the LRU cache.
type documentEntry struct {
	uri     string
	content string
}

// Handler implements the LSP handlers. Documents are cached full-text with
// LRU eviction bounded by the configured cache size.
type Handler struct {
	policy       javadoc.Policy
	stub         edit.Stub
	maxDocuments int

	log       *zap.SugaredLogger
	documents map[string]*list.Element
	lruList   *list.List
	mu        sync.RWMutex

	// tree-sitter parser state is not goroutine safe
	parserMu sync.Mutex
	parser   *java.Parser
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		policy:       cfg.Policy(),
		stub:         edit.Stub{Author: cfg.Stub.Author, Since: cfg.Stub.Since},
		maxDocuments: cfg.Server.MaxDocuments,
		log:          logger.Named("langserver"),
		documents:    make(map[string]*list.Element),
		lruList:      list.New(),
		parser:       java.NewParser(),
	}
}

// Initialize handles the LSP initialize request.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Infow("LSP client initializing", "client", params.ClientInfo)

	capabilities := protocol.ServerCapabilities{
		CodeActionProvider: true,
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    textDocSyncPtr(protocol.TextDocumentSyncKindFull),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: stringPtr(version.Get().Version),
		},
	}, nil
}

// Initialized is called after the client receives the InitializeResult.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Infow("LSP client initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.log.Infow("LSP client shutting down")
	return nil
}

// TextDocumentDidOpen caches the opened document, evicting the least
// recently used entry when the cache is full.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)

	if elem, exists := h.documents[uri]; exists {
		h.lruList.MoveToFront(elem)
		elem.Value.(*documentEntry).content = params.TextDocument.Text
		h.log.Debugw("document reopened", logger.FieldURI, uri)
		return nil
	}

	if len(h.documents) >= h.maxDocuments {
		oldest := h.lruList.Back()
		if oldest != nil {
			evicted := oldest.Value.(*documentEntry)
			h.lruList.Remove(oldest)
			delete(h.documents, evicted.uri)
			h.log.Infow("document cache full, evicted oldest",
				"evicted_uri", evicted.uri,
				logger.FieldURI, uri,
				"cache_size", len(h.documents))
		}
	}

	elem := h.lruList.PushFront(&documentEntry{uri: uri, content: params.TextDocument.Text})
	h.documents[uri] = elem

	h.log.Debugw("document opened", logger.FieldURI, uri, "length", len(params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange applies full-document sync changes.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
		if !ok {
			continue
		}
		if elem, exists := h.documents[uri]; exists {
			h.lruList.MoveToFront(elem)
			elem.Value.(*documentEntry).content = whole.Text
		} else {
			h.documents[uri] = h.lruList.PushFront(&documentEntry{uri: uri, content: whole.Text})
		}
	}

	h.log.Debugw("document changed", logger.FieldURI, uri, "changes", len(params.ContentChanges))
	return nil
}

// TextDocumentDidClose drops the document from the cache.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	if elem, exists := h.documents[uri]; exists {
		h.lruList.Remove(elem)
		delete(h.documents, uri)
	}

	h.log.Debugw("document closed", logger.FieldURI, uri)
	return nil
}

func (h *Handler) lookup(uri string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	elem, exists := h.documents[uri]
	if !exists {
		return "", false
	}
	return elem.Value.(*documentEntry).content, true
}

func (h *Handler) parse(content, uri string) (*java.CompilationUnit, error) {
	h.parserMu.Lock()
	defer h.parserMu.Unlock()
	return h.parser.Parse(context.Background(), []byte(content), uri)
}

// TextDocumentCodeAction offers the quick fixes for the declaration under
// the cursor: one action per missing tag, an add-all action when anything in
// the file is missing, and a comment stub for an undocumented declaration.
func (h *Handler) TextDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	content, ok := h.lookup(uri)
	if !ok {
		h.log.Warnw("code action for unknown document", logger.FieldURI, uri)
		return nil, nil
	}

	cu, err := h.parse(content, uri)
	if err != nil {
		return nil, err
	}

	offset := positionToOffset(content, params.Range.Start)
	decl := cu.DeclAt(offset)

	var actions []protocol.CodeAction

	if decl != nil && decl.Doc == nil {
		if action, err := h.stubAction(content, uri, decl); err == nil {
			actions = append(actions, action)
		} else {
			h.log.Warnw("comment stub failed", logger.FieldURI, uri, "error", err)
		}
	}

	if decl != nil && decl.Doc != nil {
		for _, m := range javadoc.MissingTags(decl, h.policy) {
			action, err := h.singleTagAction(content, uri, decl.Span.Start, m)
			if err != nil {
				h.log.Warnw("tag action failed",
					logger.FieldURI, uri,
					logger.FieldMissing, m.Name,
					"error", err)
				continue
			}
			actions = append(actions, action)
		}
	}

	if action, ok := h.fixAllAction(content, uri); ok {
		actions = append(actions, action)
	}

	h.log.Debugw("code actions computed", logger.FieldURI, uri, "count", len(actions))
	return actions, nil
}

// singleTagAction re-parses the document so the insertion mutates a private
// declaration copy, then renders the workspace edit.
func (h *Handler) singleTagAction(content, uri string, declStart int, m javadoc.Missing) (protocol.CodeAction, error) {
	cu, err := h.parse(content, uri)
	if err != nil {
		return protocol.CodeAction{}, err
	}
	decl := cu.DeclAt(declStart)
	if decl == nil || decl.Doc == nil {
		return protocol.CodeAction{}, errors.NewNotFoundError("no documented declaration at offset %d", declStart)
	}

	ins, err := javadoc.InsertSingle(decl, m)
	if err != nil {
		return protocol.CodeAction{}, err
	}
	edits, err := edit.InsertTagEdits([]byte(content), decl, []javadoc.Insertion{ins})
	if err != nil {
		return protocol.CodeAction{}, err
	}

	title := fmt.Sprintf("Add %s tag for '%s'", m.Category.TagKind(), m.Name)
	if m.Category == javadoc.CategoryReturn {
		title = "Add @return tag"
	}
	return h.quickFix(title, uri, content, edits), nil
}

func (h *Handler) stubAction(content, uri string, decl *javadoc.Declaration) (protocol.CodeAction, error) {
	e, err := edit.CommentStub([]byte(content), decl, h.policy, h.stub)
	if err != nil {
		return protocol.CodeAction{}, err
	}
	title := fmt.Sprintf("Add Javadoc comment for '%s'", decl.Name)
	return h.quickFix(title, uri, content, []edit.TextEdit{e}), nil
}

// fixAllAction covers every documented declaration in the file.
func (h *Handler) fixAllAction(content, uri string) (protocol.CodeAction, bool) {
	cu, err := h.parse(content, uri)
	if err != nil {
		return protocol.CodeAction{}, false
	}

	var edits []edit.TextEdit
	for _, decl := range cu.Decls {
		declEdits, err := edit.DeclarationEdits([]byte(content), decl, h.policy, h.stub, false)
		if err != nil {
			h.log.Warnw("fix-all skipped declaration",
				logger.FieldURI, uri,
				logger.FieldDeclaration, decl.Name,
				"error", err)
			continue
		}
		edits = append(edits, declEdits...)
	}
	if len(edits) == 0 {
		return protocol.CodeAction{}, false
	}
	return h.quickFix("Add all missing Javadoc tags", uri, content, edits), true
}

func (h *Handler) quickFix(title, uri, content string, edits []edit.TextEdit) protocol.CodeAction {
	lspEdits := make([]protocol.TextEdit, 0, len(edits))
	for _, e := range edits {
		lspEdits = append(lspEdits, protocol.TextEdit{
			Range: protocol.Range{
				Start: offsetToPosition(content, e.Offset),
				End:   offsetToPosition(content, e.Offset+e.Length),
			},
			NewText: e.Text,
		})
	}

	kind := protocol.CodeActionKindQuickFix
	return protocol.CodeAction{
		Title: title,
		Kind:  &kind,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				protocol.DocumentUri(uri): lspEdits,
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func textDocSyncPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
