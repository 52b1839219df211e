package codebase

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/javaexpr/format"
	"github.com/dhamidi/javaexpr/java/parser"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "javaexpr"

type LSPServer struct {
	codebase *Codebase
	opts     []parser.Option
	handler  protocol.Handler
	server   *server.Server
	version  string
	log      commonlog.Logger
}

// NewLSPServer returns a server whose documents are parsed with opts.
func NewLSPServer(version string, opts ...parser.Option) *LSPServer {
	ls := &LSPServer{
		codebase: New(".", opts...),
		opts:     opts,
		version:  version,
		log:      commonlog.GetLogger("javaexpr.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.opts...)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		ls.log.Warningf("scan %s: %s", ls.codebase.RootDir(), err)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		return ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.RemoveFile(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		return ls.update(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc, err := ls.codebase.ScanFile(path)
	if err != nil {
		ls.log.Warningf("rescan %s: %s", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) error {
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}
	doc := ls.codebase.UpdateFile(path, content)
	ls.publish(ctx, uri, doc)
	return nil
}

func (ls *LSPServer) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	diagnostics := Diagnostics(doc)
	ls.log.Debugf("%s: %d diagnostics", doc.Path, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	result, ok := ls.codebase.ResultAt(path, int(params.Position.Line)+1)
	if !ok {
		return nil, nil
	}
	return hover(result), nil
}

// Diagnostics reports one error per line of doc that failed to parse. The
// result is never nil so that publishing it clears stale diagnostics.
func Diagnostics(doc *Document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, r := range doc.Errors() {
		diagnostics = append(diagnostics, diagnostic(r))
	}
	return diagnostics
}

func diagnostic(r Result) protocol.Diagnostic {
	line := protocol.UInteger(r.Line - 1)
	rng := protocol.Range{
		Start: protocol.Position{Line: line, Character: 0},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(len(r.Source))},
	}
	message := r.Err.Error()

	var perr *parser.Error
	if errors.As(r.Err, &perr) {
		message = perr.Message
		start := perr.Got.Span.Start.Column - 1
		end := perr.Got.Span.End.Column - 1
		if end <= start {
			end = start + 1
		}
		rng.Start.Character = protocol.UInteger(start)
		rng.End.Character = protocol.UInteger(min(end, max(len(r.Source), start)))
	}

	return protocol.Diagnostic{
		Range:    rng,
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(lsName),
		Message:  message,
	}
}

func hover(r Result) *protocol.Hover {
	var value string
	if r.Err != nil {
		value = "**error**: " + r.Err.Error()
	} else {
		value = "`" + format.Java(r.Expr) + "`\n\n```\n" + format.Tree(r.Expr) + "```"
	}
	line := protocol.UInteger(r.Line - 1)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: protocol.UInteger(len(r.Source))},
		},
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
