package codebase

import (
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params any
}

func testContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method, params})
		},
	}
}

func TestDiagnostics(t *testing.T) {
	c := New(".")
	doc := c.UpdateFile("d.jexpr", []byte("a.b\nx.if\nfoo(\n"))

	diagnostics := Diagnostics(doc)
	if len(diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diagnostics))
	}

	d := diagnostics[0]
	if d.Message != "unexpected keyword 'if' after '.'" {
		t.Errorf("message: got %q", d.Message)
	}
	if d.Range.Start.Line != 1 || d.Range.Start.Character != 2 || d.Range.End.Character != 4 {
		t.Errorf("range: got %+v", d.Range)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity: got %v", d.Severity)
	}

	eof := diagnostics[1]
	if eof.Range.Start.Line != 2 || eof.Range.Start.Character != 4 || eof.Range.End.Character != 4 {
		t.Errorf("end of input range: got %+v", eof.Range)
	}
}

func TestDiagnosticsEmptyIsNotNil(t *testing.T) {
	doc := New(".").UpdateFile("ok.jexpr", []byte("a.b\n"))
	if d := Diagnostics(doc); d == nil || len(d) != 0 {
		t.Errorf("expected empty non-nil diagnostics, got %#v", d)
	}
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	ls := NewLSPServer("test")
	var sent []notification
	ctx := testContext(&sent)

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/open.jexpr",
			Text: "a.\n",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 1 || sent[0].method != protocol.ServerTextDocumentPublishDiagnostics {
		t.Fatalf("expected one publishDiagnostics notification, got %+v", sent)
	}
	params := sent[0].params.(protocol.PublishDiagnosticsParams)
	if params.URI != "file:///tmp/open.jexpr" || len(params.Diagnostics) != 1 {
		t.Errorf("got %+v", params)
	}
	if ls.codebase.GetFile("/tmp/open.jexpr") == nil {
		t.Errorf("document not stored under its path")
	}
}

func TestHover(t *testing.T) {
	ls := NewLSPServer("test")
	var sent []notification
	ctx := testContext(&sent)
	ls.codebase.UpdateFile("/tmp/h.jexpr", []byte("// c\nTest.class\n"))

	hover, err := ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/h.jexpr"},
			Position:     protocol.Position{Line: 1, Character: 3},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if hover == nil {
		t.Fatal("expected hover on line 2")
	}
	content := hover.Contents.(protocol.MarkupContent)
	if !strings.Contains(content.Value, "ClassLiteral") || !strings.Contains(content.Value, "`Test.class`") {
		t.Errorf("hover: got %q", content.Value)
	}

	hover, err = ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/h.jexpr"},
			Position:     protocol.Position{Line: 0},
		},
	})
	if err != nil || hover != nil {
		t.Errorf("expected no hover on a comment line, got %+v, %v", hover, err)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"file:///home/u/a.jexpr", "/home/u/a.jexpr"},
		{"file:///home/u/with%20space.jexpr", "/home/u/with space.jexpr"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.expected {
			t.Errorf("uriToPath(%q) = %q, expected %q", tt.uri, got, tt.expected)
		}
	}
}
