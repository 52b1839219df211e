// Package codebase keeps parsed expression files in memory and serves them
// to the watcher, the checker and the language server.
//
// An expression file holds one Java expression per non-blank line. Lines
// whose first non-space characters are "//" are comments.
package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/javaexpr/java/ast"
	"github.com/dhamidi/javaexpr/java/parser"
)

// Ext is the extension ScanAll looks for.
const Ext = ".jexpr"

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	opts    []parser.Option
	files   map[string]*Document
}

type Document struct {
	Path    string
	Content []byte
	Results []Result
}

// Result is the outcome of parsing one line of a document.
type Result struct {
	Line   int
	Source string
	Expr   ast.Expr
	Err    error
}

// New returns an empty codebase rooted at rootDir. opts are applied to every
// line parse, after the file and line options.
func New(rootDir string, opts ...parser.Option) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		opts:    opts,
		files:   make(map[string]*Document),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll parses every expression file below the root directory, skipping
// hidden directories.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			if _, err := c.ScanFile(path); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.UpdateFile(path, content), nil
}

// UpdateFile replaces the contents of path and reparses every line.
func (c *Codebase) UpdateFile(path string, content []byte) *Document {
	doc := c.parseDocument(path, content)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = doc
	return doc
}

func (c *Codebase) parseDocument(path string, content []byte) *Document {
	doc := &Document{Path: path, Content: content}
	for i, text := range strings.Split(string(content), "\n") {
		line := i + 1
		text = strings.TrimSuffix(text, "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		opts := append([]parser.Option{parser.WithFile(path), parser.WithStartLine(line)}, c.opts...)
		expr, err := parser.ParseExpression(strings.NewReader(text), opts...).Finish()
		doc.Results = append(doc.Results, Result{Line: line, Source: text, Expr: expr, Err: err})
	}
	return doc
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths lists the known documents in lexical order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// ResultAt returns the parse result for a 1-based line, if the line holds
// an expression.
func (c *Codebase) ResultAt(path string, line int) (Result, bool) {
	doc := c.GetFile(path)
	if doc == nil {
		return Result{}, false
	}
	return doc.ResultAt(line)
}

func (d *Document) ResultAt(line int) (Result, bool) {
	i := sort.Search(len(d.Results), func(i int) bool { return d.Results[i].Line >= line })
	if i < len(d.Results) && d.Results[i].Line == line {
		return d.Results[i], true
	}
	return Result{}, false
}

// Errors returns the results whose line failed to parse.
func (d *Document) Errors() []Result {
	var failed []Result
	for _, r := range d.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
