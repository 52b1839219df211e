package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "java from args",
			args:     []string{"parse", "-f", "java", "a .", "b ( )"},
			expected: "a.b()\n",
		},
		{
			name:     "tree from stdin",
			stdin:    "this.x\n",
			args:     []string{"parse"},
			expected: "FieldAccess x\n  owner: This\n",
		},
		{
			name:     "tree with positions",
			args:     []string{"parse", "--positions", "x"},
			expected: "Name x [<arg>:1:1-<arg>:1:2]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.expected {
				t.Errorf("got %q, expected %q", out, tt.expected)
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	out, err := run(t, "", "parse", "-f", "json", "Test.class")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"kind": "ClassLiteral"`) {
		t.Errorf("got %s", out)
	}
}

func TestParseCommandErrors(t *testing.T) {
	if _, err := run(t, "", "parse", "a.if"); err == nil || err.Error() != "<arg>:1:3: unexpected keyword 'if' after '.'" {
		t.Errorf("got %v", err)
	}
	if _, err := run(t, "", "parse", "-f", "xml", "a"); err == nil {
		t.Errorf("expected error for unknown format")
	}
	if _, err := run(t, "", "--source", "6", "parse", "new A<>()"); err == nil {
		t.Errorf("expected diamond to fail at source level 6")
	}
	if _, err := run(t, "", "--source", "abc", "parse", "a"); err == nil || !strings.Contains(err.Error(), "invalid source level") {
		t.Errorf("got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.jexpr")
	bad := filepath.Join(dir, "bad.jexpr")
	if err := os.WriteFile(good, []byte("a.b\n// comment\nTest.class\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("ok()\nfoo().this\n\na.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "check", good)
	if err != nil || out != "" {
		t.Errorf("good file: got %q, %v", out, err)
	}

	out, err = run(t, "", "check", good, bad)
	if err == nil || err.Error() != "2 of 5 expressions failed to parse" {
		t.Errorf("got error %v", err)
	}
	expected := bad + ":2:7: '.this' must follow a type name\n" +
		bad + ":4:3: expected identifier, got end of input\n"
	if out != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", out, expected)
	}

	if _, err := run(t, "", "check", filepath.Join(dir, "missing.jexpr")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestGrammarCommand(t *testing.T) {
	out, err := run(t, "", "grammar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Expression") {
		t.Errorf("got %q", out[:min(len(out), 40)])
	}

	path := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(path, []byte(`A = B .`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "grammar", "check", "--start", "A", path); err == nil {
		t.Errorf("expected undefined production error")
	}
	if _, err := run(t, "", "grammar", "check", path); err != nil {
		t.Errorf("syntax-only check: %v", err)
	}
}
