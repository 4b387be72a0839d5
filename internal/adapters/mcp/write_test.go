package mcp

import (
	"context"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"mnemo/internal/adapters/filesystem"
	"mnemo/internal/application"
)

func setupDeps(t *testing.T) (Deps, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mnemo-mcp-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	repo, err := filesystem.NewRepository(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("NewRepository failed: %v", err)
	}
	store := filesystem.NewCovisStore(repo.Root(), nil)

	d := Deps{
		Repo:   repo,
		Memory: application.NewMemory(repo, store, nil),
	}
	cleanup := func() {
		os.RemoveAll(tmpDir)
	}
	return d, cleanup
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func seedStoreFile(t *testing.T, d Deps, rel, content string) string {
	t.Helper()

	abs, err := d.Repo.Resolve(rel)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", rel, err)
	}
	if err := d.Repo.WriteFile(abs, content); err != nil {
		t.Fatalf("WriteFile(%q) failed: %v", rel, err)
	}
	return abs
}

func TestInsert_IntoEmptyFile(t *testing.T) {
	d, cleanup := setupDeps(t)
	defer cleanup()

	abs := seedStoreFile(t, d, "empty.txt", "")

	result, err := insertHandler(d)(context.Background(), toolRequest(map[string]any{
		"path":        "empty.txt",
		"insert_line": 0,
		"insert_text": "x",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got tool error: %v", result.Content)
	}

	content, err := d.Repo.ReadFile(abs)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "x\n" {
		t.Errorf("expected %q, got %q", "x\n", content)
	}
}

func TestInsert_RejectsLineOneInEmptyFile(t *testing.T) {
	d, cleanup := setupDeps(t)
	defer cleanup()

	seedStoreFile(t, d, "empty.txt", "")

	result, err := insertHandler(d)(context.Background(), toolRequest(map[string]any{
		"path":        "empty.txt",
		"insert_line": 1,
		"insert_text": "x",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for insert_line past an empty file")
	}
}

func TestInsert_AppendsAtLastLine(t *testing.T) {
	d, cleanup := setupDeps(t)
	defer cleanup()

	abs := seedStoreFile(t, d, "note.txt", "a\n")

	result, err := insertHandler(d)(context.Background(), toolRequest(map[string]any{
		"path":        "note.txt",
		"insert_line": 1,
		"insert_text": "b",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got tool error: %v", result.Content)
	}

	content, err := d.Repo.ReadFile(abs)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "a\nb\n" {
		t.Errorf("expected %q, got %q", "a\nb\n", content)
	}
}
