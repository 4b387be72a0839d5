package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestStore(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mnemo-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	repo, err := NewRepository(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("NewRepository failed: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}
	return repo, cleanup
}

func mustWrite(t *testing.T, repo *Repository, rel, content string) string {
	t.Helper()

	abs, err := repo.Resolve(rel)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", rel, err)
	}
	if err := repo.WriteFile(abs, content); err != nil {
		t.Fatalf("WriteFile(%q) failed: %v", rel, err)
	}
	return abs
}

func TestResolve_RejectsTraversal(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	for _, rel := range []string{"../outside.txt", "a/../../outside.txt", "../../etc/passwd"} {
		if _, err := repo.Resolve(rel); err == nil {
			t.Errorf("Resolve(%q): expected traversal error, got nil", rel)
		}
	}
}

func TestResolve_RejectsSymlinkEscape(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	outside, err := os.MkdirTemp("", "mnemo-outside-*")
	if err != nil {
		t.Fatalf("failed to create outside dir: %v", err)
	}
	defer os.RemoveAll(outside)
	if err := os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("s"), 0o644); err != nil {
		t.Fatalf("failed to seed outside file: %v", err)
	}

	if err := os.Symlink(outside, filepath.Join(repo.Root(), "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := repo.Resolve("link/secret.txt"); err == nil {
		t.Error("expected error resolving through a symlink that leaves the root")
	}
}

func TestNewRepository_FailsWhenRootIsFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mnemo-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	occupied := filepath.Join(tmpDir, "occupied")
	if err := os.WriteFile(occupied, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if _, err := NewRepository(occupied); err == nil {
		t.Error("expected error when the root path is an existing file")
	}
}

func TestResolve_EmptyPathIsRoot(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	abs, err := repo.Resolve("  ")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if abs != repo.Root() {
		t.Errorf("expected root %s, got %s", repo.Root(), abs)
	}
}

func TestRelativeID_ForwardSlashForm(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	abs := mustWrite(t, repo, "projects/go/notes.md", "x")
	if id := repo.RelativeID(abs); id != "projects/go/notes.md" {
		t.Errorf("expected projects/go/notes.md, got %s", id)
	}
}

func TestRelativeID_FallsBackToAbsoluteOutsideRoot(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	outside := filepath.Join(os.TempDir(), "mnemo-outside.txt")
	if id := repo.RelativeID(outside); id != filepath.ToSlash(outside) {
		t.Errorf("expected absolute fallback %s, got %s", filepath.ToSlash(outside), id)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	abs := mustWrite(t, repo, "deep/nested/dir/file.txt", "hello")

	content, err := repo.ReadFile(abs)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "hello" {
		t.Errorf("expected 'hello', got %q", content)
	}
}

func TestDelete_ProtectsRoot(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	if err := repo.Delete(repo.Root()); err == nil {
		t.Error("expected error deleting the root, got nil")
	}
}

func TestDelete_RemovesDirectoriesRecursively(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	mustWrite(t, repo, "dir/a.txt", "a")
	mustWrite(t, repo, "dir/sub/b.txt", "b")

	dir, _ := repo.Resolve("dir")
	if err := repo.Delete(dir); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if repo.Exists(dir) {
		t.Error("directory still exists after delete")
	}
}

func TestRename_RefusesOverwrite(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	src := mustWrite(t, repo, "a.txt", "a")
	dst := mustWrite(t, repo, "b.txt", "b")

	if err := repo.Rename(src, dst); err == nil {
		t.Error("expected error renaming over existing file, got nil")
	}
}

func TestRename_CreatesDestinationParents(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	src := mustWrite(t, repo, "a.txt", "a")
	dst, _ := repo.Resolve("moved/into/b.txt")

	if err := repo.Rename(src, dst); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if !repo.IsFile(dst) {
		t.Error("destination file missing after rename")
	}
	if repo.Exists(src) {
		t.Error("source still exists after rename")
	}
}

func TestClearAll_LeavesEmptyRoot(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	mustWrite(t, repo, "a.txt", "a")
	mustWrite(t, repo, "dir/b.txt", "b")

	if err := repo.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	entries, err := os.ReadDir(repo.Root())
	if err != nil {
		t.Fatalf("root missing after ClearAll: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty root, found %d entries", len(entries))
	}
}

func TestTree_SkipsInternalAndOrdersEntries(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	mustWrite(t, repo, "Zebra.txt", "z")
	mustWrite(t, repo, "alpha.txt", "a")
	mustWrite(t, repo, "_covis.json", "{}")
	mustWrite(t, repo, ".hidden", "h")
	mustWrite(t, repo, "notes/inner.md", "i")

	lines, err := repo.Tree(repo.Root())
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}

	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "_covis.json") || strings.Contains(joined, ".hidden") {
		t.Errorf("tree leaked internal files:\n%s", joined)
	}

	want := []string{"notes/", " inner.md", "alpha.txt", "Zebra.txt"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), joined)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestTree_NotADirectory(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	abs := mustWrite(t, repo, "file.txt", "x")
	if _, err := repo.Tree(abs); err == nil {
		t.Error("expected error for Tree on a file, got nil")
	}
}
