package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mnemo/internal/domain"
)

// Repository implements ports.MemoryRepository on a local directory.
type Repository struct {
	root string
}

// NewRepository creates a repository rooted at root, creating the
// directory if needed.
func NewRepository(root string) (*Repository, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("expanding home directory: %w", err)
		}
		root = filepath.Join(home, root[1:])
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving store root: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating store root: %w", err)
	}
	// Canonicalize so the containment checks in Resolve compare real paths.
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}
	return &Repository{root: root}, nil
}

func (r *Repository) Root() string {
	return r.root
}

// Resolve joins rel under the root and rejects path traversal, both
// lexical and through symlinks. An empty or blank rel resolves to the root
// itself.
func (r *Repository) Resolve(rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return r.root, nil
	}

	candidate := filepath.Clean(filepath.Join(r.root, filepath.FromSlash(rel)))
	if !r.contains(candidate) {
		return "", fmt.Errorf("invalid path %q: escapes the store root", rel)
	}
	if real, ok := canonical(candidate); ok && !r.contains(real) {
		return "", fmt.Errorf("invalid path %q: escapes the store root", rel)
	}
	return candidate, nil
}

func (r *Repository) contains(abs string) bool {
	return abs == r.root || strings.HasPrefix(abs, r.root+string(filepath.Separator))
}

// canonical resolves symlinks in the nearest existing ancestor of path and
// reattaches the not-yet-created suffix. Reports false when nothing up to
// the filesystem root exists.
func canonical(path string) (string, bool) {
	suffix := ""
	for p := path; ; {
		real, err := filepath.EvalSymlinks(p)
		if err == nil {
			return filepath.Join(real, suffix), true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		suffix = filepath.Join(filepath.Base(p), suffix)
		p = parent
	}
}

// RelativeID returns the root-relative forward-slash identifier for abs.
// Paths outside the root fall back to their absolute form; upstream
// validation should make that unreachable.
func (r *Repository) RelativeID(abs string) string {
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

func (r *Repository) Exists(abs string) bool {
	_, err := os.Stat(abs)
	return err == nil
}

func (r *Repository) IsFile(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

func (r *Repository) IsDir(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && info.IsDir()
}

func (r *Repository) ReadFile(abs string) (string, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", r.RelativeID(abs), err)
	}
	return string(data), nil
}

// WriteFile writes content, creating parent directories as needed.
func (r *Repository) WriteFile(abs, content string) error {
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("creating parent directories: %w", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", r.RelativeID(abs), err)
	}
	return nil
}

// Delete removes a file or directory tree. The root itself is protected.
func (r *Repository) Delete(abs string) error {
	if abs == r.root {
		return fmt.Errorf("cannot delete the store root")
	}
	if !r.Exists(abs) {
		return fmt.Errorf("path not found: %s", r.RelativeID(abs))
	}
	return os.RemoveAll(abs)
}

// Rename moves a file or directory, creating destination parents. It
// refuses to overwrite an existing destination.
func (r *Repository) Rename(absOld, absNew string) error {
	if !r.Exists(absOld) {
		return fmt.Errorf("source path not found: %s", r.RelativeID(absOld))
	}
	if r.Exists(absNew) {
		return fmt.Errorf("destination already exists: %s", r.RelativeID(absNew))
	}
	if err := os.MkdirAll(filepath.Dir(absNew), 0755); err != nil {
		return fmt.Errorf("creating parent directories: %w", err)
	}
	return os.Rename(absOld, absNew)
}

// ClearAll removes every item under the root and recreates it empty.
func (r *Repository) ClearAll() error {
	if err := os.RemoveAll(r.root); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	return os.MkdirAll(r.root, 0755)
}

// Tree renders the recursive listing under abs with one-space indentation
// per depth. Directories sort before files, names case-insensitively.
// Internal names and unreadable subtrees are skipped.
func (r *Repository) Tree(abs string) ([]string, error) {
	if !r.IsDir(abs) {
		return nil, fmt.Errorf("not a directory: %s", r.RelativeID(abs))
	}
	return r.treeLines(abs, 0), nil
}

func (r *Repository) treeLines(dir string, depth int) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var lines []string
	prefix := strings.Repeat(" ", depth)
	for _, entry := range entries {
		if domain.IsInternal(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			lines = append(lines, prefix+entry.Name()+"/")
			lines = append(lines, r.treeLines(filepath.Join(dir, entry.Name()), depth+1)...)
		} else {
			lines = append(lines, prefix+entry.Name())
		}
	}
	return lines
}
