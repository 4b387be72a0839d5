package ports

// MemoryRepository defines filesystem access to the memory store root.
// All paths given to Resolve are store-relative; every other method takes
// the absolute path Resolve returned.
type MemoryRepository interface {
	// Root returns the absolute store root.
	Root() string

	// Resolve joins a store-relative path under the root and rejects
	// anything that would escape it. An empty path resolves to the root.
	Resolve(rel string) (string, error)

	// RelativeID returns the root-relative forward-slash identifier for an
	// absolute path, falling back to the absolute form when outside the
	// root.
	RelativeID(abs string) string

	// Existence and type probes.
	Exists(abs string) bool
	IsFile(abs string) bool
	IsDir(abs string) bool

	// File operations.
	ReadFile(abs string) (string, error)
	WriteFile(abs, content string) error
	Delete(abs string) error
	Rename(absOld, absNew string) error
	ClearAll() error

	// Tree renders the recursive listing rooted at abs, one entry per
	// line, directories suffixed with '/', internal names skipped.
	Tree(abs string) ([]string, error)
}
