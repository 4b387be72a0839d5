package ports

import "mnemo/internal/domain"

// AccessLog is an append-only record of qualifying file accesses, kept for
// inspection outside the MCP session. Implementations must tolerate being
// nil-checked away: the log is optional and never load-bearing.
type AccessLog interface {
	Record(event domain.AccessEvent) error
	Recent(limit int) ([]domain.AccessEvent, error)
	RecentForFile(file string, limit int) ([]domain.AccessEvent, error)
	TopFiles(limit int) ([]domain.FileCount, error)
	Close() error
}
