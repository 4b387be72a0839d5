package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"mnemo/internal/application"
	"mnemo/internal/domain"
	"mnemo/internal/log"
	"mnemo/internal/ports"
)

// Deps carries everything the tool handlers need. History may be nil when
// the access log is disabled.
type Deps struct {
	Repo    ports.MemoryRepository
	Memory  *application.Memory
	History ports.AccessLog
	Logger  *log.Logger
}

// fallbackSession groups accesses when the transport exposes no session,
// stable for the life of the process.
var fallbackSession = uuid.NewString()

// sessionID extracts the MCP client session from the request context.
func sessionID(ctx context.Context) string {
	if s := server.ClientSessionFromContext(ctx); s != nil {
		if id := s.SessionID(); id != "" {
			return id
		}
	}
	return fallbackSession
}

// recordAccess feeds the associative tracker and, when enabled, the
// history log. Neither may fail the calling tool.
func (d Deps) recordAccess(abs, session, op string) {
	d.Memory.Tracker.RecordAccess(abs, session)

	if d.History == nil || domain.IsInternal(abs) {
		return
	}
	event := domain.AccessEvent{
		SessionID: session,
		File:      d.Repo.RelativeID(abs),
		Op:        op,
		At:        time.Now(),
	}
	if err := d.History.Record(event); err != nil {
		d.Logger.Warnf("access not recorded in history: %v", err)
	}
}
