package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mnemo/internal/application"
	"mnemo/internal/config"
	"mnemo/internal/domain"
)

// RegisterReadTools adds the read-only memory tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, d Deps) {
	s.AddTool(viewTool(), viewHandler(d))
}

// --- view ---

func viewTool() mcp.Tool {
	return mcp.NewTool("view",
		mcp.WithDescription("View the memory tree or a file's contents with an optional line range. File views append co-visited related files."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("path",
			mcp.Description("Store-relative path (e.g. 'notes.txt'). Omit for the root listing."),
		),
		mcp.WithNumber("start_line",
			mcp.Description("First line to show (0-based)"),
		),
		mcp.WithNumber("end_line",
			mcp.Description("Last line to show (0-based, inclusive)"),
		),
	)
}

func viewHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")

		target, err := d.Repo.Resolve(rel)
		if err != nil {
			return toolError(err)
		}
		if target != d.Repo.Root() && domain.IsInternal(target) {
			return toolError(fmt.Errorf("cannot access internal file: %s", rel))
		}

		switch {
		case d.Repo.IsDir(target):
			lines, err := d.Repo.Tree(target)
			if err != nil {
				return toolError(err)
			}
			out := "(empty)"
			if len(lines) > 0 {
				out = strings.Join(lines, "\n")
			}
			return toolText(out), nil

		case d.Repo.IsFile(target):
			session := sessionID(ctx)
			d.recordAccess(target, session, "view")

			content, err := d.Repo.ReadFile(target)
			if err != nil {
				return toolError(err)
			}
			content = application.SliceLines(content, req.GetInt("start_line", -1), req.GetInt("end_line", -1))
			content = application.ClampRead(content, config.MaxReadChars())

			related := d.Memory.Recommender.Related(target, session, config.MaxRecommendations())
			if len(related) > 0 {
				var sb strings.Builder
				sb.WriteString(content)
				sb.WriteString("\n\nRelated files (co-visited):\n")
				for i, rec := range related {
					fmt.Fprintf(&sb, "  [%d] %s (co-visited %dx)\n", i+1, rec.File, rec.Count)
				}
				content = sb.String()
			}
			return toolText(content), nil

		default:
			return toolError(fmt.Errorf("path not found: %s", displayPath(rel)))
		}
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func toolText(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(application.TruncateResponse(text, config.MaxResponseChars()))
}

func displayPath(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
