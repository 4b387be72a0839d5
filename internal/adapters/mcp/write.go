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

// RegisterWriteTools adds the mutating memory tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, d Deps) {
	s.AddTool(createTool(), createHandler(d))
	s.AddTool(strReplaceTool(), strReplaceHandler(d))
	s.AddTool(insertTool(), insertHandler(d))
	s.AddTool(deleteTool(), deleteHandler(d))
	s.AddTool(renameTool(), renameHandler(d))
	s.AddTool(clearAllTool(), clearAllHandler(d))
}

// resolveWritable validates a store-relative path for mutation: it must
// stay under the root and must not name an internal file.
func (d Deps) resolveWritable(rel, verb string) (string, error) {
	target, err := d.Repo.Resolve(rel)
	if err != nil {
		return "", err
	}
	if target == d.Repo.Root() {
		return "", fmt.Errorf("cannot %s the memory root", verb)
	}
	if domain.IsInternal(target) {
		return "", fmt.Errorf("cannot %s internal file: %s", verb, rel)
	}
	return target, nil
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a memory file or overwrite an existing one. Parent directories are created as needed."),
		mcp.WithString("path",
			mcp.Description("Target file path (e.g. 'notes.txt')"),
			mcp.Required(),
		),
		mcp.WithString("file_text",
			mcp.Description("File content to write"),
		),
	)
}

func createHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		text := req.GetString("file_text", "")

		target, err := d.resolveWritable(rel, "create")
		if err != nil {
			return toolError(err)
		}
		if err := d.Repo.WriteFile(target, text); err != nil {
			return toolError(err)
		}

		// Creating a file right after viewing others is itself a
		// relatedness signal.
		d.recordAccess(target, sessionID(ctx), "create")

		msg := "Created: " + rel
		if note := application.LargeFileNote(text, config.LargeFileThreshold()); note != "" {
			msg += "\n" + note
		}
		return toolText(msg), nil
	}
}

// --- str_replace ---

func strReplaceTool() mcp.Tool {
	return mcp.NewTool("str_replace",
		mcp.WithDescription("Replace a unique substring in a memory file."),
		mcp.WithString("path",
			mcp.Description("Target file path"),
			mcp.Required(),
		),
		mcp.WithString("old_str",
			mcp.Description("Substring to replace; must occur exactly once"),
			mcp.Required(),
		),
		mcp.WithString("new_str",
			mcp.Description("Replacement text"),
			mcp.Required(),
		),
	)
}

func strReplaceHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		oldStr := req.GetString("old_str", "")
		newStr := req.GetString("new_str", "")

		target, err := d.resolveWritable(rel, "edit")
		if err != nil {
			return toolError(err)
		}
		if !d.Repo.IsFile(target) {
			return toolError(fmt.Errorf("file not found: %s", rel))
		}

		content, err := d.Repo.ReadFile(target)
		if err != nil {
			return toolError(err)
		}
		switch count := strings.Count(content, oldStr); {
		case count == 0:
			return toolError(fmt.Errorf("text not found in %s", rel))
		case count > 1:
			return toolError(fmt.Errorf("text appears %d times in %s; must be unique", count, rel))
		}

		updated := strings.Replace(content, oldStr, newStr, 1)
		if err := d.Repo.WriteFile(target, updated); err != nil {
			return toolError(err)
		}
		d.recordAccess(target, sessionID(ctx), "edit")

		msg := "Updated: " + rel
		if note := application.LargeFileNote(updated, config.LargeFileThreshold()); note != "" {
			msg += "\n" + note
		}
		return toolText(msg), nil
	}
}

// --- insert ---

func insertTool() mcp.Tool {
	return mcp.NewTool("insert",
		mcp.WithDescription("Insert text at a specific line in a memory file (0-based index)."),
		mcp.WithString("path",
			mcp.Description("Target file path"),
			mcp.Required(),
		),
		mcp.WithNumber("insert_line",
			mcp.Description("0-based line index to insert at"),
			mcp.Required(),
		),
		mcp.WithString("insert_text",
			mcp.Description("Text to insert"),
			mcp.Required(),
		),
	)
}

func insertHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		line := req.GetInt("insert_line", -1)
		text := req.GetString("insert_text", "")

		target, err := d.resolveWritable(rel, "edit")
		if err != nil {
			return toolError(err)
		}
		if !d.Repo.IsFile(target) {
			return toolError(fmt.Errorf("file not found: %s", rel))
		}

		content, err := d.Repo.ReadFile(target)
		if err != nil {
			return toolError(err)
		}
		// An empty file has zero lines, not one empty line.
		var lines []string
		if content != "" {
			lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
		}
		if line < 0 || line > len(lines) {
			return toolError(fmt.Errorf("invalid insert_line %d: must be 0-%d", line, len(lines)))
		}

		lines = append(lines[:line], append([]string{strings.TrimSuffix(text, "\n")}, lines[line:]...)...)
		updated := strings.Join(lines, "\n") + "\n"
		if err := d.Repo.WriteFile(target, updated); err != nil {
			return toolError(err)
		}
		d.recordAccess(target, sessionID(ctx), "edit")

		msg := fmt.Sprintf("Inserted at line %d: %s", line, rel)
		if note := application.LargeFileNote(updated, config.LargeFileThreshold()); note != "" {
			msg += "\n" + note
		}
		return toolText(msg), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a memory file or directory. Directories are deleted recursively."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("path",
			mcp.Description("Target path to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")

		target, err := d.resolveWritable(rel, "delete")
		if err != nil {
			return toolError(err)
		}
		if err := d.Repo.Delete(target); err != nil {
			return toolError(err)
		}
		return toolText("Deleted: " + rel), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename or move a memory file or directory."),
		mcp.WithString("old_path",
			mcp.Description("Source path"),
			mcp.Required(),
		),
		mcp.WithString("new_path",
			mcp.Description("Destination path; must not already exist"),
			mcp.Required(),
		),
	)
}

func renameHandler(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		oldRel := req.GetString("old_path", "")
		newRel := req.GetString("new_path", "")

		src, err := d.resolveWritable(oldRel, "rename")
		if err != nil {
			return toolError(err)
		}
		dst, err := d.resolveWritable(newRel, "rename to")
		if err != nil {
			return toolError(err)
		}
		if err := d.Repo.Rename(src, dst); err != nil {
			return toolError(err)
		}
		return toolText(fmt.Sprintf("Renamed: %s -> %s", oldRel, newRel)), nil
	}
}

// --- clear_all ---

func clearAllTool() mcp.Tool {
	return mcp.NewTool("clear_all",
		mcp.WithDescription("Delete every memory file and directory, leaving an empty store."),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func clearAllHandler(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := d.Repo.ClearAll(); err != nil {
			return toolError(err)
		}
		return toolText("Cleared all memory"), nil
	}
}
