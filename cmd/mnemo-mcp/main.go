package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mnemo/internal/adapters/filesystem"
	mcpadapter "mnemo/internal/adapters/mcp"
	"mnemo/internal/adapters/sqlite"
	"mnemo/internal/application"
	"mnemo/internal/config"
	"mnemo/internal/log"
	"mnemo/internal/ports"
)

func main() {
	godotenv.Load()

	logger := log.New("mnemo-mcp", log.ParseLevel(config.LogLevel()), config.LogFile())

	repo, err := filesystem.NewRepository(config.Root())
	if err != nil {
		logger.Errorf("store root unavailable: %v", err)
		os.Exit(1)
	}
	store := filesystem.NewCovisStore(repo.Root(), logger)
	memory := application.NewMemory(repo, store, logger)

	var history ports.AccessLog
	if config.HistoryEnabled() {
		h, err := sqlite.OpenHistory(repo.Root())
		if err != nil {
			logger.Warnf("history log disabled: %v", err)
		} else {
			history = h
			defer h.Close()
		}
	}

	deps := mcpadapter.Deps{
		Repo:    repo,
		Memory:  memory,
		History: history,
		Logger:  logger,
	}

	mcpServer := server.NewMCPServer(
		"mnemo-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	logger.Infof("serving memory store at %s", repo.Root())
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
