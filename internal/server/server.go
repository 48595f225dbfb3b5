package server

import (
	"context"
	"fmt"
	"log"

	"github.com/averycrespi/calc-mcp/internal/engine"
	"github.com/averycrespi/calc-mcp/internal/history"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	engine    *engine.Engine
	store     *history.Store
	config    *types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(config *types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version)
	store := history.NewStore(config.HistoryPath)
	eng := engine.New(store)

	return &CalcServer{
		mcpServer: mcpServer,
		engine:    eng,
		store:     store,
		config:    config,
	}
}

// Serve starts the calculator MCP server on stdio
func (s *CalcServer) Serve(ctx context.Context) error {
	log.Printf("Starting calc MCP server with config: %+v", s.config)

	// A missing or corrupt history file is not a startup failure.
	if err := s.store.Load(); err != nil {
		log.Printf("Failed to load history, starting empty: %v", err)
	}

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	inputDigitTool := tools.NewInputDigitTool(s.engine)
	s.mcpServer.AddTool(inputDigitTool.GetTool(), inputDigitTool.Handle)

	inputDecimalTool := tools.NewInputDecimalTool(s.engine)
	s.mcpServer.AddTool(inputDecimalTool.GetTool(), inputDecimalTool.Handle)

	inputOperatorTool := tools.NewInputOperatorTool(s.engine)
	s.mcpServer.AddTool(inputOperatorTool.GetTool(), inputOperatorTool.Handle)

	computeTool := tools.NewComputeTool(s.engine)
	s.mcpServer.AddTool(computeTool.GetTool(), computeTool.Handle)

	clearTool := tools.NewClearTool(s.engine)
	s.mcpServer.AddTool(clearTool.GetTool(), clearTool.Handle)

	clearEntryTool := tools.NewClearEntryTool(s.engine)
	s.mcpServer.AddTool(clearEntryTool.GetTool(), clearEntryTool.Handle)

	backspaceTool := tools.NewBackspaceTool(s.engine)
	s.mcpServer.AddTool(backspaceTool.GetTool(), backspaceTool.Handle)

	toggleSignTool := tools.NewToggleSignTool(s.engine)
	s.mcpServer.AddTool(toggleSignTool.GetTool(), toggleSignTool.Handle)

	percentTool := tools.NewPercentTool(s.engine)
	s.mcpServer.AddTool(percentTool.GetTool(), percentTool.Handle)

	reciprocalTool := tools.NewReciprocalTool(s.engine)
	s.mcpServer.AddTool(reciprocalTool.GetTool(), reciprocalTool.Handle)

	squareTool := tools.NewSquareTool(s.engine)
	s.mcpServer.AddTool(squareTool.GetTool(), squareTool.Handle)

	squareRootTool := tools.NewSquareRootTool(s.engine)
	s.mcpServer.AddTool(squareRootTool.GetTool(), squareRootTool.Handle)

	historyTool := tools.NewHistoryTool(s.store)
	s.mcpServer.AddTool(historyTool.GetTool(), historyTool.Handle)

	clearHistoryTool := tools.NewClearHistoryTool(s.store)
	s.mcpServer.AddTool(clearHistoryTool.GetTool(), clearHistoryTool.Handle)
}
