package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bricktools/bricktools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: bricktools mcp\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes merge, stats, and validate as MCP tools. Wanted\n")
		Writef(fs.Output(), "lists are provided per tool call as a file path or inline XML content.\n\n")
		Writef(fs.Output(), "Example MCP client configuration:\n")
		Writef(fs.Output(), "  {\"mcpServers\": {\"bricktools\": {\"command\": \"bricktools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	// stdout carries the protocol; keep startup chatter on stderr.
	Writef(os.Stderr, "bricktools MCP server listening on stdio\n")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
