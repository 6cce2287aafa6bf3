// Command polbrief processes an insurance brochure PDF from the command
// line, or serves the pipeline over MCP stdio.
//
// Usage:
//
//	polbrief [-json] [-o report.txt] brochure.pdf
//	polbrief mcp
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/polbrief/polpipe"
	"github.com/hazyhaar/polbrief/report"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipe, err := polpipe.New(polpipe.Config{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "polbrief: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		if err := serveMCP(ctx, pipe); err != nil {
			fmt.Fprintf(os.Stderr, "polbrief: mcp: %v\n", err)
			os.Exit(1)
		}
		return
	}

	asJSON := flag.Bool("json", false, "print the raw policy record as JSON instead of the text report")
	outPath := flag.String("o", "processed_brochure.txt", "write the text report to this file ('-' for stdout only)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: polbrief [-json] [-o report.txt] brochure.pdf")
		fmt.Fprintln(os.Stderr, "       polbrief mcp")
		os.Exit(2)
	}

	rec, err := pipe.ProcessFile(ctx, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "polbrief: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "polbrief: encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	text := report.Render(rec)
	if *outPath == "-" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(*outPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "polbrief: write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("report written to %s\n", *outPath)
}

func serveMCP(ctx context.Context, pipe *polpipe.Pipeline) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "polbrief",
		Version: "1.0.0",
	}, nil)
	pipe.RegisterMCP(srv)
	return srv.Run(ctx, &mcp.StdioTransport{})
}
