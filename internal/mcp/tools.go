package mcp

import (
	"context"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/pairwork/internal/domain/overlap"
	"github.com/rpggio/pairwork/internal/source"
)

type toolDeps struct {
	analyzer   Analyzer
	allowFiles bool
	logger     *slog.Logger
}

func registerTools(server *sdkmcp.Server, deps toolDeps) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "find_longest_pairs",
		Description: "For every project, find the pair of employees who worked on it together for the most days",
	}, deps.findLongestPairs)
}

func (d toolDeps) findLongestPairs(ctx context.Context, _ *sdkmcp.CallToolRequest, in FindLongestPairsParams) (*sdkmcp.CallToolResult, FindLongestPairsResult, error) {
	src, err := d.rowSource(in)
	if err != nil {
		return nil, FindLongestPairsResult{}, toolError(err)
	}

	report, err := d.analyzer.Analyze(ctx, src)
	if err != nil {
		if d.logger != nil {
			d.logger.ErrorContext(ctx, "analysis failed", "error", err)
		}
		return nil, FindLongestPairsResult{}, toolError(err)
	}

	return nil, toResult(report), nil
}

func (d toolDeps) rowSource(in FindLongestPairsParams) (overlap.RowSource, error) {
	hasText := strings.TrimSpace(in.CSV) != ""
	hasPath := strings.TrimSpace(in.Path) != ""
	if hasText == hasPath {
		return nil, ErrInvalidInput
	}
	if hasPath && !d.allowFiles {
		return nil, ErrPathNotAllowed
	}

	sep, err := source.ParseSeparator(in.Separator)
	if err != nil {
		return nil, err
	}
	if hasPath {
		return source.NewCSVFile(in.Path, sep), nil
	}
	return source.NewCSVText(in.CSV, sep), nil
}
