package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/pairwork/internal/domain/assignment"
	"github.com/rpggio/pairwork/internal/domain/overlap"
	"github.com/rpggio/pairwork/internal/render"
	"github.com/rpggio/pairwork/internal/source"
	"github.com/rpggio/pairwork/internal/sqlite"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pass --file or --db")

type pairsOptions struct {
	file      string
	separator string
	dbPath    string
	table     string
	format    string
}

func newPairsCmd(global *globalOptions) *cobra.Command {
	opts := &pairsOptions{}

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Report the longest-overlap employee pair of every project",
		Example: `  pairwork pairs -f assignments.csv
  pairwork pairs --file assignments.csv --format table
  pairwork pairs --db staff.db --table assignments --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairs(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path of the delimited assignments file")
	cmd.Flags().StringVar(&opts.separator, "separator", "", "field separator (default ,)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "read assignments from this SQLite database instead of a file")
	cmd.Flags().StringVar(&opts.table, "table", "", "table to read from --db (default assignments)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "output format: "+strings.Join(render.Formats(), ", "))
	cmd.MarkFlagsMutuallyExclusive("file", "db")

	return cmd
}

func runPairs(cmd *cobra.Command, global *globalOptions, opts *pairsOptions) error {
	in := global.cfg.Input
	if opts.file != "" || opts.dbPath != "" {
		in.File, in.DBPath = opts.file, opts.dbPath
	}
	if opts.separator != "" {
		in.Separator = opts.separator
	}
	if opts.table != "" {
		in.Table = opts.table
	}
	format := global.cfg.Output.Format
	if opts.format != "" {
		format = opts.format
	}
	if err := render.ValidateFormat(format); err != nil {
		return err
	}

	var src overlap.RowSource
	switch {
	case in.File != "":
		sep, err := source.ParseSeparator(in.Separator)
		if err != nil {
			return err
		}
		src = source.NewCSVFile(in.File, sep)
	case in.DBPath != "":
		db, err := sqlite.OpenReadOnly(in.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		src = sqlite.NewAssignmentSource(db, in.Table)
	default:
		return errNoInput
	}

	svc := overlap.NewService(assignment.NewValidator(nil), global.logger)
	report, err := svc.Analyze(cmd.Context(), src)
	if err != nil {
		return err
	}

	if err := render.Report(cmd.OutOrStdout(), report, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
