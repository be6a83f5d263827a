package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pkt.systems/pslog"
	"pkt.systems/tabstate"
	"pkt.systems/tabstate/internal/appconfig"
	"pkt.systems/tabstate/internal/discover"
	"pkt.systems/tabstate/internal/logx"
	"pkt.systems/tabstate/internal/output"
	"pkt.systems/tabstate/schema"
)

type parseOptions struct {
	Inputs  []string
	Format  output.Format
	Path    string
	Workers int
}

type parseSummary struct {
	Files  int
	Parsed int
	Failed int
}

func newParseCmd() *cobra.Command {
	var cfgPath string
	var format string
	var outPath string
	var level string
	var workers int
	cmd := &cobra.Command{
		Use:   "parse [pattern...]",
		Short: "Parse tab state files and write JSONL or CSV records",
		Long: "Parse tab state files matched by the given glob patterns (or the default\n" +
			"Notepad TabState location) and write one record per file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if len(args) > 0 {
				cfg.Inputs = args
			}
			if flags.Changed("output-format") {
				cfg.Output.Format = format
			}
			if flags.Changed("output-path") {
				cfg.Output.Path = outPath
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = level
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if err := appconfig.Validate(cfg); err != nil {
				return err
			}
			logLevel, err := logx.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			outFormat, err := output.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			logger := logx.NewLogger(cmd.ErrOrStderr(), logLevel)
			ctx := pslog.ContextWithLogger(cmd.Context(), logger)
			opts := parseOptions{
				Inputs:  cfg.Inputs,
				Format:  outFormat,
				Path:    cfg.Output.Path,
				Workers: cfg.Workers,
			}
			summary, err := runParse(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger.Info("parse done", "files", summary.Files, "parsed", summary.Parsed, "failed", summary.Failed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&format, "output-format", "f", string(output.FormatJSONL), "output format ("+joinFormats()+")")
	cmd.Flags().StringVarP(&outPath, "output-path", "o", appconfig.StdoutPath, "output file path or stdout")
	cmd.Flags().StringVarP(&level, "log-level", "l", string(logx.LevelQuiet), "log level ("+joinLevels()+")")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel decoders (0 uses GOMAXPROCS)")
	return cmd
}

// runParse decodes every matched file and writes the records in input
// order. Files that fail to decode are logged and skipped.
func runParse(ctx context.Context, opts parseOptions, stdout io.Writer) (parseSummary, error) {
	logger := pslog.Ctx(ctx)
	paths, err := discover.Expand(opts.Inputs)
	if err != nil {
		return parseSummary{}, err
	}
	summary := parseSummary{Files: len(paths)}
	if len(paths) == 0 {
		logger.Info("no tab state files matched", "inputs", strings.Join(opts.Inputs, ","))
	}

	w, closeOut, err := openOutput(opts.Path, stdout)
	if err != nil {
		return summary, err
	}
	sink, err := output.New(opts.Format, w)
	if err != nil {
		_ = closeOut()
		return summary, err
	}

	records, err := decodeAll(ctx, paths, opts.Workers)
	if err != nil {
		_ = closeOut()
		return summary, err
	}
	for i, rec := range records {
		if rec == nil {
			summary.Failed++
			continue
		}
		if err := sink.Write(rec); err != nil {
			_ = closeOut()
			return summary, fmt.Errorf("write record for %s: %w", paths[i], err)
		}
		summary.Parsed++
	}
	if err := sink.Flush(); err != nil {
		_ = closeOut()
		return summary, err
	}
	return summary, closeOut()
}

// decodeAll decodes paths with at most workers in flight. The returned slice
// is aligned with paths; failed entries are nil.
func decodeAll(ctx context.Context, paths []string, workers int) ([]*schema.TabState, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	records := make([]*schema.TabState, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			log := logx.WithSource(gctx, path)
			fileCtx := logx.ContextWithSource(gctx, log, path)
			rec, err := tabstate.DecodeFile(fileCtx, path)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Error("Unable to parse the file", "err", err)
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || strings.EqualFold(path, appconfig.StdoutPath) {
		return stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", path, err)
	}
	return f, f.Close, nil
}

func joinFormats() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}

func joinLevels() string {
	names := make([]string, 0, len(logx.Levels()))
	for _, l := range logx.Levels() {
		names = append(names, string(l))
	}
	return strings.Join(names, "|")
}
