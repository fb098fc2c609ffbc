package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Invicton-Labs/go-search/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"
)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(context.Background(), opts, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options, stdout io.Writer, logOutput io.Writer) stackerr.Error {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	logger := log.New(log.NewInput{
		Name:          "linsearch",
		Level:         level,
		IsDevelopment: opts.Dev,
		Output:        logOutput,
		InitialFields: map[string]any{
			"run_id": uuid.New().String(),
		},
	})
	defer logger.Sync()
	ctx = log.LogContext(ctx, logger)

	if err := opts.validate(); err != nil {
		logger.Error(err)
		return err
	}

	res, err := execute(ctx, opts)
	if err != nil {
		logger.Error(err)
		return err
	}
	fmt.Fprintln(stdout, res.String())
	return nil
}

func execute(ctx context.Context, opts Options) (result, stackerr.Error) {
	logger := log.FromContext(ctx)

	logger.Debugw("searching sequence", "item", opts.Item, "file", opts.File, "numeric", opts.Numeric, "ignore_case", opts.IgnoreCase)

	res, err := search(opts)
	if err != nil {
		return result{}, err
	}
	logger.Debugw("search complete", "exists", res.Exists, "found", res.Found, "index", res.Index, "length", res.Length)
	return res, nil
}
