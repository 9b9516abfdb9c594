package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/bidix-patch/internal/app/patcher"
	"github.com/heartmarshall/bidix-patch/internal/config"
)

// Options carries command-line values. Empty fields leave the loaded
// configuration untouched.
type Options struct {
	ConfigPath string
	WorkDir    string
	InputFile  string
	OutputFile string
}

func (o Options) override(c *config.Config) {
	if o.WorkDir != "" {
		c.Patch.WorkDir = o.WorkDir
	}
	if o.InputFile != "" {
		c.Patch.InputFile = o.InputFile
	}
	if o.OutputFile != "" {
		c.Patch.OutputFile = o.OutputFile
	}
}

// Run is the application entry point. It loads configuration, initializes
// the logger, generates the patch file, and prints the completion message
// to stdout. Logs go to stderr.
func Run(opts Options, stdout, stderr io.Writer) (patcher.Result, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.override)
	if err != nil {
		return patcher.Result{}, err
	}

	logger := NewLogger(stderr, cfg.Log)
	logger.Debug("starting bidix-patch",
		slog.String("version", BuildVersion()),
		slog.String("work_dir", cfg.Patch.WorkDir),
		slog.String("input_file", cfg.Patch.InputFile),
		slog.String("output_file", cfg.Patch.OutputFile),
	)

	gen := patcher.NewGenerator(logger)
	res, err := gen.Generate(patcher.Options{
		WorkDir:    cfg.Patch.WorkDir,
		InputFile:  cfg.Patch.InputFile,
		OutputFile: cfg.Patch.OutputFile,
	})
	if err != nil {
		return patcher.Result{}, err
	}

	if _, err := fmt.Fprintln(stdout, patcher.CompletionMessage(res.OutputPath)); err != nil {
		return res, fmt.Errorf("print completion message: %w", err)
	}

	return res, nil
}
