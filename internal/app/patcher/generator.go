package patcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultOutputFile is the output name used when Options.OutputFile is empty.
const DefaultOutputFile = "bidix.patches"

// Options locates the input and output of one run. Both file names are
// resolved relative to WorkDir.
type Options struct {
	WorkDir    string
	InputFile  string
	OutputFile string
}

// InputPath returns the resolved input path.
func (o Options) InputPath() string {
	return filepath.Join(o.WorkDir, o.InputFile)
}

// OutputPath returns the resolved output path, applying DefaultOutputFile.
func (o Options) OutputPath() string {
	name := o.OutputFile
	if name == "" {
		name = DefaultOutputFile
	}
	return filepath.Join(o.WorkDir, name)
}

// Result describes a completed run.
type Result struct {
	RunID        uuid.UUID
	InputPath    string
	OutputPath   string
	Stats        Stats
	Groups       map[string]int
	BytesWritten int64
	Duration     time.Duration
}

// Generator reads a word-pair file and writes the grouped patch file.
type Generator struct {
	log *slog.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(log *slog.Logger) *Generator {
	return &Generator{log: log}
}

// Generate runs parse, group and write for one input. The input is read
// completely before the output is opened, so a missing or undecodable input
// leaves any existing output untouched. The output is always truncated.
func (g *Generator) Generate(opts Options) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:      uuid.New(),
		InputPath:  opts.InputPath(),
		OutputPath: opts.OutputPath(),
	}

	parsed, err := ParseFile(res.InputPath)
	if err != nil {
		return Result{}, err
	}
	res.Stats = parsed.Stats

	groups := GroupEntries(parsed.Entries)
	res.Groups = groups.Counts()

	res.BytesWritten, err = writeFile(res.OutputPath, groups)
	if err != nil {
		return Result{}, err
	}
	res.Duration = time.Since(start)

	for _, pos := range groups.Keys() {
		g.log.Debug("pos group written",
			slog.String("run_id", res.RunID.String()),
			slog.String("pos", pos),
			slog.Int("entries", res.Groups[pos]),
		)
	}

	g.log.Info("patch generation completed",
		slog.String("run_id", res.RunID.String()),
		slog.String("input", res.InputPath),
		slog.String("output", res.OutputPath),
		slog.Int("lines", res.Stats.TotalLines),
		slog.Int("skipped", res.Stats.Skipped),
		slog.Int("entries", groups.Len()),
		slog.Int("groups", len(res.Groups)),
		slog.Int64("bytes", res.BytesWritten),
		slog.Duration("duration", res.Duration),
	)

	return res, nil
}

func writeFile(path string, groups *PatchGroups) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	n, err = groups.WriteTo(f)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// CompletionMessage is the line printed after a successful run.
func CompletionMessage(outputPath string) string {
	return fmt.Sprintf("Finished generating bidix patches in %s, sorted by POS.", outputPath)
}
