package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/tadashi9e/mimicmap/logger"
)

// ErrInvalidConfig is returned if the Config can not be used to run the benchmark.
var ErrInvalidConfig = ierrors.New("invalid benchmark config")

// Config holds the parameters of a benchmark run.
type Config struct {
	From      int      `koanf:"from" usage:"the smallest key of the random key range"`
	MinSize   int      `koanf:"minSize" usage:"the smallest key range size that is measured"`
	MaxSize   int      `koanf:"maxSize" usage:"the largest key range size that is measured"`
	Loop      int      `koanf:"loop" usage:"the number of operations per measurement"`
	Seed      int64    `koanf:"seed" usage:"the seed of the random key source"`
	OutputDir string   `koanf:"outputDir" usage:"the directory the .dat files are written to"`
	Workloads []string `koanf:"workloads" usage:"the workloads to run (op, insert, find)"`
}

// DefaultConfig returns the Config of a full benchmark run.
func DefaultConfig() Config {
	return Config{
		From:      0,
		MinSize:   1,
		MaxSize:   100000,
		Loop:      1000000,
		Seed:      0xdeadbeaf,
		OutputDir: ".",
		Workloads: []string{OpWorkload.Name, InsertWorkload.Name, FindWorkload.Name},
	}
}

// Validate checks if the Config describes a runnable benchmark.
func (c Config) Validate() error {
	switch {
	case c.MinSize < 1:
		return ierrors.Wrapf(ErrInvalidConfig, "minSize must be positive, got %d", c.MinSize)
	case c.MaxSize < c.MinSize:
		return ierrors.Wrapf(ErrInvalidConfig, "maxSize %d is smaller than minSize %d", c.MaxSize, c.MinSize)
	case c.Loop < 1:
		return ierrors.Wrapf(ErrInvalidConfig, "loop must be positive, got %d", c.Loop)
	case len(c.Workloads) == 0:
		return ierrors.Wrap(ErrInvalidConfig, "no workloads selected")
	}

	for _, name := range c.Workloads {
		if _, err := LookupWorkload(name); err != nil {
			return err
		}
	}

	return nil
}

// Runner measures the configured workloads and writes one performance_<workload>.dat file per workload.
type Runner struct {
	*logger.WrappedLogger

	config Config
	keys   *KeySource
}

// NewRunner creates a new Runner. The logger may be nil.
func NewRunner(config Config, log *logger.Logger) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Runner{
		WrappedLogger: logger.NewWrappedLogger(log),
		config:        config,
		keys:          NewKeySource(config.Seed),
	}, nil
}

// Run runs all configured workloads. It stops between two measurements if the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return ierrors.Wrapf(err, "unable to create output directory %s", r.config.OutputDir)
	}

	for _, name := range r.config.Workloads {
		workload, err := LookupWorkload(name)
		if err != nil {
			return err
		}

		if err := r.runToFile(ctx, workload); err != nil {
			if ctx.Err() != nil {
				r.LogWarnf("workload %s aborted: %s", workload.Name, err)
			} else {
				r.LogErrorf("workload %s failed: %s", workload.Name, err)
			}

			return err
		}
	}

	return nil
}

// OutputPath returns the path of the file the results of the workload are written to.
func (r *Runner) OutputPath(workload Workload) string {
	return filepath.Join(r.config.OutputDir, fmt.Sprintf("performance_%s.dat", workload.Name))
}

func (r *Runner) runToFile(ctx context.Context, workload Workload) (err error) {
	outputPath := r.OutputPath(workload)

	file, err := os.Create(outputPath)
	if err != nil {
		return ierrors.Wrapf(err, "unable to create %s", outputPath)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = ierrors.Wrapf(closeErr, "unable to close %s", outputPath)
		}
	}()

	r.LogInfof("running workload %s, writing to %s", workload.Name, outputPath)

	writer := bufio.NewWriter(file)
	if err = r.RunWorkload(ctx, workload, writer); err != nil {
		return err
	}

	if err = writer.Flush(); err != nil {
		return ierrors.Wrapf(err, "unable to write %s", outputPath)
	}

	return nil
}

// RunWorkload measures the workload for every configured size and writes the results to the writer: a header naming the
// workload and its columns, followed by one line per size holding the mean nanoseconds per operation of each Target.
func (r *Runner) RunWorkload(ctx context.Context, workload Workload, writer io.Writer) error {
	header := strings.Join(lo.Map(workload.Targets, func(factory Factory) string {
		return factory.Name
	}), " ")

	if _, err := fmt.Fprintf(writer, "# %s\n# %s\n", workload.Name, header); err != nil {
		return ierrors.Wrap(err, "unable to write header")
	}

	for _, size := range Sizes(r.config.MinSize, r.config.MaxSize) {
		r.LogDebugf("%s: size %d", workload.Name, size)

		row, err := r.measureRow(ctx, workload, size)
		if err != nil {
			return ierrors.Wrapf(err, "workload %s failed for size %d", workload.Name, size)
		}

		if _, err := fmt.Fprintln(writer, row); err != nil {
			return ierrors.Wrap(err, "unable to write row")
		}
	}

	return nil
}

func (r *Runner) measureRow(ctx context.Context, workload Workload, size int) (string, error) {
	from := r.config.From
	to := from + size

	columns := []string{fmt.Sprint(size)}
	for _, factory := range workload.Targets {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		target, err := factory.New(from, to)
		if err != nil {
			return "", ierrors.Wrapf(err, "unable to create %s", factory.Name)
		}

		elapsed, err := workload.Measure(target, r.keys, from, to, r.config.Loop)
		if err != nil {
			return "", ierrors.Wrapf(err, "%s failed", factory.Name)
		}

		columns = append(columns, fmt.Sprintf("%g", float64(elapsed.Nanoseconds())/float64(r.config.Loop)))
	}

	return strings.Join(columns, " "), nil
}
