// densemap-bench measures DenseMap and FixedMap against hash and tree based maps under uniformly random keys and
// writes the mean nanoseconds per operation to performance_<workload>.dat files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/tadashi9e/mimicmap/bench"
	"github.com/tadashi9e/mimicmap/configuration"
	"github.com/tadashi9e/mimicmap/logger"
)

const envPrefix = "DENSEMAP"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "densemap-bench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	benchConfig, loggerConfig, err := loadConfig(args)
	if err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	rootLogger, err := logger.NewRootLogger(loggerConfig)
	if err != nil {
		return err
	}
	defer func() { _ = rootLogger.Sync() }()

	runner, err := bench.NewRunner(benchConfig, rootLogger.Named("bench"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootLogger.Infof("measuring sizes %d..%d with %d operations each", benchConfig.MinSize, benchConfig.MaxSize, benchConfig.Loop)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	rootLogger.Info("done")

	return nil
}

// loadConfig merges defaults, the optional config file, environment variables and command line flags, in increasing
// order of precedence.
func loadConfig(args []string) (bench.Config, logger.Config, error) {
	benchConfig := bench.DefaultConfig()
	loggerConfig := logger.DefaultCfg

	flagSet := configuration.NewUnsortedFlagSet("densemap-bench", flag.ContinueOnError)
	configFile := flagSet.String("config", "", "path to a json, yaml or toml config file")
	configuration.BindParameters(flagSet, &benchConfig, "bench")
	configuration.BindParameters(flagSet, &loggerConfig, "logger")

	if err := flagSet.Parse(args); err != nil {
		return benchConfig, loggerConfig, err
	}

	config := configuration.New()
	if *configFile != "" {
		if err := config.LoadFile(*configFile); err != nil {
			return benchConfig, loggerConfig, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return benchConfig, loggerConfig, err
	}

	// env vars are only accepted for keys that are known at this point
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return benchConfig, loggerConfig, err
	}

	// explicitly set flags override env vars
	if err := config.LoadFlagSet(flagSet); err != nil {
		return benchConfig, loggerConfig, err
	}

	if err := config.Unmarshal("bench", &benchConfig); err != nil {
		return benchConfig, loggerConfig, err
	}
	if err := config.Unmarshal("logger", &loggerConfig); err != nil {
		return benchConfig, loggerConfig, err
	}

	return benchConfig, loggerConfig, nil
}
