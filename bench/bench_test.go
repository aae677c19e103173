package bench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadashi9e/mimicmap/logger"
)

func TestSizes(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 30}, Sizes(1, 30))
	require.Equal(t, []int{90, 100, 200}, Sizes(90, 250))
	require.Equal(t, []int{900, 1000, 2000, 3000}, Sizes(900, 3000))
	require.Empty(t, Sizes(5, 4))

	sizes := Sizes(1, 100000)
	require.Equal(t, 1, sizes[0])
	require.Equal(t, 100000, sizes[len(sizes)-1])
	require.Len(t, sizes, 9+9+9+100)
}

func TestKeySource(t *testing.T) {
	first := NewKeySource(0xdeadbeaf)
	second := NewKeySource(0xdeadbeaf)

	for i := 0; i < 1000; i++ {
		key := first.Next(-5, 5)
		require.Equal(t, key, second.Next(-5, 5))
		require.GreaterOrEqual(t, key, -5)
		require.LessOrEqual(t, key, 5)
	}
}

func TestTargets(t *testing.T) {
	for _, factory := range []Factory{DenseMapFactory, ReservedDenseMapFactory, ReservedFixedMapFactory, MapFactory, ReservedMapFactory, ShrinkingMapFactory, TreeMapFactory} {
		t.Run(factory.Name, func(t *testing.T) {
			target, err := factory.New(10, 20)
			require.NoError(t, err)

			require.NoError(t, target.Assign(15, 1))
			require.NoError(t, target.Insert(12, 2))
			require.True(t, target.Find(15))
			require.True(t, target.Find(12))
			require.False(t, target.Find(21))
		})
	}
}

func TestWorkloads(t *testing.T) {
	keys := NewKeySource(1)

	for _, workload := range Workloads() {
		for _, factory := range workload.Targets {
			target, err := factory.New(0, 50)
			require.NoError(t, err)

			_, err = workload.Measure(target, keys, 0, 50, 200)
			require.NoError(t, err, "%s/%s", workload.Name, factory.Name)
		}
	}

	_, err := LookupWorkload("delete")
	require.ErrorIs(t, err, ErrUnknownWorkload)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, mutate := range []func(*Config){
		func(c *Config) { c.MinSize = 0 },
		func(c *Config) { c.MaxSize = 0 },
		func(c *Config) { c.Loop = 0 },
		func(c *Config) { c.Workloads = nil },
	} {
		config := DefaultConfig()
		mutate(&config)
		require.ErrorIs(t, config.Validate(), ErrInvalidConfig)
	}

	config := DefaultConfig()
	config.Workloads = []string{"op", "erase"}
	require.ErrorIs(t, config.Validate(), ErrUnknownWorkload)
}

func TestRunner_RunWorkload(t *testing.T) {
	runner, err := NewRunner(smallConfig(t.TempDir()), nil)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, runner.RunWorkload(context.Background(), FindWorkload, &buffer))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Equal(t, "# find", lines[0])
	require.Equal(t, "# DenseMap(reserved) FixedMap(reserved) map(reserved) shrinkingmap treemap", lines[1])
	require.Len(t, lines, 2+len(Sizes(1, 20)))

	for i, size := range Sizes(1, 20) {
		fields := strings.Fields(lines[2+i])
		require.Len(t, fields, 1+len(FindWorkload.Targets))
		assert.Equal(t, strconv.Itoa(size), fields[0])
		for _, field := range fields[1:] {
			_, err := strconv.ParseFloat(field, 64)
			assert.NoError(t, err)
		}
	}
}

func TestRunner_Run(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")

	runner, err := NewRunner(smallConfig(outputDir), logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background()))

	for _, workload := range []Workload{OpWorkload, InsertWorkload, FindWorkload} {
		content, err := os.ReadFile(runner.OutputPath(workload))
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(content), "# "+workload.Name+"\n"))
	}
}

func TestRunner_Canceled(t *testing.T) {
	runner, err := NewRunner(smallConfig(t.TempDir()), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, runner.Run(ctx), context.Canceled)
}

func smallConfig(outputDir string) Config {
	config := DefaultConfig()
	config.MaxSize = 20
	config.Loop = 100
	config.OutputDir = outputDir

	return config
}
