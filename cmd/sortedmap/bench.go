package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tidwall/hashmap"
	"gopkg.in/typ.v4"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-sorted-map/sortedmap"
)

func newBenchCommand() *cobra.Command {
	var configPath string
	flags := defaultConfig.Bench
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure sorted map throughput against a hash map baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags given explicitly win over the config file
			bench := config.Bench
			if cmd.Flags().Changed("count") {
				bench.Count = flags.Count
			}
			if cmd.Flags().Changed("keys") {
				bench.Keys = flags.Keys
			}
			if cmd.Flags().Changed("seed") {
				bench.Seed = flags.Seed
			}
			if cmd.Flags().Changed("remove-ratio") {
				bench.RemoveRatio = flags.RemoveRatio
			}
			if cmd.Flags().Changed("progress") {
				bench.Progress = flags.Progress
			}
			if err := bench.Validate(); err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), bench)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML workload file")
	cmd.Flags().IntVarP(&flags.Count, "count", "n", flags.Count, "number of keys")
	cmd.Flags().StringVar(&flags.Keys, "keys", flags.Keys, "key type: int or u128")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", flags.Seed, "random seed")
	cmd.Flags().Float64Var(&flags.RemoveRatio, "remove-ratio", flags.RemoveRatio, "share of keys removed by key")
	cmd.Flags().BoolVar(&flags.Progress, "progress", flags.Progress, "show progress bar")
	return cmd
}

type benchResult struct {
	name    string
	ops     int
	elapsed time.Duration
}

func (r benchResult) rps() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.ops) * float64(time.Second) / float64(r.elapsed)
}

func runBench(w io.Writer, config BenchConfig) error {
	rnd := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	fmt.Fprintf(w, "prepare %d %s keys\n", config.Count, config.Keys)

	var results []benchResult
	releaser := &Releaser{}
	switch config.Keys {
	case keysInt:
		keys := make([]int, config.Count)
		for i := range keys {
			keys[i] = rnd.Int()
		}
		results = benchKeys(keys, typ.Compare[int], config, releaser)
	case keysU128:
		keys := make([]uint128.Uint128, config.Count)
		for i := range keys {
			keys[i] = uint128.New(rnd.Uint64(), rnd.Uint64())
		}
		results = benchKeys(keys, func(a, b uint128.Uint128) int { return a.Cmp(b) }, config, releaser)
	default:
		return fmt.Errorf("invalid key kind %q", config.Keys)
	}

	fmt.Fprintln(w)
	for _, r := range results {
		fmt.Fprintf(w, "%-28s ops: %10d  time: %12s  RPS: %.5f\n", r.name, r.ops, r.elapsed, r.rps())
	}
	releaser.PrintStatistics(w)
	return nil
}

func benchKeys[K comparable](keys []K, compare func(a, b K) int, config BenchConfig, releaser *Releaser) []benchResult {
	removeCount := int(float64(len(keys)) * config.RemoveRatio)
	bar := newProgressBar(config.Progress, int64(4*len(keys)+2*removeCount))

	sorted := sortedmap.New[K, int](compare, sortedmap.WithReleaser[int](releaser))
	baseline := hashmap.New[K, int](len(keys))

	results := []benchResult{}
	measure := func(name string, ops int, f func()) {
		start := time.Now()
		f()
		results = append(results, benchResult{name: name, ops: ops, elapsed: time.Since(start)})
	}

	measure("sortedmap insert", len(keys), func() {
		for i, k := range keys {
			sorted.Insert(k, i)
			_ = bar.Add(1)
		}
	})
	measure("hashmap insert", len(keys), func() {
		for i, k := range keys {
			if _, ok := baseline.Get(k); !ok {
				baseline.Set(k, i)
			}
			_ = bar.Add(1)
		}
	})
	measure("sortedmap search", len(keys), func() {
		for _, k := range keys {
			sorted.SearchKey(k)
			_ = bar.Add(1)
		}
	})
	measure("hashmap search", len(keys), func() {
		for _, k := range keys {
			baseline.Get(k)
			_ = bar.Add(1)
		}
	})
	measure("sortedmap iterate", sorted.Size(), func() {
		for _, ok := sorted.First(); ok; _, ok = sorted.Next() {
		}
	})
	measure("sortedmap remove", removeCount, func() {
		for _, k := range keys[:removeCount] {
			sorted.RemoveKey(k)
			_ = bar.Add(1)
		}
	})
	measure("hashmap remove", removeCount, func() {
		for _, k := range keys[:removeCount] {
			baseline.Delete(k)
			_ = bar.Add(1)
		}
	})
	_ = bar.Finish()

	if sorted.Size() != baseline.Len() {
		panic(fmt.Sprintf("sorted map has %d entries, hash map has %d", sorted.Size(), baseline.Len()))
	}
	measure("sortedmap remove all", sorted.Size(), func() {
		sorted.RemoveAll()
	})
	return results
}

func newProgressBar(enabled bool, total int64) *progressbar.ProgressBar {
	if !enabled {
		return progressbar.DefaultSilent(total)
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("running"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
