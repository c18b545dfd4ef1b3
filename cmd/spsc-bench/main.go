// File: cmd/spsc-bench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Throughput and round-trip latency benchmark harness for hioload-spsc.
// Pin producer and consumer to dedicated cores for meaningful numbers.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/momentics/hioload-spsc/affinity"
	"github.com/momentics/hioload-spsc/spsc"
)

const version = "1.0.0"

// spinYieldMask throttles runtime.Gosched in poll loops to every 64th
// failed attempt, matching the engine's own blocking paths.
const spinYieldMask = 63

func main() {
	rootCmd := &cobra.Command{
		Use:   "spsc-bench",
		Short: "Benchmarks for the hioload-spsc queue",
		Long: `spsc-bench measures the hioload-spsc queue on this machine.

Subcommands:
  throughput   stream items one way through a single queue (ops/ms)
  rtt          ping-pong between two queues (ns per round trip)

Pass --producer-cpu and --consumer-cpu to pin both sides to dedicated
cores; without pinning the busy-spin design reports scheduler noise
rather than queue latency.`,
		Version: version,
	}

	rootCmd.PersistentFlags().Int("capacity", 1<<16, "queue capacity in elements")
	rootCmd.PersistentFlags().Int("iterations", 10_000_000, "items to move through the queue")
	rootCmd.PersistentFlags().Int("producer-cpu", -1, "logical CPU for the producer (-1 = unpinned)")
	rootCmd.PersistentFlags().Int("consumer-cpu", -1, "logical CPU for the consumer (-1 = unpinned)")

	// Environment variable binding, e.g. SPSC_PRODUCER_CPU=2.
	viper.SetEnvPrefix("SPSC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(newThroughputCommand())
	rootCmd.AddCommand(newRTTCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newThroughputCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "throughput",
		Short: "Stream items one way through a single queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThroughput(benchConfig())
		},
	}
}

func newRTTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rtt",
		Short: "Ping-pong items between two queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRTT(benchConfig())
		},
	}
}

type config struct {
	capacity    int
	iterations  int
	producerCPU int
	consumerCPU int
}

func benchConfig() config {
	return config{
		capacity:    viper.GetInt("capacity"),
		iterations:  viper.GetInt("iterations"),
		producerCPU: viper.GetInt("producer-cpu"),
		consumerCPU: viper.GetInt("consumer-cpu"),
	}
}

func runThroughput(cfg config) error {
	q, err := spsc.New[int](cfg.capacity)
	if err != nil {
		return err
	}

	// The consumer reports its pin result before the transfer starts; a
	// failure discovered mid-stream would leave the producer spinning on
	// a full queue with nobody draining it.
	pinned := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		err := affinity.Pin(cfg.consumerCPU)
		pinned <- err
		if err != nil {
			return
		}
		for i := 0; i < cfg.iterations; i++ {
			if v := q.Dequeue(); v != i {
				done <- fmt.Errorf("out of order: got %d, want %d", v, i)
				return
			}
		}
		done <- nil
	}()
	if err := <-pinned; err != nil {
		return fmt.Errorf("pin consumer: %w", err)
	}

	if err := affinity.Pin(cfg.producerCPU); err != nil {
		return fmt.Errorf("pin producer: %w", err)
	}
	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		q.Enqueue(i)
	}
	if err := <-done; err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("throughput: %d ops in %v (%d ops/ms)\n",
		cfg.iterations, elapsed,
		int64(cfg.iterations)*int64(time.Millisecond)/elapsed.Nanoseconds())
	return nil
}

func runRTT(cfg config) error {
	q1, err := spsc.New[int](cfg.capacity)
	if err != nil {
		return err
	}
	q2, err := spsc.New[int](cfg.capacity)
	if err != nil {
		return err
	}

	pinned := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		err := affinity.Pin(cfg.consumerCPU)
		pinned <- err
		if err != nil {
			return
		}
		// Echo loop: inspect in place, bounce back, release.
		for i := 0; i < cfg.iterations; i++ {
			front := q1.Front()
			for spins := uint(0); front == nil; spins++ {
				if spins&spinYieldMask == spinYieldMask {
					runtime.Gosched()
				}
				front = q1.Front()
			}
			q2.Enqueue(*front)
			q1.Release()
		}
		done <- nil
	}()
	if err := <-pinned; err != nil {
		return fmt.Errorf("pin consumer: %w", err)
	}

	if err := affinity.Pin(cfg.producerCPU); err != nil {
		return fmt.Errorf("pin producer: %w", err)
	}
	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		q1.Enqueue(i)
		q2.Dequeue()
	}
	elapsed := time.Since(start)
	if err := <-done; err != nil {
		return err
	}

	fmt.Printf("rtt: %d round trips in %v (%d ns/rtt)\n",
		cfg.iterations, elapsed,
		elapsed.Nanoseconds()/int64(cfg.iterations))
	return nil
}
