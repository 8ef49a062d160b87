package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/config"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/jumpstart"
	"github.com/katalvlaran/kxtabu/oracle"
	"github.com/katalvlaran/kxtabu/packing"
	"github.com/katalvlaran/kxtabu/tabu"
	"github.com/katalvlaran/kxtabu/telemetry"
)

type runFlags struct {
	timeLimit   time.Duration
	seed        int64
	json        bool
	metricsAddr string
}

// report is the outcome of one pipeline run, in original vertex labels.
type report struct {
	RunID        string        `json:"run_id"`
	Outcome      string        `json:"outcome"`
	N            int           `json:"n"`
	Removed      int           `json:"removed"`
	Matchable    int           `json:"matchable"`
	K            int           `json:"k"`
	UpperBound   int           `json:"upper_bound"`
	Initial      int           `json:"initial_objective"`
	Objective    int           `json:"objective"`
	Score        float64       `json:"score"`
	Iterations   int           `json:"iterations"`
	Elapsed      string        `json:"elapsed"`
	Cycles       [][]int       `json:"cycles"`
	Improvements []improvement `json:"improvements"`
}

type improvement struct {
	Iteration int    `json:"iteration"`
	Elapsed   string `json:"elapsed"`
	Objective int    `json:"objective"`
}

func newRunCmd(root *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reduce, bound, jump-start and tabu-search an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("time-limit") {
				cfg.Search.TimeLimit = f.timeLimit
			}
			if cmd.Flags().Changed("seed") {
				cfg.Search.Seed = f.seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			raw, err := root.instance.matrix(cmd.InOrStdin())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(reg)
			if f.metricsAddr != "" {
				stop, err := serveMetrics(f.metricsAddr, reg, logger)
				if err != nil {
					return err
				}
				defer stop()
			}

			rep, runErr := runPipeline(cmd.Context(), cfg, raw, logger, metrics)
			if rep != nil {
				if err := writeReport(cmd.OutOrStdout(), rep, f.json); err != nil {
					return err
				}
			}

			return runErr
		},
	}
	fl := cmd.Flags()
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "override search.time_limit")
	fl.Int64Var(&f.seed, "seed", 0, "override search.seed")
	fl.BoolVar(&f.json, "json", false, "print the report as JSON")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")

	return cmd
}

// runPipeline prepares raw, builds the jump start and runs the search.
// A report is returned whenever the search itself ran, also with an error.
func runPipeline(ctx context.Context, cfg config.Config, raw compat.Matrix, logger *slog.Logger, metrics *telemetry.Metrics) (*report, error) {
	reduced, removed := compat.Reduce(raw)
	work, perm := reduced, compat.Permutation{}
	ord, reorder := cfg.Reorder()
	if reorder {
		work, perm = compat.OrderByDegree(reduced, ord)
	}
	logger.InfoContext(ctx, "instance prepared",
		slog.Int("n", raw.N()),
		slog.Int("arcs", raw.EdgeCount()),
		slog.Int("removed", removed),
		slog.Bool("reordered", reorder),
	)

	o := oracle.New(append(cfg.OracleOptions(), oracle.WithLogger(logger), oracle.WithMetrics(metrics))...)
	tc := cfg.TabuConfig()
	if tc.UpperBound == 0 {
		ub, err := o.UpperBound(ctx, work)
		if err != nil {
			return nil, err
		}
		tc.UpperBound = ub
	}

	initial, err := jumpstart.Build(ctx, work, tc.K, o,
		append(cfg.JumpStartOptions(), jumpstart.WithLogger(logger), jumpstart.WithMetrics(metrics))...)
	if err != nil {
		return nil, err
	}

	engine, err := tabu.New(work, initial, o, tc, tabu.WithLogger(logger), tabu.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}
	res, runErr := engine.Run(ctx)

	best := res.Best
	if reorder {
		relabelled := make([]cycles.Cycle, 0, best.Len())
		for _, c := range best.Cycles() {
			relabelled = append(relabelled, cycles.Cycle(perm.Original(c)).Canonical())
		}
		if best, err = packing.FromCycles(cycles.Score(raw), relabelled...); err != nil {
			return nil, err
		}
	}
	if err := packing.Validate(raw, best); err != nil {
		return nil, fmt.Errorf("final packing: %w", err)
	}

	rep := &report{
		RunID:      res.RunID,
		Outcome:    res.Outcome.String(),
		N:          raw.N(),
		Removed:    removed,
		Matchable:  len(work.Matchable()),
		K:          tc.K,
		UpperBound: tc.UpperBound,
		Initial:    initial.Objective(),
		Objective:  best.Objective(),
		Score:      best.Score(),
		Iterations: res.Iterations,
		Elapsed:    res.Elapsed.String(),
		Cycles:     make([][]int, 0, best.Len()),
	}
	for _, c := range best.Cycles() {
		rep.Cycles = append(rep.Cycles, []int(c))
	}
	for _, imp := range res.Improvements {
		rep.Improvements = append(rep.Improvements, improvement{
			Iteration: imp.Iteration,
			Elapsed:   imp.Elapsed.String(),
			Objective: imp.Objective,
		})
	}

	return rep, runErr
}

func writeReport(w io.Writer, rep *report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "run %s: %s after %d iterations (%s)\n", rep.RunID, rep.Outcome, rep.Iterations, rep.Elapsed)
	fmt.Fprintf(w, "instance: n=%d removed=%d matchable=%d k=%d\n", rep.N, rep.Removed, rep.Matchable, rep.K)
	fmt.Fprintf(w, "objective: %d (initial %d, bound %d) score=%.3f\n", rep.Objective, rep.Initial, rep.UpperBound, rep.Score)
	for _, c := range rep.Cycles {
		if _, err := fmt.Fprintf(w, "  %v\n", cycles.Cycle(c)); err != nil {
			return err
		}
	}

	return nil
}

// serveMetrics exposes reg on addr until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
