package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/oracle"
)

func newBoundCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bound",
		Short: "Print the cycle-cover upper bound and the optimal pairing size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			raw, err := root.instance.matrix(cmd.InOrStdin())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			reduced, removed := compat.Reduce(raw)
			o := oracle.New(append(cfg.OracleOptions(), oracle.WithLogger(logger))...)

			ub, err := o.UpperBound(ctx, reduced)
			if err != nil {
				return err
			}
			pairs, err := o.OptimalPairing(ctx, reduced)
			if err != nil {
				return err
			}
			logger.DebugContext(ctx, "bound computed", slog.Int("bound", ub), slog.Int("pairs", len(pairs)))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "n=%d removed=%d matchable=%d\n", raw.N(), removed, len(reduced.Matchable()))
			fmt.Fprintf(w, "upper bound: %d\n", ub)
			_, err = fmt.Fprintf(w, "pairing: %d pairs, %d vertices\n", len(pairs), 2*len(pairs))

			return err
		},
	}
}
