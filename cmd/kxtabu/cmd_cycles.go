package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
)

func newCyclesCmd(root *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Count the cycles of length 2..k and the strongly connected components of the reduced instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := root.load(cmd)
			if err != nil {
				return err
			}
			raw, err := root.instance.matrix(cmd.InOrStdin())
			if err != nil {
				return err
			}
			reduced, _ := compat.Reduce(raw)
			k := cfg.Search.K

			w := cmd.OutOrStdout()
			comps := cycles.Components(reduced)
			largest := 0
			for _, c := range comps {
				largest = max(largest, len(c))
			}
			fmt.Fprintf(w, "components: %d (largest %d)\n", len(comps), largest)

			if limit > 0 {
				n, err := cycles.Count(reduced, k, limit)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "cycles (k=%d, limit %d): %d\n", k, limit, n)
				return err
			}

			cs, err := cycles.Enumerate(reduced, k)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "cycles (k=%d): %d\n", k, len(cs))
			for l, c := range cycles.LengthHistogram(cs) {
				if c > 0 {
					fmt.Fprintf(w, "  length %d: %d\n", l, c)
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop counting after this many cycles; 0 enumerates all")

	return cmd
}
