package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kxtabu/builder"
	"github.com/katalvlaran/kxtabu/compat"
)

var errNoInstance = errors.New("no instance: pass --input or --random-n")

// instanceFile is the JSON edge-list format read by --input.
type instanceFile struct {
	N     int      `json:"n"`
	Edges [][2]int `json:"edges"`
}

type instanceFlags struct {
	input   string
	n       int
	p       float64
	planted []int
	seed    int64
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.input, "input", "", `JSON edge list {"n":..,"edges":[[u,v],..]}; "-" reads stdin`)
	pf.IntVar(&f.n, "random-n", 0, "generate an instance with this many vertices")
	pf.Float64Var(&f.p, "random-p", 0.05, "arc probability of the generated instance")
	pf.IntSliceVar(&f.planted, "planted", nil, "cycle lengths to plant in the generated instance")
	pf.Int64Var(&f.seed, "gen-seed", 1, "seed of the instance generator")
}

// matrix reads or generates the instance.
func (f *instanceFlags) matrix(stdin io.Reader) (compat.Matrix, error) {
	switch {
	case f.input != "":
		return f.read(stdin)
	case f.n > 0 && len(f.planted) > 0:
		m, _, err := builder.Planted(f.n, f.planted, f.p, builder.WithSeed(f.seed))
		return m, err
	case f.n > 0:
		return builder.RandomSparse(f.n, f.p, builder.WithSeed(f.seed))
	default:
		return compat.Matrix{}, errNoInstance
	}
}

func (f *instanceFlags) read(stdin io.Reader) (compat.Matrix, error) {
	r := stdin
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return compat.Matrix{}, err
		}
		defer file.Close()
		r = file
	}

	var in instanceFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return compat.Matrix{}, fmt.Errorf("decode %s: %w", f.input, err)
	}
	edges := make([]compat.Edge, len(in.Edges))
	for i, e := range in.Edges {
		edges[i] = compat.Edge{From: e[0], To: e[1]}
	}

	return compat.New(in.N, edges)
}
