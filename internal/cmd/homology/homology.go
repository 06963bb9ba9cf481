// SPDX-License-Identifier: MIT

// Package homology implements the homology command: it loads a chain complex
// (explicit boundary maps or a simplicial complex) from YAML, verifies the
// chain condition, reduces every map and prints the Betti numbers.
package homology

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/ring"
	"github.com/katalvlaran/homology/simplicial"
)

// ErrChainCondition is returned when some d_i · d_{i−1} is nonzero.
var ErrChainCondition = errors.New("chain condition violated")

// Config holds homology command configuration.
type Config struct {
	Input   string `env:"HOMOLOGY_INPUT"`
	Ring    string `env:"HOMOLOGY_RING"`
	Closure bool   `env:"HOMOLOGY_CLOSURE"`
	Check   bool   `env:"HOMOLOGY_CHECK"   envDefault:"true"`
	Verbose bool   `env:"HOMOLOGY_VERBOSE"`
}

// ParseConfig parses environment variables, then flags, into a Config.
// A single positional argument is taken as the input path.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "path to YAML complex")
	fs.StringVar(&cfg.Ring, "ring", cfg.Ring, "coefficient ring override: int, mod:<p>, float[:eps]")
	fs.BoolVar(&cfg.Closure, "closure", cfg.Closure, "add missing faces of listed simplices")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "verify d_i·d_{i-1} = 0 before reducing")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	return cfg, nil
}

// Run executes the homology command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Input == "" {
		return errors.New("input path is required")
	}

	logger := log.New(errOut, "", 0)
	if !cfg.Verbose {
		logger.SetOutput(io.Discard)
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.Input, err)
	}

	name := doc.Ring
	if cfg.Ring != "" {
		name = cfg.Ring
	}
	rs, err := ParseRing(name)
	if err != nil {
		return err
	}
	logger.Printf("ring %s", rs)
	fmt.Fprintf(out, "ring: %s\n", rs)

	r := runner{cfg: cfg, out: out, logger: logger}
	switch rs.Kind {
	case RingMod:
		m, err := ring.NewMod(rs.Modulus)
		if err != nil {
			return err
		}
		return execute[uint64](ctx, r, doc, m, m.FromInt)
	case RingFloat:
		return execute[float64](ctx, r, doc, ring.Float[float64]{Eps: rs.Eps}, func(x int64) float64 { return float64(x) })
	default:
		return execute[int64](ctx, r, doc, ring.Int[int64]{}, func(x int64) int64 { return x })
	}
}

type runner struct {
	cfg    Config
	out    io.Writer
	logger *log.Logger
}

// execute builds the complex over rg and prints maps, echelon forms and Betti numbers.
func execute[T any](ctx context.Context, r runner, doc Document, rg ring.Ring[T], conv func(int64) T) error {
	cx, err := buildComplex(r, doc, rg, conv)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "maps:")
	printMaps(r.out, cx, false)

	if r.cfg.Check {
		ok, err := cx.CheckHomology()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out, "chain condition: violated")
			return ErrChainCondition
		}
		fmt.Fprintln(r.out, "chain condition: ok")
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	r.logger.Printf("reducing %d maps", cx.Len())
	cx.Reduce()
	fmt.Fprintln(r.out, "echelon:")
	printMaps(r.out, cx, true)

	betti, err := cx.Betti()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "betti: %v\n", betti)

	return nil
}

func buildComplex[T any](r runner, doc Document, rg ring.Ring[T], conv func(int64) T) (*chain.Complex[T], error) {
	if len(doc.Simplices) > 0 {
		var opts []simplicial.Option
		if r.cfg.Closure {
			opts = append(opts, simplicial.WithClosure())
		}
		sc, err := simplicial.Build(doc.Simplices, opts...)
		if err != nil {
			return nil, err
		}
		for k := 0; k <= sc.Dim(); k++ {
			r.logger.Printf("dimension %d: %d simplices %v", k, sc.Count(k), sc.Simplices(k))
		}
		return simplicial.ChainOf(sc, rg)
	}

	maps := make([]*matrix.Dense[T], len(doc.Maps))
	for i, ms := range doc.Maps {
		m, err := toDense(rg, ms, conv)
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", i, err)
		}
		r.logger.Printf("map %d: %dx%d", i, m.Rows(), m.Cols())
		maps[i] = m
	}

	return chain.New(maps...)
}

// toDense converts an integer MapSpec into a matrix over rg.
func toDense[T any](rg ring.Ring[T], ms MapSpec, conv func(int64) T) (*matrix.Dense[T], error) {
	if len(ms.Data) == 0 {
		return matrix.New(rg, ms.Rows, ms.Cols)
	}
	rows := make([][]T, len(ms.Data))
	for i, src := range ms.Data {
		rows[i] = make([]T, len(src))
		for j, v := range src {
			rows[i][j] = conv(v)
		}
	}
	m, err := matrix.FromRows(rg, rows)
	if err != nil {
		return nil, err
	}
	if m.Cols() != ms.Cols {
		return nil, fmt.Errorf("declared %d cols, got %d: %w", ms.Cols, m.Cols(), matrix.ErrDimensionMismatch)
	}

	return m, nil
}

func printMaps[T any](out io.Writer, cx *chain.Complex[T], withRank bool) {
	for i := 0; i < cx.Len(); i++ {
		m, _ := cx.At(i) // i is in range
		if withRank {
			fmt.Fprintf(out, "d%d (%dx%d, rank %d):\n%v", i, m.Rows(), m.Cols(), m.Rank(), m)
			continue
		}
		fmt.Fprintf(out, "d%d (%dx%d):\n%v", i, m.Rows(), m.Cols(), m)
	}
}
