// binom describes a binomial distribution, given its parameters or
// one parameter and a target statistic to fit the other to.
//
// Usage:
//
//	binom -n 10 -p 0.5
//	binom -n 10 -mean 2
//	binom -p 0.25 -var 1.5
//	binom -n 10 -pmf 5=0.24609375
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/randvar/go-randvar/plot"
	"github.com/randvar/go-randvar/stats"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("binom failed", "args", os.Args[1:], "err", err)
		os.Exit(1)
	}
}

// config is the parsed command line.
type config struct {
	fit   stats.BinomialFit
	width int

	// target is the name of the fitting flag that was given, or ""
	// if the distribution is fully specified.
	target string
	value  float64
	pmfX   float64
}

func parseArgs(args []string) (*config, error) {
	fs := flag.NewFlagSet("binom", flag.ContinueOnError)
	n := fs.Int("n", -1, "number of `trials`; omit to fit")
	p := fs.Float64("p", math.NaN(), "success `probability`; omit to fit")
	mean := fs.Float64("mean", 0, "fit the unknown parameter to this mean")
	variance := fs.Float64("var", 0, "fit the unknown parameter to this variance")
	stddev := fs.Float64("stddev", 0, "fit the unknown parameter to this standard deviation")
	pmf := fs.String("pmf", "", "fit p so that PMF(x) = P, given as `x=P`")
	width := fs.Int("width", 50, "`columns` of the PMF plot")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	cfg := &config{fit: stats.BinomialFit{N: *n, P: *p}, width: *width}
	var err error
	fs.Visit(func(f *flag.Flag) {
		var v float64
		switch f.Name {
		case "mean":
			v = *mean
		case "var":
			v = *variance
		case "stddev":
			v = *stddev
		case "pmf":
			x, prob, ok := strings.Cut(*pmf, "=")
			if !ok {
				err = fmt.Errorf("-pmf %q: want x=P", *pmf)
				return
			}
			if cfg.pmfX, err = strconv.ParseFloat(x, 64); err != nil {
				return
			}
			if v, err = strconv.ParseFloat(prob, 64); err != nil {
				return
			}
		default:
			return
		}
		if cfg.target != "" && err == nil {
			err = fmt.Errorf("-%s and -%s are mutually exclusive", cfg.target, f.Name)
		}
		cfg.target, cfg.value = f.Name, v
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve returns the distribution described by cfg.
func (cfg *config) resolve() (stats.BinomialDist, error) {
	switch cfg.target {
	case "":
		if cfg.fit.N < 0 || math.IsNaN(cfg.fit.P) {
			return stats.BinomialDist{}, errors.New("need both -n and -p, or one of them and a fitting flag")
		}
		return stats.NewBinomialDist(cfg.fit.N, cfg.fit.P)
	case "mean":
		return cfg.fit.Mean(cfg.value)
	case "var":
		return cfg.fit.Variance(cfg.value)
	case "stddev":
		return cfg.fit.StdDev(cfg.value)
	case "pmf":
		// The fitted parameter is always p.
		fit := cfg.fit
		fit.P = math.NaN()
		return fit.PMF(cfg.pmfX, cfg.value)
	}
	panic("unknown fitting flag " + cfg.target)
}

func run(args []string, w io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	dist, err := cfg.resolve()
	if err != nil {
		return err
	}
	return describe(w, dist, cfg.width)
}

// describe prints the moments of dist, its PMF and CDF over the
// support, and a plot of the PMF.
func describe(w io.Writer, dist stats.BinomialDist, width int) error {
	fmt.Fprintf(w, "%v  mean %.6g  variance %.6g  std dev %.6g\n", dist, dist.Mean(), dist.Variance(), dist.StdDev())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%8s %12s %12s\n", "x", "pmf", "cdf")
	for k := 0; k <= dist.N; k++ {
		x := float64(k)
		fmt.Fprintf(w, "%8d %12.6g %12.6g\n", k, dist.PMF(x), dist.CDF(x))
	}
	fmt.Fprintln(w)

	return dist.PMFShape(plot.NewText(w), plot.IntSpan(0, dist.N), plot.WithWidth(width))
}
