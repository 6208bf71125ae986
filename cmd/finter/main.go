// Command finter interpolates a series of points and prints the value,
// sampled curve and formulas of every requested variant.
//
// Usage:
//
//	finter -points "0,1; 1,3; 2,7" -x 1.5,3 -variant all -steps
//	finter -config finter.yaml -metrics :9100
//
// Formulas are passed through a bounded render cache; the built-in renderer
// only assigns each formula an asset handle, standing in for a rasterizer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/katalvlaran/finter/collection"
	"github.com/katalvlaran/finter/config"
	"github.com/katalvlaran/finter/dataset"
	"github.com/katalvlaran/finter/formula"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/rendercache"
	"github.com/katalvlaran/finter/series"
)

// asset is the handle the demo renderer produces for one formula.
type asset struct {
	ID   uuid.UUID
	Text string
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML configuration file")
		points  = flag.String("points", "", `samples as "x0,y0; x1,y1; ..."`)
		name    = flag.String("name", "", "dataset name")
		variant = flag.String("variant", "all", "lagrange, newton-forward, newton-backward or all")
		at      = flag.String("x", "", "comma separated abscissas to evaluate")
		steps   = flag.Bool("steps", false, "print the step-by-step derivation")
		sample  = flag.Bool("sample", false, "print the sampled curve over the data bounds")
		coeffs  = flag.Bool("coeffs", false, "print the power-basis coefficients")
		lenient = flag.Bool("lenient", false, "read unparsable literals as 0")
		metrics = flag.String("metrics", "", "serve prometheus metrics on this address")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		cfg = config.MustLoad(*cfgPath)
	}
	lvl, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(lvl)
	if *metrics != "" {
		cfg.Metrics.Addr = *metrics
	}
	if *lenient {
		cfg.Series.Lenient = true
	}

	if err := run(cfg, *points, *name, *variant, *at, *steps, *sample, *coeffs); err != nil {
		log.Error().Err(err).Msg("finter failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, points, name, variant, at string, steps, sample, coeffs bool) error {
	variants, err := parseVariants(variant)
	if err != nil {
		return err
	}
	xs, err := parseAbscissas(at)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	if cfg.Metrics.Addr != "" {
		serveMetrics(cfg.Metrics.Addr, reg)
	}

	cache, err := rendercache.New[asset](cfg.Cache.Capacity, releaseAsset,
		rendercache.WithRegisterer(reg),
		rendercache.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	defer cache.Purge()

	c := collection.New(
		collection.WithLogger(log.Logger),
		collection.WithFormatter(formula.NewFormatter(formula.WithPrecision(cfg.Formula.Precision))),
		collection.WithNameLimit(cfg.Dataset.MaxNameLen),
	)

	var parseOpts []series.Option
	if cfg.Series.Lenient {
		parseOpts = append(parseOpts, series.WithLenient())
	}
	for _, seed := range cfg.Datasets {
		if _, err := c.AddText(seed.Name, seed.Points, parseOpts...); err != nil {
			return fmt.Errorf("dataset %q: %w", seed.Name, err)
		}
	}
	if points != "" {
		if _, err := c.AddText(name, points, parseOpts...); err != nil {
			return err
		}
	}
	if c.Len() == 0 {
		return errors.New("no datasets: pass -points or list datasets in the config")
	}

	for _, id := range c.IDs() {
		d, err := c.Get(id)
		if err != nil {
			return err
		}
		if err := report(c, cache, id, d, variants, xs, cfg.Sample.Steps, steps, sample, coeffs); err != nil {
			return err
		}
	}

	return nil
}

func report(c *collection.Collection, cache *rendercache.Cache[asset], id collection.ID, d *dataset.Dataset,
	variants []interp.Variant, xs []float64, sampleSteps int, steps, sample, coeffs bool) error {
	snap := d.Snapshot()
	fmt.Printf("# %s (%d points, equidistant=%t)\n", snap.Name, len(snap.Points), snap.Equidistant)
	for _, line := range d.Describe() {
		fmt.Println("  ", line)
	}
	if i, j, dup := interp.DuplicateAbscissa(snap.Points); dup {
		log.Warn().Uint64("id", uint64(id)).Int("i", i).Int("j", j).Msg("duplicate abscissa, results are not finite")
	}

	for _, v := range variants {
		fmt.Printf("## %s\n", v)
		lines, err := c.Formula(id, v, steps)
		if err != nil {
			return err
		}
		for _, line := range lines {
			a, err := cache.GetOrRender(line, renderAsset)
			if err != nil {
				return err
			}
			fmt.Printf("   %s  [%s]\n", line, a.ID)
		}
		for _, x := range xs {
			y, err := c.Evaluate(id, v, x)
			if err != nil {
				return err
			}
			fmt.Printf("   P(%g) = %g\n", x, y)
		}
		if sample {
			if err := printSample(c, id, v, snap.Points, sampleSteps); err != nil {
				return err
			}
		}
	}

	if coeffs {
		cs, err := d.Coefficients()
		if err != nil {
			log.Warn().Err(err).Uint64("id", uint64(id)).Msg("power-basis coefficients")
		}
		if cs != nil {
			fmt.Printf("## coefficients (c0 + c1 x + ...)\n   %v\n", cs)
		}
	}

	return nil
}

func printSample(c *collection.Collection, id collection.ID, v interp.Variant, pts []series.Point, n int) error {
	r, ok := series.Bounds(pts)
	if !ok || r.Width() == 0 {
		log.Debug().Uint64("id", uint64(id)).Msg("no range to sample")

		return nil
	}
	curve, err := c.Sample(id, v, r.MinX, r.MaxX, n)
	if err != nil {
		return err
	}
	fmt.Printf("   sample: %s\n", series.Format(curve))

	return nil
}

func parseVariants(s string) ([]interp.Variant, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return interp.Variants(), nil
	}
	var out []interp.Variant
	for _, name := range strings.Split(s, ",") {
		v, err := interp.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func parseAbscissas(s string) ([]float64, error) {
	var xs []float64
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok == "" {
			continue
		}
		x, err := cast.ToFloat64E(tok)
		if err != nil {
			return nil, fmt.Errorf("abscissa %q: %w", tok, err)
		}
		xs = append(xs, x)
	}

	return xs, nil
}

func renderAsset(text string) (asset, error) {
	return asset{ID: uuid.New(), Text: text}, nil
}

func releaseAsset(text string, a asset) {
	log.Debug().Str("asset", a.ID.String()).Int("len", len(text)).Msg("formula asset released")
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")
}
