package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/emrzvv/randkit/dist"
	"github.com/emrzvv/randkit/strided"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func parseParams(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad parameter %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	name := flag.String("dist", "normal", "catalog distribution name")
	params := flag.String("params", "0,1", "comma-separated bound parameters")
	n := flag.Int("n", 100000, "sample count")
	seed := flag.Uint("seed", 0, "generator seed, 0 = clock")
	family := flag.String("generator", "mt19937", "generator family")
	bins := flag.Int("bins", 60, "histogram bins")
	out := flag.String("o", "hist.png", "output image")
	flag.Parse()

	ps, err := parseParams(*params)
	if err != nil {
		log.Fatal(err)
	}

	cfg := dist.Config{Name: *family}
	if *seed != 0 {
		cfg.Seed = []uint32{uint32(*seed)}
	}
	f, err := dist.ByName(*name, cfg, ps...)
	if err != nil {
		log.Fatal(err)
	}

	vec, err := f.Array(*n, strided.Float64)
	if err != nil {
		log.Fatal(err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s%v, n=%d", *name, ps, *n)
	p.X.Label.Text = "value"
	p.Y.Label.Text = "density"
	h, err := plotter.NewHist(plotter.Values(vec.(strided.Float64Slice)), *bins)
	if err != nil {
		log.Fatal(err)
	}
	h.Normalize(1)
	p.Add(h)

	if err := p.Save(20*vg.Centimeter, 10*vg.Centimeter, *out); err != nil {
		log.Fatal(err)
	}
}
