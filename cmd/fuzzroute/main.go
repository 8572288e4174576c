// Command fuzzroute optimizes cross-border truck routing for a JSON
// problem instance and reports the best assignment found.
//
// Usage:
//
//	fuzzroute -data instance.json [-config config.yaml] [-iterations N]
//	          [-seed N] [-out results.json] [-v]
//
// Flags override the config file, which overrides built-in defaults.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/fuzzroute/anneal"
	"github.com/katalvlaran/fuzzroute/config"
	"github.com/katalvlaran/fuzzroute/cost"
	"github.com/katalvlaran/fuzzroute/dataset"
	"github.com/katalvlaran/fuzzroute/fuzzy"
	"github.com/katalvlaran/fuzzroute/network"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fuzzroute: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		dataPath   = flag.String("data", "", "problem instance JSON (required)")
		configPath = flag.String("config", "", "YAML configuration file")
		iterations = flag.Int("iterations", 0, "override annealing iterations")
		seed       = flag.Int64("seed", 0, "override RNG seed")
		outPath    = flag.String("out", "", "write results JSON to this file")
		verbose    = flag.Bool("v", false, "per-shipment route detail")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *dataPath == "" {
		*dataPath = cfg.Data
	}
	if *dataPath == "" {
		flag.Usage()
		return fmt.Errorf("missing -data")
	}
	if *outPath == "" {
		*outPath = cfg.Output
	}

	opts := cfg.AnnealOptions()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			opts.MaxIterations = *iterations
		case "seed":
			opts.Seed = *seed
		}
	})

	inst, err := dataset.Load(*dataPath)
	if err != nil {
		return err
	}
	net, err := inst.BuildNetwork()
	if err != nil {
		return err
	}
	model, err := cost.NewModel(cfg.CostRates())
	if err != nil {
		return err
	}

	log.Printf("instance: %d locations, %d routes, %d vehicles, %d shipments",
		len(inst.Nodes), len(inst.Edges), len(inst.Vehicles), len(inst.Shipments))

	initial, err := anneal.BuildInitial(inst.Vehicles, inst.Shipments, net, opts)
	if err != nil {
		return err
	}
	initialCost, err := model.SolutionCost(initial, net)
	if err != nil {
		return err
	}
	log.Printf("initial solution: $%.2f over %d vehicle(s)",
		initialCost.Centroid(), initial.VehiclesUsed())

	res, err := anneal.Optimize(initial, net, model, opts)
	if err != nil {
		return err
	}

	verdict := dataset.Check(res.Best, inst.Shipments)
	report(res, verdict, net, model, *verbose)

	if *outPath != "" {
		if err := writeResults(*outPath, res, verdict, net, model); err != nil {
			return err
		}
		log.Printf("results written to %s", *outPath)
	}
	if !verdict.Feasible {
		return fmt.Errorf("final solution failed validation")
	}

	return nil
}

func report(res anneal.Result, verdict dataset.Verdict, net *network.Network, model cost.Model, verbose bool) {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println("OPTIMIZATION RESULTS")
	fmt.Println(line)

	fmt.Printf("Best Solution Cost: $%.2f  (fuzzy: %.2f / %.2f / %.2f)\n",
		res.Cost.Centroid(), res.Cost.A, res.Cost.B, res.Cost.C)
	fmt.Printf("Vehicles Used: %d\n", res.Best.VehiclesUsed())
	fmt.Printf("Total Shipments: %d\n", res.Best.ShipmentCount())
	fmt.Printf("Solution Valid: %v\n", verdict.Feasible)

	st := res.Stats
	fmt.Println("\n--- Optimization Statistics ---")
	fmt.Printf("Run ID: %s\n", st.RunID)
	fmt.Printf("Iterations: %d (no-ops: %d)\n", st.Iterations, st.NoOps)
	fmt.Printf("Accepted: %d  Rejected: %d  Improvements: %d\n",
		st.Accepted, st.Rejected, st.Improvements)
	fmt.Printf("Acceptance Rate: %.1f%%\n", st.AcceptanceRate*100)
	fmt.Printf("Final Temperature: %.3f\n", st.FinalTemperature)

	fmt.Println("\n--- Vehicle Details ---")
	for _, r := range res.Best.Routes {
		fmt.Printf("\n%s:\n", r.Vehicle.ID)
		if len(r.Shipments) == 0 {
			fmt.Println("  No shipments assigned")
			continue
		}

		stops := r.Stops()
		fmt.Printf("  Route: %s\n", strings.Join(append([]string{r.Vehicle.Base}, stops...), " -> "))

		if b, err := model.RouteBreakdown(r, net); err == nil {
			fmt.Printf("  Cost: $%.2f\n", b.Total.Centroid())
			fmt.Printf("  Distance: %.2f km\n", b.Distance)
			fmt.Printf("  Border Crossings: %d\n", b.BorderCrossings)
			fmt.Printf("  Trip Days: %d\n", b.TripDays)
		}
		fmt.Printf("  Volume Utilization: %.1f%%\n", 100*r.Volume()/r.Vehicle.MaxVolume)
		fmt.Printf("  Weight Utilization: %.1f%%\n", 100*r.Weight()/r.Vehicle.MaxWeight)

		if verbose {
			fmt.Printf("  Shipments (%d):\n", len(r.Shipments))
			for _, s := range r.Shipments {
				fmt.Printf("    - %s: %.2f CBM, %.0f kg -> %s\n",
					s.ID, s.Volume, s.Weight, s.Destination)
			}
		}
	}

	if len(verdict.Violations) > 0 {
		fmt.Println("\n--- Violations ---")
		for _, v := range verdict.Violations {
			fmt.Printf("  ! %s\n", v)
		}
	}
	if len(verdict.Warnings) > 0 {
		fmt.Println("\n--- Warnings ---")
		for _, w := range verdict.Warnings {
			fmt.Printf("  * %s\n", w)
		}
	}

	fmt.Println("\n" + line)
}

// Result file shapes.

type resultsFile struct {
	Stats    anneal.Stats    `json:"stats"`
	Cost     fuzzyJSON       `json:"cost"`
	Verdict  dataset.Verdict `json:"verdict"`
	Vehicles []vehicleResult `json:"vehicles"`
}

type fuzzyJSON struct {
	Min      float64 `json:"min"`
	Typical  float64 `json:"typical"`
	Max      float64 `json:"max"`
	Expected float64 `json:"expected"`
}

type vehicleResult struct {
	ID              string    `json:"id"`
	Route           []string  `json:"route"`
	Distance        float64   `json:"distance_km"`
	BorderCrossings int       `json:"border_crossings"`
	TripDays        int       `json:"trip_days"`
	Cost            fuzzyJSON `json:"cost"`
	Shipments       []string  `json:"shipments"`
}

func toFuzzyJSON(t fuzzy.Triangular) fuzzyJSON {
	return fuzzyJSON{Min: t.A, Typical: t.B, Max: t.C, Expected: t.Centroid()}
}

func writeResults(path string, res anneal.Result, verdict dataset.Verdict, net *network.Network, model cost.Model) error {
	out := resultsFile{
		Stats:   res.Stats,
		Cost:    toFuzzyJSON(res.Cost),
		Verdict: verdict,
	}

	for _, r := range res.Best.Routes {
		vr := vehicleResult{ID: r.Vehicle.ID, Route: r.Stops()}
		for _, s := range r.Shipments {
			vr.Shipments = append(vr.Shipments, s.ID)
		}
		if len(r.Shipments) > 0 {
			b, err := model.RouteBreakdown(r, net)
			if err != nil {
				return err
			}
			vr.Distance = b.Distance
			vr.BorderCrossings = b.BorderCrossings
			vr.TripDays = b.TripDays
			vr.Cost = toFuzzyJSON(b.Total)
		}
		out.Vehicles = append(out.Vehicles, vr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
