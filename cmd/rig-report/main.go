package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/signalsfoundry/flapper-rig/core"
	"github.com/signalsfoundry/flapper-rig/model"
)

func main() {
	rigPath := flag.String("rig", "", "path to a JSON rig definition (defaults to the built-in resonant-flapper rig)")
	format := flag.String("format", "text", "output format: text or json")
	flag.Parse()

	rig, err := loadRig(*rigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rig-report: %v\n", err)
		os.Exit(1)
	}

	breakdown, err := core.Estimate(rig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rig-report: estimate %q: %v\n", rig.Name, err)
		os.Exit(1)
	}

	switch *format {
	case "text":
		if err := core.WriteReport(os.Stdout, rig.Name, breakdown); err != nil {
			fmt.Fprintf(os.Stderr, "rig-report: write report: %v\n", err)
			os.Exit(1)
		}
	case "json":
		out := struct {
			Rig       string          `json:"rig"`
			Breakdown *core.Breakdown `json:"breakdown"`
		}{Rig: rig.Name, Breakdown: breakdown}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "rig-report: encode JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "rig-report: unknown format %q (want text or json)\n", *format)
		os.Exit(2)
	}
}

func loadRig(path string) (model.RigDefinition, error) {
	if path == "" {
		return core.DefaultRig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return model.RigDefinition{}, fmt.Errorf("open rig definition %q: %w", path, err)
	}
	defer f.Close()

	rig, err := core.LoadRigDefinition(f)
	if err != nil {
		return model.RigDefinition{}, fmt.Errorf("load rig definition %q: %w", path, err)
	}
	return rig, nil
}
