package main

import (
	"fmt"
	"os"

	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/export"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/lintang-b-s/navtrace/pkg/logger"
	"github.com/lintang-b-s/navtrace/pkg/navigation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func loadPoints() ([]geo.Coordinate, error) {
	if polylineArg != "" {
		return geo.DecodePolyline(polylineArg, precision)
	}

	f, err := os.Open(coordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCoordinates(f)
}

func runTrace(cmd *cobra.Command, args []string) error {
	log, err := logger.New()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

	points, err := loadPoints()
	if err != nil {
		return fmt.Errorf("read route: %w", err)
	}

	in := engine.NewRouteInput(profile, points)
	in.Start = startNode
	in.Target = da.NoVertex
	if targetNode >= 0 {
		in.Target = targetNode
	}
	in.Duration = routeSeconds

	e := engine.NewEngine(log, geo.HaversineDistance, viper.GetInt("TRACE_MAX_POINTS"), 1)
	res, err := e.Compute(in)
	if err != nil {
		return err
	}

	if units == "" {
		units = viper.GetString("DISTANCE_UNITS")
	}

	out := cmd.OutOrStdout()
	renderAdjacency(out, res)
	if showSteps {
		for c := navigation.NewCursor(res.Trace); ; c = c.Next() {
			renderStep(out, navigation.View(c, res.Nodes), res.Nodes)
			if c.Index() == c.LastIndex() {
				break
			}
		}
	}
	renderPath(out, res, units)

	if geojsonOut != "" {
		body, err := export.MarshalRoute(res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(geojsonOut, body, 0o644); err != nil { //nolint:gosec // user chosen output file
			return err
		}
		fmt.Fprintf(out, "geojson written to %s\n", geojsonOut)
	}
	return nil
}
