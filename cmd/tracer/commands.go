package main

import (
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	polylineArg  string
	precision    int
	coordsFile   string
	profile      string
	startNode    int
	targetNode   int
	units        string
	geojsonOut   string
	showSteps    bool
	routeSeconds float64

	rootCmd = &cobra.Command{
		Use:   "tracer",
		Short: "Step by step dijkstra over a route polyline",
		Long: `tracer builds the path graph of a route polyline, records a snapshot of
dijkstra before every node selection and prints the shortest path to the destination.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return util.ReadConfig()
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Trace one route given as an encoded polyline or a coordinates file",
		Example: `  tracer run --polyline '_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@'
  tracer run --file route.txt --units mi --geojson route.geojson`,
		RunE: runTrace, // Defined in cmd_run.go
	}
)

func init() {
	runCmd.Flags().StringVar(&polylineArg, "polyline", "", "encoded route polyline")
	runCmd.Flags().IntVar(&precision, "precision", 5, "polyline precision (5 or 6 for most providers)")
	runCmd.Flags().StringVar(&coordsFile, "file", "", "file with one 'lat,lon' per line")
	runCmd.Flags().StringVar(&profile, "profile", engine.ProfileDrivingCar, "transport profile label")
	runCmd.Flags().IntVar(&startNode, "start", 0, "start node index")
	runCmd.Flags().IntVar(&targetNode, "target", -1, "destination node index, -1 for the last point")
	runCmd.Flags().StringVar(&units, "units", "", "distance units, km or mi (default DISTANCE_UNITS)")
	runCmd.Flags().StringVar(&geojsonOut, "geojson", "", "write route and path as geojson to this file")
	runCmd.Flags().BoolVar(&showSteps, "steps", true, "print every dijkstra step")
	runCmd.Flags().Float64Var(&routeSeconds, "duration", 0, "route travel time in seconds, printed with the path")
	runCmd.MarkFlagsMutuallyExclusive("polyline", "file")
	runCmd.MarkFlagsOneRequired("polyline", "file")

	rootCmd.AddCommand(runCmd)
}
