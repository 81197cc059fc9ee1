package export

import (
	da "github.com/lintang-b-s/navtrace/pkg/datastructure"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const GeoJSONMimeType = "application/geo+json"

func lineString(coords []geo.Coordinate) orb.LineString {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = orb.Point{c.Lon, c.Lat}
	}
	return ls
}

func point(c geo.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// RouteFeatureCollection builds the downloadable geojson of one result: the whole route polyline,
// the reconstructed path (when reachable) and the start / destination markers.
func RouteFeatureCollection(res *engine.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	routeFeature := geojson.NewFeature(lineString(da.Positions(res.Nodes)))
	routeFeature.Properties["kind"] = "route"
	routeFeature.Properties["profile"] = res.Profile
	routeFeature.Properties["nodes"] = len(res.Nodes)
	fc.Append(routeFeature)

	if res.Path.Reachable {
		pathFeature := geojson.NewFeature(lineString(res.Path.Positions))
		pathFeature.Properties["kind"] = "shortest_path"
		pathFeature.Properties["profile"] = res.Profile
		pathFeature.Properties["distance_m"] = res.Path.TotalDistance
		pathFeature.Properties["nodes"] = res.Path.Nodes
		fc.Append(pathFeature)
	}

	if len(res.Nodes) > 0 {
		start := geojson.NewFeature(point(res.Nodes[res.Trace.Start].Position))
		start.Properties["kind"] = "start"
		start.Properties["index"] = res.Trace.Start
		fc.Append(start)

		dest := geojson.NewFeature(point(res.Nodes[res.Target].Position))
		dest.Properties["kind"] = "destination"
		dest.Properties["index"] = res.Target
		dest.Properties["reachable"] = res.Path.Reachable
		fc.Append(dest)
	}

	return fc
}

// MarshalRoute renders RouteFeatureCollection as json.
func MarshalRoute(res *engine.Result) ([]byte, error) {
	return RouteFeatureCollection(res).MarshalJSON()
}
