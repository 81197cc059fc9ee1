package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navtrace/pkg/export"
	helper "github.com/lintang-b-s/navtrace/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/navtrace/pkg/navigation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

type traceAPI struct {
	traceService TraceService
	hub          *Hub
	log          *zap.Logger
}

func New(traceService TraceService, hub *Hub, log *zap.Logger) *traceAPI {
	return &traceAPI{
		traceService: traceService,
		hub:          hub,
		log:          log,
	}
}

func (api *traceAPI) Routes(group *helper.RouteGroup) {
	group.POST("/trace", api.trace)
	group.GET("/trace/:id", api.getTrace)
	group.GET("/trace/:id/steps/:step", api.getStep)
	group.GET("/trace/:id/geojson", api.downloadGeoJSON)
	group.GET("/trace/:id/ws", api.stepper)
}

// trace godoc
//
//	@Summary		trace dijkstra over one route polyline per transport profile
//	@Description	builds the path graph of every route, records one snapshot per dijkstra iteration and reconstructs the path to the destination
//	@Tags			trace
//	@Accept			json
//	@Produce		json
//	@Param			body	body		traceRequest	true	"routes to trace"
//	@Success		200		{object}	[]traceResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/trace [post]
func (api *traceAPI) trace(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request traceRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if (request.TargetLat == nil) != (request.TargetLon == nil) {
		api.BadRequestResponse(w, r, errors.New("target_lat and target_lon must be given together"))
		return
	}

	results, err := api.traceService.TraceRoutes(r.Context(), request.toQueries())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	units := unitsOrDefault(request.Units)
	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTraceResponses(results, units)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// getTrace godoc
//
//	@Summary	get a traced route by id
//	@Tags		trace
//	@Produce	json
//	@Param		id		path		string	true	"trace id"
//	@Param		units	query		string	false	"km or mi"
//	@Success	200		{object}	traceResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/trace/{id} [get]
func (api *traceAPI) getTrace(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	units, err := parseUnits(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.traceService.GetResult(p.ByName("id"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTraceResponse(res, units)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getStep godoc
//
//	@Summary		one step of a traced route
//	@Description	step indices outside [0, total) are clamped to the nearest valid step
//	@Tags			trace
//	@Produce		json
//	@Param			id		path		string	true	"trace id"
//	@Param			step	path		int		true	"step index"
//	@Success		200		{object}	stepViewResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/trace/{id}/steps/{step} [get]
func (api *traceAPI) getStep(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	step, err := strconv.Atoi(p.ByName("step"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("step must be a valid int"))
		return
	}

	res, err := api.traceService.GetResult(p.ByName("id"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	cursor := navigation.NewCursor(res.Trace).Jump(step)
	view := navigation.View(cursor, res.Nodes)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStepViewResponse(res.ID, view)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// downloadGeoJSON godoc
//
//	@Summary	route, shortest path, start and destination as a geojson feature collection
//	@Tags		trace
//	@Produce	json
//	@Param		id	path		string	true	"trace id"
//	@Success	200	{object}	object
//	@Failure	404	{object}	errorResponse
//	@Router		/trace/{id}/geojson [get]
func (api *traceAPI) downloadGeoJSON(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := api.traceService.GetResult(p.ByName("id"))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	body, err := export.MarshalRoute(res)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.GeoJSONMimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="route-%s.geojson"`, res.Profile))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		api.log.Error("write geojson", zap.String("id", res.ID), zap.Error(err))
	}
}

func unitsOrDefault(units string) string {
	if units == "" {
		return viper.GetString("DISTANCE_UNITS")
	}
	return units
}

func parseUnits(r *http.Request) (string, error) {
	units := r.URL.Query().Get("units")
	switch units {
	case "", "km", "mi":
		return unitsOrDefault(units), nil
	default:
		return "", fmt.Errorf("units must be km or mi, got %q", units)
	}
}
