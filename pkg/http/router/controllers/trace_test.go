package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navtrace/pkg/engine"
	"github.com/lintang-b-s/navtrace/pkg/export"
	helper "github.com/lintang-b-s/navtrace/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/navtrace/pkg/http/usecases"
	"github.com/lintang-b-s/navtrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const referencePolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

type testAPI struct {
	srv *httptest.Server
	hub *Hub
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := zap.NewNop()
	svc, err := usecases.NewTraceService(log, engine.NewEngine(log, nil, 50, 2), 16)
	require.NoError(t, err)

	hub := NewHub(log)
	router := httprouter.New()
	New(svc, hub, log).Routes(helper.NewRouteGroup(router, "/api"))

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		hub.RemoveAll()
		srv.Close()
	})
	return &testAPI{srv: srv, hub: hub}
}

func (a *testAPI) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, a.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func (a *testAPI) trace(t *testing.T, body string) []traceResponse {
	t.Helper()
	resp, b := a.do(t, http.MethodPost, "/api/trace", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	var out struct {
		Data []traceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	return out.Data
}

func TestTraceHandler(t *testing.T) {
	api := newTestAPI(t)

	data := api.trace(t, `{
		"routes": [
			{"profile": "driving-car", "polyline": "`+referencePolyline+`", "duration": 3930},
			{"profile": "foot-walking", "coordinates": [{"lat": 0, "lon": 0}, {"lat": 0, "lon": 1}, {"lat": 0, "lon": 2}]}
		],
		"units": "km"
	}`)
	require.Len(t, data, 2)

	car := data[0]
	assert.Equal(t, engine.ProfileDrivingCar, car.Profile)
	assert.NotEmpty(t, car.ID)
	assert.Len(t, car.Nodes, 3)
	assert.Equal(t, []string{"N0", "N1", "N2"}, car.Labels)
	assert.Len(t, car.Steps, 4)
	assert.Equal(t, "1h 5m", car.DurationText)
	require.NotNil(t, car.Bounds)

	// +Inf is encoded as null
	assert.Nil(t, car.Adjacency[0][2])
	require.NotNil(t, car.Adjacency[0][1])
	assert.Equal(t, export.Infinity, car.AdjacencyTable[0][2])
	assert.Nil(t, car.Steps[0].Distances[1])
	assert.Nil(t, car.Steps[0].Predecessors[0])
	assert.Nil(t, car.Steps[3].Current)
	require.NotNil(t, car.Steps[1].Current)
	assert.Equal(t, 1, *car.Steps[1].Current)

	walk := data[1]
	assert.True(t, walk.Path.Reachable)
	assert.Equal(t, []int{0, 1, 2}, walk.Path.Nodes)
	assert.Equal(t, "222.39 km", walk.Path.DistanceText)
	assert.NotEmpty(t, walk.Path.Polyline)
	assert.Empty(t, walk.DurationText)
}

func TestTraceHandlerBadRequest(t *testing.T) {
	api := newTestAPI(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `routes=1`},
		{name: "no routes", body: `{"routes": []}`},
		{name: "unknown profile", body: `{"routes": [{"profile": "driving-hgv", "polyline": "_p~iF~ps|U"}]}`},
		{name: "no geometry", body: `{"routes": [{"profile": "driving-car"}]}`},
		{name: "latitude out of range", body: `{"routes": [{"profile": "driving-car", "coordinates": [{"lat": 91, "lon": 0}]}]}`},
		{name: "target latitude without longitude", body: `{"routes": [{"profile": "driving-car", "polyline": "_p~iF~ps|U"}], "target_lat": 1}`},
		{name: "broken polyline", body: `{"routes": [{"profile": "driving-car", "polyline": "_p~iF~ps|U_ulL"}]}`},
		{name: "start out of range", body: `{"routes": [{"profile": "driving-car", "polyline": "_p~iF~ps|U"}], "start": 3}`},
		{name: "unknown units", body: `{"routes": [{"profile": "driving-car", "polyline": "_p~iF~ps|U"}], "units": "ft"}`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			resp, b := api.do(t, http.MethodPost, "/api/trace", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(b))

			var errResp errorResponse
			require.NoError(t, json.Unmarshal(b, &errResp))
			assert.Equal(t, http.StatusText(http.StatusBadRequest), errResp.Error.Code)
			assert.NotEmpty(t, errResp.Error.Message)
		})
	}
}

func TestGetTraceAndSteps(t *testing.T) {
	api := newTestAPI(t)
	id := api.trace(t, `{"routes": [{"profile": "cycling-regular", "polyline": "`+referencePolyline+`"}]}`)[0].ID

	resp, b := api.do(t, http.MethodGet, "/api/trace/"+id+"?units=mi", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	assert.Contains(t, string(b), " mi\"")

	testCases := []struct {
		step      string
		wantIndex int
		wantPath  int
	}{
		{step: "0", wantIndex: 0, wantPath: 1},
		{step: "2", wantIndex: 2, wantPath: 3},
		{step: "99", wantIndex: 3, wantPath: 0},
		{step: "-4", wantIndex: 0, wantPath: 1},
	}

	for _, tt := range testCases {
		t.Run("step "+tt.step, func(t *testing.T) {
			resp, b := api.do(t, http.MethodGet, "/api/trace/"+id+"/steps/"+tt.step, "")
			require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

			var out struct {
				Data stepViewResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(b, &out))
			assert.Equal(t, id, out.Data.TraceID)
			assert.Equal(t, tt.wantIndex, out.Data.Index)
			assert.Equal(t, 4, out.Data.Total)
			assert.Len(t, out.Data.PartialPath, tt.wantPath)
		})
	}

	resp, _ = api.do(t, http.MethodGet, "/api/trace/"+id+"/steps/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/trace/"+id+"?units=ft", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/trace/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/trace/does-not-exist/steps/0", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadGeoJSON(t *testing.T) {
	api := newTestAPI(t)
	id := api.trace(t, `{"routes": [{"profile": "foot-walking", "polyline": "`+referencePolyline+`"}]}`)[0].ID

	resp, b := api.do(t, http.MethodGet, "/api/trace/"+id+"/geojson", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.GeoJSONMimeType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "route-foot-walking.geojson")
	assert.True(t, bytes.Contains(b, []byte(`"FeatureCollection"`)))
}

func TestStepperWebsocket(t *testing.T) {
	api := newTestAPI(t)
	id := api.trace(t, `{"routes": [{"profile": "driving-car", "polyline": "`+referencePolyline+`"}]}`)[0].ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(api.srv.URL, "http") + "/api/trace/" + id + "/ws"
	conn, br, _, err := ws.Dial(ctx, wsURL)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	var r io.Reader = conn
	if br != nil {
		r = br
	}
	rw := struct {
		io.Reader
		io.Writer
	}{r, conn}

	readStep := func() stepViewResponse {
		t.Helper()
		msg, err := wsutil.ReadServerText(rw)
		require.NoError(t, err)
		var out struct {
			Data stepViewResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &out), string(msg))
		return out.Data
	}
	send := func(msg string) {
		t.Helper()
		require.NoError(t, wsutil.WriteClientText(conn, []byte(msg)))
	}

	assert.Equal(t, 0, readStep().Index)
	assert.Eventually(t, func() bool { return api.hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	steps := []struct {
		msg  string
		want int
	}{
		{msg: `{"action": "next"}`, want: 1},
		{msg: `{"action": "next"}`, want: 2},
		{msg: `{"action": "prev"}`, want: 1},
		{msg: `{"action": "last"}`, want: 3},
		{msg: `{"action": "next"}`, want: 3},
		{msg: `{"action": "jump", "step": -7}`, want: 0},
		{msg: `{"action": "jump", "step": 2}`, want: 2},
		{msg: `{"action": "first"}`, want: 0},
	}
	for _, s := range steps {
		send(s.msg)
		assert.Equal(t, s.want, readStep().Index, s.msg)
	}

	send(`{"action": "rewind"}`)
	msg, err := wsutil.ReadServerText(rw)
	require.NoError(t, err)
	var errResp errorResponse
	require.NoError(t, json.Unmarshal(msg, &errResp))
	assert.Equal(t, http.StatusText(http.StatusBadRequest), errResp.Error.Code)

	// the cursor did not move
	send(`{"action": "next"}`)
	assert.Equal(t, 1, readStep().Index)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return api.hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStepperUnknownTrace(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodGet, "/api/trace/nope/ws", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStatusCode(t *testing.T) {
	api := &traceAPI{log: zap.NewNop()}

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad param", err: util.WrapErrorf(usecases.ErrNoRoutes, util.ErrBadParamInput, "no routes"), want: http.StatusBadRequest},
		{name: "not found", err: util.WrapErrorf(usecases.ErrResultNotFound, util.ErrNotFound, "gone"), want: http.StatusNotFound},
		{name: "conflict", err: util.WrapErrorf(nil, util.ErrConflict, "exists"), want: http.StatusConflict},
		{name: "canceled", err: util.WrapErrorf(context.Canceled, util.ErrCanceled, "canceled"), want: statusClientClosedRequest},
		{name: "uncoded", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			api.getStatusCode(rec, httptest.NewRequest(http.MethodPost, "/api/trace", nil), tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
