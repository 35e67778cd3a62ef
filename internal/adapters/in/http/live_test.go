package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/internal/core/application/fleet"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type wireFrame struct {
	V       int             `json:"v"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (h *harness) dial(t *testing.T, srv *httptest.Server, a kernel.Actor) (*websocket.Conn, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/fleet/ws?access_token=" + h.token(t, a)
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	if conn != nil {
		t.Cleanup(func() {
			_ = conn.Close()
		})
	}
	return conn, err
}

func readFrame(t *testing.T, conn *websocket.Conn) wireFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame wireFrame
	require.NoError(t, websocket.JSON.Receive(conn, &frame))
	return frame
}

func sendPing(t *testing.T, conn *websocket.Conn, ts time.Time) {
	t.Helper()
	require.NoError(t, websocket.JSON.Send(conn, map[string]any{
		"v":    1,
		"type": "location",
		"payload": map[string]any{
			"lat":       24.7136,
			"lng":       46.6753,
			"timestamp": ts.Format(time.RFC3339Nano),
		},
	}))
}

func TestFleetSnapshot_CourierSeesItself(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.hub.Ingest(h.rider.ID(), fleet.PingInput{Lat: 24.7, Lng: 46.6, Timestamp: time.Now()}))

	rec := h.do(t, http.MethodGet, "/api/v1/fleet/live", nil, &h.rider)

	require.Equal(t, http.StatusOK, rec.Code)
	var body fleet.SnapshotPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Couriers, 1)
	assert.Equal(t, h.rider.ID(), body.Couriers[0].CourierID)
	assert.True(t, body.Couriers[0].Online)
}

func TestFleetSnapshot_ForbiddenForCustomers(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/v1/fleet/live", nil, &h.customer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostPing_AcceptsCourierSamples(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/fleet/pings",
		fleet.PingInput{Lat: 24.7, Lng: 46.6, Timestamp: time.Now()}, &h.rider)
	require.Equal(t, http.StatusAccepted, rec.Code)

	locations, err := h.hub.Snapshot(h.owner)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, h.rider.ID(), locations[0].CourierID)
}

func TestPostPing_InvalidSampleIsDroppedSilently(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/fleet/pings",
		fleet.PingInput{Lat: 124.7, Lng: 46.6, Timestamp: time.Now()}, &h.rider)
	require.Equal(t, http.StatusAccepted, rec.Code)

	locations, err := h.hub.Snapshot(h.owner)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestPostPing_ForbiddenForManagers(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/fleet/pings",
		fleet.PingInput{Lat: 24.7, Lng: 46.6, Timestamp: time.Now()}, &h.manager)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFleetLive_CourierStreamReachesSupervisor(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(h.echo)
	t.Cleanup(srv.Close)

	watcher, err := h.dial(t, srv, h.manager)
	require.NoError(t, err)
	snapshot := readFrame(t, watcher)
	assert.Equal(t, string(fleet.FrameSnapshot), snapshot.Type)
	assert.Equal(t, fleet.FrameVersion, snapshot.V)

	rider, err := h.dial(t, srv, h.rider)
	require.NoError(t, err)
	sendPing(t, rider, time.Now())

	frame := readFrame(t, watcher)
	require.Equal(t, string(fleet.FrameLocation), frame.Type)
	var location fleet.Location
	require.NoError(t, json.Unmarshal(frame.Payload, &location))
	assert.Equal(t, h.rider.ID(), location.CourierID)
	assert.InDelta(t, 24.7136, location.Lat, 1e-9)

	require.NoError(t, rider.Close())

	frame = readFrame(t, watcher)
	require.Equal(t, string(fleet.FrameEvicted), frame.Type)
	var evicted fleet.EvictedPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &evicted))
	assert.Equal(t, fleet.EvictedPayload{CourierID: h.rider.ID(), Reason: fleet.ReasonOffline}, evicted)
}

func TestFleetLive_OtherSupervisorSeesNothing(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(h.echo)
	t.Cleanup(srv.Close)

	stranger := newActor(t, kernel.RoleSupervisor)
	watcher, err := h.dial(t, srv, stranger)
	require.NoError(t, err)
	snapshot := readFrame(t, watcher)
	require.Equal(t, string(fleet.FrameSnapshot), snapshot.Type)

	var payload fleet.SnapshotPayload
	require.NoError(t, json.Unmarshal(snapshot.Payload, &payload))
	assert.Empty(t, payload.Couriers)

	require.True(t, h.hub.Ingest(h.rider.ID(), fleet.PingInput{Lat: 24.7, Lng: 46.6, Timestamp: time.Now()}))

	require.NoError(t, watcher.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var frame wireFrame
	assert.Error(t, websocket.JSON.Receive(watcher, &frame))
}

func TestFleetLive_MalformedFrameGetsErrorFrame(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(h.echo)
	t.Cleanup(srv.Close)

	rider, err := h.dial(t, srv, h.rider)
	require.NoError(t, err)
	require.NoError(t, websocket.JSON.Send(rider, map[string]any{"v": 2, "type": "location", "payload": map[string]any{}}))

	frame := readFrame(t, rider)
	assert.Equal(t, string(fleet.FrameError), frame.Type)
	var payload fleet.ErrorPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &payload))
	assert.Contains(t, payload.Message, "version")

	// The socket stays usable after a rejected frame.
	sendPing(t, rider, time.Now())
	assert.Eventually(t, func() bool {
		locations, err := h.hub.Snapshot(h.rider)
		return err == nil && len(locations) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFleetLive_ForbiddenForCustomers(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(h.echo)
	t.Cleanup(srv.Close)

	_, err := h.dial(t, srv, h.customer)

	assert.Error(t, err)
}

func TestFleetLive_UnsubscribesOnClose(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(h.echo)
	t.Cleanup(srv.Close)

	watcher, err := h.dial(t, srv, h.owner)
	require.NoError(t, err)
	readFrame(t, watcher)
	require.Equal(t, 1, h.hub.Subscribers())

	require.NoError(t, watcher.Close())

	assert.Eventually(t, func() bool {
		return h.hub.Subscribers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
