package bridge

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/pkg/controller"
)

var square = foiltool.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

func dial(t *testing.T, points foiltool.PointSet) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(NewHandler(points))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialFrom(srv *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	header := http.Header{}
	header.Set("Origin", origin)
	return websocket.DefaultDialer.Dial(wsURL(srv), header)
}

func roundTrip(t *testing.T, conn *websocket.Conn, req Request) Response {
	t.Helper()
	require.NoError(t, conn.WriteJSON(req))
	var res Response
	require.NoError(t, conn.ReadJSON(&res))
	return res
}

func TestSession(t *testing.T) {
	conn, done := dial(t, square)
	defer done()

	var initial Response
	require.NoError(t, conn.ReadJSON(&initial))
	require.NotNil(t, initial.Frame)
	assert.Equal(t, controller.LeadingEdgeTwist, initial.Frame.Mode)
	assert.Equal(t, square, initial.Frame.Original)

	res := roundTrip(t, conn, Request{Type: TypeAngle, Value: 45})
	require.NotNil(t, res.Frame)
	assert.Equal(t, 45.0, res.Frame.Angle)

	res = roundTrip(t, conn, Request{Type: TypeScale, Value: 1.5})
	assert.True(t, res.Ignored)
	assert.Nil(t, res.Frame)

	res = roundTrip(t, conn, Request{Type: TypeMode, Mode: "scale"})
	require.NotNil(t, res.Frame)
	assert.Equal(t, controller.Scale, res.Frame.Mode)
	assert.Equal(t, foiltool.Point{X: 0.5, Y: 0.5}, res.Frame.Reference)

	res = roundTrip(t, conn, Request{Type: TypeMode, Mode: "wobble"})
	assert.NotEmpty(t, res.Error)

	res = roundTrip(t, conn, Request{Type: "spin"})
	assert.NotEmpty(t, res.Error)

	res = roundTrip(t, conn, Request{Type: TypeReset})
	require.NotNil(t, res.Frame)
	assert.Equal(t, controller.DefaultAngle, res.Frame.Angle)
}

func TestSessionEmptyInput(t *testing.T) {
	conn, done := dial(t, foiltool.PointSet{})
	defer done()

	var initial Response
	require.NoError(t, conn.ReadJSON(&initial))
	require.NotNil(t, initial.Frame)

	res := roundTrip(t, conn, Request{Type: TypeMode, Mode: "centroid-twist"})
	assert.Nil(t, res.Frame)
	assert.Contains(t, res.Error, "empty")
}

func TestCrossOriginRejectedByDefault(t *testing.T) {
	srv := httptest.NewServer(NewHandler(square))
	defer srv.Close()

	_, res, err := dialFrom(srv, "http://localhost:3000")
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAllowOrigins(t *testing.T) {
	srv := httptest.NewServer(NewHandler(square).AllowOrigins("http://localhost:3000/", "null"))
	defer srv.Close()

	for _, origin := range []string{"http://localhost:3000", "null", "http://" + srv.Listener.Addr().String()} {
		conn, _, err := dialFrom(srv, origin)
		require.NoError(t, err, "origin %q", origin)

		var initial Response
		require.NoError(t, conn.ReadJSON(&initial))
		assert.NotNil(t, initial.Frame)
		conn.Close()
	}

	_, res, err := dialFrom(srv, "http://evil.example")
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAllowAnyOrigin(t *testing.T) {
	srv := httptest.NewServer(NewHandler(square).AllowOrigins("*"))
	defer srv.Close()

	conn, _, err := dialFrom(srv, "http://elsewhere.example:8000")
	require.NoError(t, err)
	conn.Close()
}
