package notify_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/DrinkMenu/pkg/notify"
)

type HubTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	hub      *notify.Hub
	server   *httptest.Server
	cancel   context.CancelFunc
	stopped  chan error
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (suite *HubTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.registry = prometheus.NewRegistry()
	suite.hub = notify.NewHub(notify.Options{
		QueueSize:      8,
		SubscriberSize: 8,
		AllowedOrigins: []string{"http://menu.local"},
	}, suite.registry, zaptest.NewLogger(suite.T()))

	router := gin.New()
	router.GET("/api", suite.hub.ServeWS)
	suite.server = httptest.NewServer(router)

	var ctx context.Context

	ctx, suite.cancel = context.WithCancel(context.Background())
	suite.stopped = make(chan error, 1)

	go func() { suite.stopped <- suite.hub.Run(ctx) }()
}

func (suite *HubTestSuite) TearDownTest() {
	suite.cancel()
	suite.server.Close()
}

func (suite *HubTestSuite) dial(header http.Header) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(suite.server.URL, "http") + "/api"

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	suite.Require().NoError(err)

	return conn
}

func (suite *HubTestSuite) waitForSubscribers(count int) {
	suite.Require().Eventually(func() bool {
		return suite.hub.Subscribers() == count
	}, time.Second, 10*time.Millisecond)
}

func (suite *HubTestSuite) readMessage(conn *websocket.Conn) notify.Message {
	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))

	var message notify.Message
	suite.Require().NoError(conn.ReadJSON(&message))

	return message
}

func (suite *HubTestSuite) TestBroadcast_ReachesEverySubscriber() {
	first := suite.dial(nil)
	defer first.Close()

	second := suite.dial(http.Header{"Origin": []string{"http://menu.local"}})
	defer second.Close()

	suite.waitForSubscribers(2)

	before := time.Now().UnixMilli()
	suite.hub.Broadcast("/beers-and-liquors", "/mixed-drinks")

	for _, conn := range []*websocket.Conn{first, second} {
		message := suite.readMessage(conn)
		suite.Equal("UPDATE", message.Type)
		suite.Equal("/beers-and-liquors", message.ResourcePath)
		suite.GreaterOrEqual(message.Timestamp, before)

		suite.Equal("/mixed-drinks", suite.readMessage(conn).ResourcePath)
	}

	suite.NoError(testutil.GatherAndCompare(suite.registry, strings.NewReader(`
# HELP drinkmenu_notify_broadcasts_total Update messages accepted for fan-out
# TYPE drinkmenu_notify_broadcasts_total counter
drinkmenu_notify_broadcasts_total 2
# HELP drinkmenu_notify_subscribers Number of connected update subscribers
# TYPE drinkmenu_notify_subscribers gauge
drinkmenu_notify_subscribers 2
`), "drinkmenu_notify_broadcasts_total", "drinkmenu_notify_subscribers"))
}

func (suite *HubTestSuite) TestBroadcast_WireFormat() {
	conn := suite.dial(nil)
	defer conn.Close()

	suite.waitForSubscribers(1)
	suite.hub.Broadcast("/mixed-drinks")

	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	suite.Require().NoError(err)

	var fields map[string]any
	suite.Require().NoError(json.Unmarshal(payload, &fields))
	suite.Len(fields, 3)
	suite.Equal("UPDATE", fields["type"])
	suite.Equal("/mixed-drinks", fields["resourcePath"])
	suite.Contains(fields, "timestamp")
}

func (suite *HubTestSuite) TestServeWS_UnregistersOnDisconnect() {
	conn := suite.dial(nil)
	suite.waitForSubscribers(1)

	suite.Require().NoError(conn.Close())

	suite.waitForSubscribers(0)
}

func (suite *HubTestSuite) TestServeWS_RejectsUnknownOrigins() {
	url := "ws" + strings.TrimPrefix(suite.server.URL, "http") + "/api"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.local"}})
	suite.Require().ErrorIs(err, websocket.ErrBadHandshake)
	suite.Equal(http.StatusForbidden, resp.StatusCode)
	suite.Equal(0, suite.hub.Subscribers())
}

func (suite *HubTestSuite) TestRun_DisconnectsSubscribersOnShutdown() {
	conn := suite.dial(nil)
	defer conn.Close()

	suite.waitForSubscribers(1)
	suite.cancel()

	select {
	case err := <-suite.stopped:
		suite.NoError(err)
	case <-time.After(time.Second):
		suite.Fail("hub did not stop")
	}

	suite.Equal(0, suite.hub.Subscribers())

	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	suite.True(websocket.IsCloseError(err, websocket.CloseGoingAway))
}

func TestBroadcast_DropsWhenQueueIsFull(t *testing.T) {
	registry := prometheus.NewRegistry()
	hub := notify.NewHub(notify.Options{QueueSize: 1}, registry, zaptest.NewLogger(t))

	hub.Broadcast("/beers-and-liquors", "/beers-and-liquors-by-type", "/mixed-drinks")

	err := testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP drinkmenu_notify_broadcasts_total Update messages accepted for fan-out
# TYPE drinkmenu_notify_broadcasts_total counter
drinkmenu_notify_broadcasts_total 1
# HELP drinkmenu_notify_dropped_total Update messages dropped because a queue was full
# TYPE drinkmenu_notify_dropped_total counter
drinkmenu_notify_dropped_total 2
`), "drinkmenu_notify_broadcasts_total", "drinkmenu_notify_dropped_total")
	if err != nil {
		t.Fatal(err)
	}
}

type brokenConn struct {
	net.Conn
	broken *atomic.Bool
}

func (c brokenConn) Write(p []byte) (int, error) {
	if c.broken.Load() {
		return 0, errors.New("broken pipe")
	}

	return c.Conn.Write(p)
}

type breakableWriter struct {
	gin.ResponseWriter
	broken *atomic.Bool
}

func (w breakableWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := w.ResponseWriter.Hijack()
	if err != nil {
		return nil, nil, err
	}

	return brokenConn{Conn: conn, broken: w.broken}, rw, nil
}

func TestRun_LogsDisconnectErrorsOnShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	observedZapCore, observedLogs := observer.New(zap.WarnLevel)
	hub := notify.NewHub(notify.Options{}, prometheus.NewRegistry(), zap.New(observedZapCore))

	broken := &atomic.Bool{}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Writer = breakableWriter{ResponseWriter: c.Writer, broken: broken}
		c.Next()
	})
	router.GET("/api", hub.ServeWS)

	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopped := make(chan error, 1)

	go func() { stopped <- hub.Run(ctx) }()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/api", nil)
	require.NoError(t, err)

	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	broken.Store(true)
	cancel()

	select {
	case err := <-stopped:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 1, observedLogs.FilterMessage("error disconnecting subscribers").Len())
}
