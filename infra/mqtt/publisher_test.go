package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/servicing/core/alert"
	"github.com/kilianp07/servicing/infra/logger"
)

type published struct {
	topic   string
	qos     byte
	retain  bool
	payload []byte
}

type mockClient struct {
	mu           sync.Mutex
	opts         *paho.ClientOptions
	msgs         []published
	failures     int
	connectErr   error
	disconnected bool
}

func (m *mockClient) IsConnected() bool       { return true }
func (m *mockClient) Connect() paho.Token     { return &mockToken{err: m.connectErr} }
func (m *mockClient) Disconnect(quiesce uint) { m.disconnected = true }
func (m *mockClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return &mockToken{err: errors.New("broker unavailable")}
	}
	m.msgs = append(m.msgs, published{topic: topic, qos: qos, retain: retained, payload: payload.([]byte)})
	return &mockToken{}
}

type mockToken struct{ err error }

func (t *mockToken) Wait() bool                     { return true }
func (t *mockToken) WaitTimeout(time.Duration) bool { return true }
func (t *mockToken) Error() error                   { return t.err }
func (t *mockToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func withMockClient(t *testing.T, mc *mockClient) {
	t.Helper()
	prev := newMQTTClient
	newMQTTClient = func(o *paho.ClientOptions) pahoClient { mc.opts = o; return mc }
	t.Cleanup(func() { newMQTTClient = prev })
}

func TestAlertPublisher_Publish(t *testing.T) {
	mc := &mockClient{}
	withMockClient(t, mc)
	pub, err := NewAlertPublisher(Config{Broker: "tcp://localhost:1883", QoS: 1, Retain: true})
	require.NoError(t, err)
	assert.Equal(t, "servicing", mc.opts.ClientID)

	a := alert.Alert{ID: "a1", VehicleID: "veh-7", Model: "Calliope", Subsystems: []string{"engine"}, Time: time.Unix(0, 0).UTC()}
	require.NoError(t, pub.Publish(context.Background(), a))
	require.Len(t, mc.msgs, 1)
	msg := mc.msgs[0]
	assert.Equal(t, "servicing/veh-7/alert", msg.topic)
	assert.Equal(t, byte(1), msg.qos)
	assert.True(t, msg.retain)

	var got alert.Alert
	require.NoError(t, json.Unmarshal(msg.payload, &got))
	assert.Equal(t, a, got)

	require.NoError(t, pub.Close())
	assert.True(t, mc.disconnected)
}

func TestAlertPublisher_Retries(t *testing.T) {
	mc := &mockClient{failures: 2}
	withMockClient(t, mc)
	pub, err := NewAlertPublisher(Config{Broker: "tcp://b:1883", TopicPrefix: "fleet", BackoffMS: 1, MaxRetries: 3})
	require.NoError(t, err)
	pub.log = logger.NopLogger{}

	require.NoError(t, pub.Publish(context.Background(), alert.Alert{ID: "a", VehicleID: "v"}))
	require.Len(t, mc.msgs, 1)
	assert.Equal(t, "fleet/v/alert", mc.msgs[0].topic)
}

func TestAlertPublisher_GivesUp(t *testing.T) {
	mc := &mockClient{failures: 10}
	withMockClient(t, mc)
	pub, err := NewAlertPublisher(Config{Broker: "tcp://b:1883", BackoffMS: 1, MaxRetries: 1})
	require.NoError(t, err)
	pub.log = logger.NopLogger{}

	err = pub.Publish(context.Background(), alert.Alert{ID: "a", VehicleID: "v"})
	assert.Error(t, err)
	assert.Empty(t, mc.msgs)
}

func TestAlertPublisher_ContextCancelled(t *testing.T) {
	mc := &mockClient{failures: 10}
	withMockClient(t, mc)
	pub, err := NewAlertPublisher(Config{Broker: "tcp://b:1883", BackoffMS: 10_000, MaxRetries: 5})
	require.NoError(t, err)
	pub.log = logger.NopLogger{}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = pub.Publish(ctx, alert.Alert{ID: "a", VehicleID: "v"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewAlertPublisher_ConnectError(t *testing.T) {
	withMockClient(t, &mockClient{connectErr: errors.New("refused")})
	_, err := NewAlertPublisher(Config{Broker: "tcp://b:1883"})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.Error(t, Config{Enabled: true}.Validate())
	assert.Error(t, Config{Enabled: true, Broker: "tcp://b", QoS: 3}.Validate())
	assert.NoError(t, Config{Enabled: true, Broker: "tcp://b"}.Validate())
}
