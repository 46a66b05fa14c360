package mqtt

import (
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremqtt "github.com/timegridhq/timegrid/core/mqtt"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	connected bool

	publishedTopic   string
	publishedQoS     byte
	publishedRetain  bool
	publishedPayload []byte
	publishErr       error
}

func (c *fakeClient) IsConnected() bool   { return c.connected }
func (c *fakeClient) Connect() paho.Token { return &fakeToken{} }
func (c *fakeClient) Disconnect(uint)     { c.connected = false }
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.publishedTopic = topic
	c.publishedQoS = qos
	c.publishedRetain = retained
	c.publishedPayload = payload.([]byte)
	return &fakeToken{err: c.publishErr}
}

func TestNewPahoPublisherDisabledBrokerMissing(t *testing.T) {
	_, err := NewPahoPublisher(Config{Enabled: true})
	require.Error(t, err)
}

func TestPublishEvent(t *testing.T) {
	fake := &fakeClient{connected: true}
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return fake }
	defer func() { newMQTTClient = orig }()

	pub, err := NewPahoPublisher(Config{
		Enabled: true,
		Broker:  "tcp://localhost:1883",
		QoS:     1,
	})
	require.NoError(t, err)

	err = pub.PublishEvent("cs-3a/slot_placed", map[string]string{"slot_id": "slot-1"})
	require.NoError(t, err)
	assert.Equal(t, "timegrid/schedules/cs-3a/slot_placed", fake.publishedTopic)
	assert.Equal(t, byte(1), fake.publishedQoS)
	assert.JSONEq(t, `{"slot_id":"slot-1"}`, string(fake.publishedPayload))
}

func TestPublishEventNotConnected(t *testing.T) {
	fake := &fakeClient{connected: false}
	pub := &PahoPublisher{cli: fake, topicRoot: "timegrid/schedules"}

	err := pub.PublishEvent("cs-3a/slot_placed", struct{}{})
	assert.ErrorIs(t, err, coremqtt.ErrNotConnected)
}

func TestClose(t *testing.T) {
	fake := &fakeClient{connected: true}
	pub := &PahoPublisher{cli: fake}
	pub.Close()
	assert.False(t, fake.connected)
}
