// Package mqtt broadcasts schedule-change events over an MQTT broker so
// other department views refresh without polling the store.
package mqtt

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremqtt "github.com/timegridhq/timegrid/core/mqtt"
	"github.com/timegridhq/timegrid/infra/logger"
)

// Publisher mirrors the core mqtt.Publisher interface.
type Publisher = coremqtt.Publisher

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// PahoPublisher implements the Publisher interface using Eclipse Paho.
type PahoPublisher struct {
	cli       pahoClient
	topicRoot string
	qos       byte
	retain    bool
	log       logger.Logger
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// NewPahoPublisher connects to the MQTT broker described by the config.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New("mqtt_publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(paho.Client, *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{
		cli:       c,
		topicRoot: cfg.TopicRoot,
		qos:       cfg.QoS,
		retain:    cfg.Retain,
		log:       log,
	}, nil
}

// PublishEvent serializes the payload as JSON and publishes it under
// topicRoot/topicSuffix.
func (p *PahoPublisher) PublishEvent(topicSuffix string, payload any) error {
	if !p.cli.IsConnected() {
		return coremqtt.ErrNotConnected
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	topic := p.topicRoot + "/" + topicSuffix
	if token := p.cli.Publish(topic, p.qos, p.retain, data); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	p.cli.Disconnect(250)
}
