package mqtt

import "fmt"

// Config defines the connection parameters for the Paho MQTT publisher.
type Config struct {
	Enabled   bool   `json:"enabled"`
	Broker    string `json:"broker"`
	ClientID  string `json:"client_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	TopicRoot string `json:"topic_root"`
	QoS       byte   `json:"qos"`
	Retain    bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "timegrid"
	}
	if c.TopicRoot == "" {
		c.TopicRoot = "timegrid/schedules"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Enabled && c.Broker == "" {
		return fmt.Errorf("broker is required when mqtt is enabled")
	}
	return nil
}
