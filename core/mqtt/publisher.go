package mqtt

// Publisher broadcasts schedule-change events so other department views can
// refresh without polling the store.
type Publisher interface {
	// PublishEvent serializes the payload and publishes it under the given
	// topic suffix below the configured topic root.
	PublishEvent(topicSuffix string, payload any) error
	Close()
}
