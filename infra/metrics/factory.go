package metrics

import coremetrics "github.com/timegridhq/timegrid/core/metrics"

// New builds the edit sink the configuration asks for. With several
// backends enabled the sinks are combined; with none a NopSink is
// returned.
func New(cfg coremetrics.Config) (coremetrics.EditSink, error) {
	var sinks []coremetrics.EditSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
