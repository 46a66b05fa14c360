// Package metrics defines the interfaces for recording timetable edit
// activity. Sinks like the Prometheus and Influx implementations in
// infra/metrics record edit transactions and the advisory warnings attached
// to them, and can be combined through a multi sink.
package metrics
