package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/timegridhq/timegrid/core/metrics"
	"github.com/timegridhq/timegrid/infra/logger"
)

// InfluxSink writes edit events to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.EditSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordEdit writes the edit transaction as a point.
func (s *InfluxSink) RecordEdit(ev coremetrics.EditEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("timetable_edit").
		AddTag("kind", string(ev.Kind)).
		AddTag("schedule_id", ev.ScheduleID).
		AddTag("accepted", strconv.FormatBool(ev.Accepted)).
		AddField("slot_type", ev.SlotType).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflictWarning writes an advisory conflict warning as a point.
func (s *InfluxSink) RecordConflictWarning(ev coremetrics.ConflictEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("timetable_conflict_warning").
		AddTag("schedule_id", ev.ScheduleID).
		AddTag("other_schedule_id", ev.OtherScheduleID).
		AddField("faculty_id", ev.FacultyID).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordQuotaWarning writes an advisory quota warning as a point.
func (s *InfluxSink) RecordQuotaWarning(ev coremetrics.QuotaEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("timetable_quota_warning").
		AddTag("schedule_id", ev.ScheduleID).
		AddTag("subject_id", ev.SubjectID).
		AddTag("slot_type", ev.SlotType).
		AddField("used", ev.Used).
		AddField("quota", ev.Quota).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts the underlying client down.
func (s *InfluxSink) Close() { s.client.Close() }
