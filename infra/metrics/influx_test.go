package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	coremetrics "github.com/timegridhq/timegrid/core/metrics"
)

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := coremetrics.Config{
		InfluxEnabled: true,
		InfluxURL:     srv.URL + "/api/v2/write",
		InfluxToken:   "tok",
		InfluxOrg:     "org",
		InfluxBucket:  "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}

func TestInfluxSinkRecordEdit(t *testing.T) {
	received := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v2/write" {
			received = true
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(coremetrics.Config{InfluxURL: srv.URL, InfluxToken: "tok", InfluxOrg: "org", InfluxBucket: "bucket"})
	defer sink.Close()
	if err := sink.RecordEdit(coremetrics.EditEvent{Kind: coremetrics.EditPlace, ScheduleID: "sch1", SlotType: "theory", Accepted: true}); err != nil {
		t.Fatalf("record edit: %v", err)
	}
	if !received {
		t.Fatalf("write endpoint not called")
	}
}
