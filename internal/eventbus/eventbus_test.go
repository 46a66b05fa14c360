package eventbus

import (
	"testing"

	"github.com/timegridhq/timegrid/core/events"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish(events.SlotRemoved{ScheduleID: "sch1", SlotID: "s1"})
	v := <-ch
	ev, ok := v.(events.SlotRemoved)
	if !ok || ev.SlotID != "s1" {
		t.Fatalf("unexpected event %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusDropsWhenSubscriberFull(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
	// The subscriber buffer is bounded; publishing never blocks.
	if len(ch) != cap(ch) {
		t.Fatalf("expected full buffer, got %d", len(ch))
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
