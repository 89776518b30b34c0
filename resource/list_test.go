package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

type testReleaser struct {
	released int
}

func (r *testReleaser) Release() {
	r.released++
}

func TestList_Basic(t *testing.T) {
	list := NewList()

	// Acquire
	h := list.Acquire("capability")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	// Get
	val, ok := list.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "capability" {
		t.Fatalf("Expected 'capability', got %v", val)
	}

	// Consume
	val, ok = list.Consume(h)
	if !ok {
		t.Fatal("Consume failed")
	}
	if val != "capability" {
		t.Fatalf("Expected 'capability', got %v", val)
	}

	// Consumed entries are gone
	if _, ok := list.Get(h); ok {
		t.Fatal("Get should fail after Consume")
	}
	if _, ok := list.Consume(h); ok {
		t.Fatal("Consume should fail after Consume")
	}
	if list.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Consume")
	}
}

func TestList_InvalidHandle(t *testing.T) {
	list := NewList()
	if _, ok := list.Get(0); ok {
		t.Fatal("handle 0 must be invalid")
	}
	if _, ok := list.Get(42); ok {
		t.Fatal("unknown handle must be invalid")
	}
}

func TestList_ReleaseAll(t *testing.T) {
	list := NewList()
	a := &testReleaser{}
	b := &testReleaser{}
	c := &testReleaser{}

	list.Acquire(a)
	hb := list.Acquire(b)
	list.Acquire(c)

	// Consumed values must not be released
	list.Consume(hb)

	list.ReleaseAll()
	if a.released != 1 || c.released != 1 {
		t.Fatalf("held values released %d/%d times, want 1/1", a.released, c.released)
	}
	if b.released != 0 {
		t.Fatal("consumed value must not be released")
	}

	// Release is exactly-once even if called again
	list.ReleaseAll()
	if a.released != 1 {
		t.Fatalf("value released %d times, want exactly once", a.released)
	}
}

func TestList_ReleaseOrder(t *testing.T) {
	list := NewList()
	obs := &testObserver{}
	list.Subscribe(obs)

	h1 := list.Acquire("first")
	h2 := list.Acquire("second")
	list.ReleaseAll()

	if len(obs.events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventAcquired || obs.events[0].Handle != h1 {
		t.Fatal("Expected EventAcquired for first handle")
	}
	if obs.events[2].Type != EventReleased || obs.events[2].Handle != h1 {
		t.Fatal("Expected release in acquisition order")
	}
	if obs.events[3].Type != EventReleased || obs.events[3].Handle != h2 {
		t.Fatal("Expected release in acquisition order")
	}
}

func TestList_Observer(t *testing.T) {
	list := NewList()
	obs := &testObserver{}
	list.Subscribe(obs)

	h := list.Acquire("cap")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventAcquired {
		t.Fatal("Expected EventAcquired")
	}

	list.Consume(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventConsumed {
		t.Fatal("Expected EventConsumed")
	}
	if obs.events[1].Handle != h {
		t.Fatal("Wrong handle in event")
	}
}
