package event

import "testing"

func TestPublishSubscribe(t *testing.T) {
	b := NewBus()
	var got []any

	b.Subscribe("pickup", func(data any) { got = append(got, data) })
	b.Publish("pickup", 5)
	b.Publish("other", "ignored")
	b.Publish("pickup", 7)

	if len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Errorf("received %v, expected [5 7]", got)
	}
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []string
	b.Subscribe("e", func(any) { order = append(order, "first") })
	b.Subscribe("e", func(any) { order = append(order, "second") })

	b.Publish("e", nil)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("dispatch order %v, expected [first second]", order)
	}
}

func TestSubscriptionClose(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := b.Subscribe("e", func(any) { calls++ })

	b.Publish("e", nil)
	sub.Close()
	sub.Close() // closing twice is a no-op
	b.Publish("e", nil)

	if calls != 1 {
		t.Errorf("handler ran %d times, expected 1", calls)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	b := NewBus()
	calls := 0
	var sub *Subscription
	b.Subscribe("e", func(any) { sub.Close() })
	sub = b.Subscribe("e", func(any) { calls++ })

	// The list is snapshotted per publish: the close takes effect on
	// the next publish, not mid-dispatch.
	b.Publish("e", nil)
	b.Publish("e", nil)

	if calls != 1 {
		t.Errorf("handler ran %d times, expected 1", calls)
	}
}
