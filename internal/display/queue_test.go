package display

import (
	"testing"
)

func TestQueueSink_DeliversInOrder(t *testing.T) {
	q := NewQueueSink(4)
	q.PublishRow(Row{Symbol: "AAPL"})
	q.PublishStatus("refreshed 1 symbol")

	u := <-q.Updates()
	if u.Row == nil || u.Row.Symbol != "AAPL" {
		t.Fatalf("expected AAPL row first, got %+v", u)
	}
	u = <-q.Updates()
	if u.Status != "refreshed 1 symbol" {
		t.Fatalf("expected status second, got %+v", u)
	}
}

func TestQueueSink_DropsOldestWhenFull(t *testing.T) {
	q := NewQueueSink(2)
	q.PublishRow(Row{Symbol: "AAPL"})
	q.PublishRow(Row{Symbol: "MSFT"})
	q.PublishRow(Row{Symbol: "NVDA"}) // overflows: AAPL drops

	got := []string{(<-q.Updates()).Row.Symbol, (<-q.Updates()).Row.Symbol}
	if got[0] != "MSFT" || got[1] != "NVDA" {
		t.Fatalf("expected [MSFT NVDA] after drop-oldest, got %v", got)
	}
	select {
	case u := <-q.Updates():
		t.Fatalf("expected empty queue, got %+v", u)
	default:
	}
}

func TestQueueSink_DefaultCapacity(t *testing.T) {
	q := NewQueueSink(0)
	// Must accept at least one update without a consumer.
	q.PublishStatus("ok")
	if u := <-q.Updates(); u.Status != "ok" {
		t.Fatalf("unexpected update %+v", u)
	}
}

func TestQueueSink_NeverBlocksProducer(t *testing.T) {
	q := NewQueueSink(1)
	// With no consumer, repeated posts must return promptly.
	for i := 0; i < 100; i++ {
		q.PublishRow(Row{Symbol: "AAPL"})
	}
	if u := <-q.Updates(); u.Row == nil {
		t.Fatal("expected the most recent row to survive")
	}
}
