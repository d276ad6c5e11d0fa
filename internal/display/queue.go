package display

// Update is one posted display event: either a row or a status line.
type Update struct {
	Row    *Row
	Status string
}

// QueueSink hands updates to a foreground consumer through a buffered
// channel. When the consumer falls behind, the oldest update is dropped so
// the refresh loop never blocks on the display.
type QueueSink struct {
	ch chan Update
}

// NewQueueSink creates a queue holding up to size pending updates.
func NewQueueSink(size int) *QueueSink {
	if size <= 0 {
		size = 64
	}
	return &QueueSink{ch: make(chan Update, size)}
}

// Updates is the consumer side of the queue.
func (q *QueueSink) Updates() <-chan Update {
	return q.ch
}

func (q *QueueSink) PublishRow(row Row) {
	q.post(Update{Row: &row})
}

func (q *QueueSink) PublishStatus(status string) {
	q.post(Update{Status: status})
}

func (q *QueueSink) post(u Update) {
	for {
		select {
		case q.ch <- u:
			return
		default:
		}
		// Queue full: drop the oldest update and retry.
		select {
		case <-q.ch:
		default:
		}
	}
}
