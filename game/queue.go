package game

// MessageQueue is an append-at-tail deque of messages kept in arrival order
// A positive capacity trims the oldest messages once exceeded
type MessageQueue struct {
	items    []Message
	head     int
	capacity int
	total    uint64
}

// NewMessageQueue creates a queue; capacity <= 0 means unbounded
func NewMessageQueue(capacity int, initial ...Message) *MessageQueue {
	if capacity < 0 {
		capacity = 0
	}
	q := &MessageQueue{capacity: capacity}
	for _, m := range initial {
		q.Push(m)
	}
	return q
}

// Push appends a message at the tail, trimming from the head when over capacity
func (q *MessageQueue) Push(m Message) {
	q.items = append(q.items, m)
	q.total++

	if q.capacity > 0 && q.Len() > q.capacity {
		q.head++
	}

	// Compact once the dead prefix dominates the backing array
	if q.head > 0 && q.head >= len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}

// Len returns the number of retained messages
func (q *MessageQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items) - q.head
}

// Total returns how many messages were ever pushed, including trimmed ones
func (q *MessageQueue) Total() uint64 {
	if q == nil {
		return 0
	}
	return q.total
}

// At returns the i-th retained message, oldest first
func (q *MessageQueue) At(i int) (Message, bool) {
	if i < 0 || i >= q.Len() {
		return Message{}, false
	}
	return q.items[q.head+i], true
}

// Tail copies the newest n messages in oldest-first order; n <= 0 copies everything
func (q *MessageQueue) Tail(n int) []Message {
	l := q.Len()
	if l == 0 {
		return nil
	}
	if n <= 0 || n > l {
		n = l
	}
	out := make([]Message, n)
	copy(out, q.items[len(q.items)-n:])
	return out
}

// All copies every retained message, oldest first
func (q *MessageQueue) All() []Message {
	return q.Tail(0)
}

// Clear drops all retained messages; Total is unaffected
func (q *MessageQueue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
