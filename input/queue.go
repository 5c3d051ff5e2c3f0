package input

// Queue holds pre-supplied answers for scripted runs. Answers are consumed
// front to back, each at most once. It is not safe for concurrent use.
type Queue struct {
	items []string
}

// Enqueue appends values to the tail of the queue.
func (q *Queue) Enqueue(values ...string) {
	q.items = append(q.items, values...)
}

// Dequeue removes and returns the head of the queue. ok is false when the
// queue is empty and the caller should read from the terminal instead.
func (q *Queue) Dequeue() (value string, ok bool) {
	if len(q.items) == 0 {
		return "", false
	}
	value = q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	return value, true
}

// Len reports how many answers are waiting.
func (q *Queue) Len() int {
	return len(q.items)
}
