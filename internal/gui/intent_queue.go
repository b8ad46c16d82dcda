package gui

import "github.com/appengine-ltd/short-order/internal/parser"

// CommandSink receives intents built from key bindings.
type CommandSink interface {
	Enqueue(parser.Intent)
}

type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) Enqueue(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Drop only when the queue is saturated; a key repeat is harmless to lose.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

// drainInto forwards everything queued this frame to sink.
func (q *intentQueue) drainInto(sink CommandSink) int {
	n := 0
	for {
		intent, ok := q.Dequeue()
		if !ok {
			return n
		}
		sink.Enqueue(intent)
		n++
	}
}
