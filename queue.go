package imgbound

import "context"

// Queue is a mailbox of callbacks owned by one goroutine.
//
// Workers Post callbacks to the queue and the owner runs them with Poll or Run,
// so completion notifications always execute on the owner's goroutine and never
// on the worker that produced them.
type Queue struct {
	tasks chan func()
}

// NewQueue returns a queue that buffers up to size pending callbacks before
// Post blocks.
func NewQueue(size int) *Queue {
	return &Queue{tasks: make(chan func(), size)}
}

// Post enqueues fn to be run by the queue owner.
func (q *Queue) Post(fn func()) {
	q.tasks <- fn
}

// Poll waits for one callback and runs it on the calling goroutine.
// It returns the context error if ctx is done first.
func (q *Queue) Poll(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case fn := <-q.tasks:
		fn()
		return nil
	}
}

// Run runs callbacks on the calling goroutine until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if err := q.Poll(ctx); err != nil {
			return err
		}
	}
}

// Len returns the number of callbacks waiting to be run.
func (q *Queue) Len() int {
	return len(q.tasks)
}
