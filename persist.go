package imgbound

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Saver writes buffers to disk off the calling goroutine.
// At most the configured number of writes run at the same time.
type Saver struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewSaver returns a Saver running up to workers writes concurrently.
// If workers is less than 1, runtime.NumCPU() is used.
func NewSaver(workers int) *Saver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Saver{sem: semaphore.NewWeighted(int64(workers))}
}

// SaveAsync writes data to output in the background and posts done to q once
// the write has finished. done receives nil on success or the error that stopped
// the write, including errors from flushing or closing the file.
// SaveAsync never blocks on the write itself and the write is never retried.
func (s *Saver) SaveAsync(data []byte, output string, q *Queue, done func(error)) {
	s.do(q, done, func() error {
		return writeFile(output, data)
	})
}

// SaveImageAsync encodes img according format option and writes it to output
// like SaveAsync. Encoding errors are reported to done as well.
func (s *Saver) SaveImageAsync(img image.Image, output string, option *FormatOption, q *Queue, done func(error)) {
	s.do(q, done, func() error {
		var buf bytes.Buffer
		if err := option.Encode(&buf, img); err != nil {
			return err
		}
		return writeFile(output, buf.Bytes())
	})
}

// Wait blocks until all pending writes have finished.
// Their callbacks may still be waiting in the queue.
func (s *Saver) Wait() {
	s.wg.Wait()
}

func (s *Saver) do(q *Queue, done func(error), fn func() error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sem.Acquire(context.Background(), 1)
		err := fn()
		s.sem.Release(1)

		q.Post(func() { done(err) })
	}()
}

func writeFile(output string, data []byte) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if _, err = f.Write(data); err != nil {
		return
	}
	return f.Sync()
}
