package scheduler

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/GPTx-global/bandoracle/oracle/log"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrRetryExceeded = errors.New("retry attempts exceeded")
)

// Job is a registered request the daemon sends on a fixed interval.
type Job struct {
	RequestID string
	Interval  time.Duration
	// Nonce changes on every reschedule. A fired job whose nonce is no longer
	// the stored one has been superseded and is dropped.
	Nonce    uint64
	Attempts uint64
}

type Scheduler struct {
	wg   sync.WaitGroup
	quit chan struct{}
	once sync.Once
	// mu serializes updates of jobStore; reads go straight to the map.
	mu          sync.Mutex
	jobStore    cmap.ConcurrentMap[string, Job]
	jobQueue    chan Job
	resultQueue chan Job

	maxAttempts uint64
	retryDelay  time.Duration
}

func New(queueSize int, maxAttempts uint64, retryDelay time.Duration) *Scheduler {
	return &Scheduler{
		quit:        make(chan struct{}),
		jobStore:    cmap.New[Job](),
		jobQueue:    make(chan Job, queueSize),
		resultQueue: make(chan Job, queueSize),
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < runtime.NumCPU(); i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}

// Add registers a job and fires it right away. An existing job with the same
// request id is replaced.
func (s *Scheduler) Add(requestID string, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid interval %s for %s", interval, requestID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job := Job{RequestID: requestID, Interval: interval}
	if prev, ok := s.jobStore.Get(requestID); ok {
		job.Nonce = prev.Nonce + 1
	}
	s.jobStore.Set(requestID, job)
	s.fireAfter(0, job)

	return nil
}

// Next schedules the regular send of a job one interval from now.
func (s *Scheduler) Next(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobStore.Get(requestID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, requestID)
	}

	job.Nonce++
	s.jobStore.Set(requestID, job)
	s.fireAfter(job.Interval, job)

	return nil
}

// Retry resends a job after the retry delay, replacing its pending regular
// send. Once the attempts run out the regular schedule is left as is.
func (s *Scheduler) Retry(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobStore.Get(requestID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, requestID)
	}
	if job.Attempts >= s.maxAttempts {
		return fmt.Errorf("%w: %s after %d attempts", ErrRetryExceeded, requestID, job.Attempts)
	}

	job.Attempts++
	job.Nonce++
	s.jobStore.Set(requestID, job)
	s.fireAfter(s.retryDelay, job)

	return nil
}

// Reset clears the retry attempts of a job.
func (s *Scheduler) Reset(requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobStore.Get(requestID); ok {
		job.Attempts = 0
		s.jobStore.Set(requestID, job)
	}
}

func (s *Scheduler) Remove(requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobStore.Remove(requestID)
}

func (s *Scheduler) Has(requestID string) bool {
	return s.jobStore.Has(requestID)
}

func (s *Scheduler) Get(requestID string) (Job, bool) {
	return s.jobStore.Get(requestID)
}

// Result returns the jobs that are due.
func (s *Scheduler) Result() <-chan Job {
	return s.resultQueue
}

func (s *Scheduler) fireAfter(delay time.Duration, job Job) {
	time.AfterFunc(delay, func() {
		select {
		case s.jobQueue <- job:
		case <-s.quit:
		}
	})
}

func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		select {
		case job := <-s.jobQueue:
			current, ok := s.jobStore.Get(job.RequestID)
			if !ok || current.Nonce != job.Nonce {
				log.Debugf("drop superseded job %s (nonce %d)", job.RequestID, job.Nonce)
				continue
			}

			select {
			case s.resultQueue <- job:
			case <-s.quit:
				return
			}

		case <-s.quit:
			return
		}
	}
}
