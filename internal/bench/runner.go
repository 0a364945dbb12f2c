// Package bench drives the queue-churn allocation benchmark: a warm-up that
// fills a FIFO queue with large-payload requests, then a churn loop that
// retires the oldest request and allocates a fresh one per iteration.
//
// With a buffer size of zero the churn loop still enqueues on every iteration
// while the dequeue only no-ops on the very first one, so a single request
// stays resident from then on. That asymmetry is deliberate; see README.md.
package bench

import (
	"github.com/Meesho/BharatMLStack/memchurn/internal/queue"
	"github.com/Meesho/BharatMLStack/memchurn/internal/workload"
	"github.com/rs/zerolog/log"
)

// Phase is the runner's position in the fill/churn sequence.
type Phase int

const (
	PhaseFilling Phase = iota
	PhaseChurning
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseFilling:
		return "filling"
	case PhaseChurning:
		return "churning"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Config parameterizes one benchmark run.
type Config struct {
	NumIterations int
	BufferSize    int
}

// Runner executes the benchmark: a warm-up fill of the request queue followed
// by the churn loop. It is single-threaded and owns the queue outright.
type Runner struct {
	cfg   Config
	queue *queue.Queue[*workload.Request]
	phase Phase
}

// NewRunner builds a runner for cfg. Negative iteration or buffer counts are
// clamped to zero, and the ring is pre-sized to the buffer size so the fill
// phase itself never grows it.
func NewRunner(cfg Config) *Runner {
	if cfg.NumIterations < 0 {
		cfg.NumIterations = 0
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}
	return &Runner{
		cfg:   cfg,
		queue: queue.New[*workload.Request](cfg.BufferSize),
		phase: PhaseFilling,
	}
}

// Run executes the fill phase and then the churn phase.
func (r *Runner) Run() {
	r.Fill()
	r.Churn()
}

// Fill enqueues BufferSize freshly built requests, numbered from zero in
// insertion order, then moves the runner to the churn phase.
func (r *Runner) Fill() {
	for i := 0; i < r.cfg.BufferSize; i++ {
		r.queue.Enqueue(workload.NewRequest(int64(i)))
	}
	r.phase = PhaseChurning
	log.Debug().Int("queue_len", r.queue.Len()).Msg("fill phase complete")
}

// Churn performs NumIterations remove-oldest/add-newest cycles, then moves
// the runner to the done phase.
func (r *Runner) Churn() {
	for i := 0; i < r.cfg.NumIterations; i++ {
		r.churnStep(i)
	}
	r.phase = PhaseDone
	log.Debug().Int("queue_len", r.queue.Len()).Msg("churn phase complete")
}

// churnStep discards the oldest request if one exists and enqueues a fresh
// one numbered by the iteration. Iteration numbers restart at zero, so they
// overlap the fill-phase numbers.
func (r *Runner) churnStep(i int) {
	r.queue.Dequeue()
	r.queue.Enqueue(workload.NewRequest(int64(i)))
}

// Phase reports where the runner is in the fill/churn sequence.
func (r *Runner) Phase() Phase {
	return r.phase
}

// QueueLen reports how many requests are currently resident.
func (r *Runner) QueueLen() int {
	return r.queue.Len()
}
