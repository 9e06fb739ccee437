package dist

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Unit is one partition-local computation bound to a specific worker.
// Run returns its partial statistic by value; it must not retain
// references into the partition after returning.
type Unit struct {
	Worker string
	Run    func(ctx context.Context) (any, error)
}

// Dispatcher submits a batch of independent units, each pinned to a named
// worker, and blocks until all complete or one fails. Results come back in
// unit order regardless of completion order; callers must still reduce
// them commutatively because completion order carries no meaning.
type Dispatcher interface {
	Round(ctx context.Context, units []Unit) ([]any, error)
}

type outcome struct {
	result any
	err    error
}

type job struct {
	ctx  context.Context
	key  string
	run  func(ctx context.Context) (any, error)
	done chan<- outcome
}

// Pool runs one serial executor goroutine per named worker, modelling a
// cluster in which every worker owns the partitions placed on it.
// Submitting a unit for worker w guarantees it executes on w's goroutine,
// next to w's data.
type Pool struct {
	queues    map[string]chan job
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool starts one executor per worker name. Close must be called when
// the pool is no longer needed.
func NewPool(workers []string) *Pool {
	p := &Pool{queues: make(map[string]chan job, len(workers))}
	for _, w := range workers {
		ch := make(chan job)
		p.queues[w] = ch
		p.wg.Add(1)
		go p.serve(w, ch)
	}
	return p
}

// NumWorkers returns the number of executors in the pool.
func (p *Pool) NumWorkers() int { return len(p.queues) }

func (p *Pool) serve(worker string, queue chan job) {
	defer p.wg.Done()
	for j := range queue {
		// The round may already be cancelled by the time a queued job
		// reaches the front of this worker's queue; skip the work but
		// still report back so the round can finish collecting.
		if err := j.ctx.Err(); err != nil {
			j.done <- outcome{err: err}
			continue
		}
		logrus.Tracef("worker %s: running unit %s", worker, j.key)
		res, err := j.run(j.ctx)
		j.done <- outcome{result: res, err: err}
	}
}

// Close shuts down all executors and waits for them to drain. Rounds must
// not be in flight when Close is called.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		for _, ch := range p.queues {
			close(ch)
		}
	})
	p.wg.Wait()
}

// Round dispatches one unit per partition and gathers all partial results.
// The first failing unit cancels the round's context: queued units of the
// cancelled round are skipped, in-flight submissions unblock, and a single
// error is returned with no partial results. There are no retries.
//
// Each round carries a fresh UUID key; unit i runs under key "<round>-<i>"
// for log correlation.
func (p *Pool) Round(ctx context.Context, units []Unit) ([]any, error) {
	key := uuid.NewString()
	logrus.Debugf("round %s: dispatching %d units", key, len(units))

	for _, u := range units {
		if _, ok := p.queues[u.Worker]; !ok {
			return nil, fmt.Errorf("round %s: no worker %q in pool", key, u.Worker)
		}
	}

	results := make([]any, len(units))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range units {
		i, u := i, u
		queue := p.queues[u.Worker]
		g.Go(func() error {
			res, err := p.submit(gctx, queue, fmt.Sprintf("%s-%d", key, i), u)
			if err != nil {
				return fmt.Errorf("unit %d on worker %s: %w", i, u.Worker, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("round %s: %w", key, err)
	}
	logrus.Debugf("round %s: all %d units complete", key, len(units))
	return results, nil
}

func (p *Pool) submit(ctx context.Context, queue chan job, key string, u Unit) (any, error) {
	done := make(chan outcome, 1)
	select {
	case queue <- job{ctx: ctx, key: key, run: u.Run, done: done}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	out := <-done
	return out.result, out.err
}

// Collect runs a round through d and asserts every partial result to R.
func Collect[R any](ctx context.Context, d Dispatcher, units []Unit) ([]R, error) {
	raw, err := d.Round(ctx, units)
	if err != nil {
		return nil, err
	}
	out := make([]R, len(raw))
	for i, r := range raw {
		v, ok := r.(R)
		if !ok {
			return nil, fmt.Errorf("unit %d: unexpected partial type %T", i, r)
		}
		out[i] = v
	}
	return out, nil
}
