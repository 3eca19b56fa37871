package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/MarquessV/marquess-lib/utils/collections"
	"github.com/MarquessV/marquess-lib/utils/math"
	"github.com/MarquessV/marquess-lib/utils/service"

	log "github.com/sirupsen/logrus"
)

var (
	ErrMismatch = errors.New("tree disagrees with reference set")
	ErrRunning  = errors.New("stress run still in progress")
)

type Op string

const (
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpFind   Op = "find"
	OpVerify Op = "verify"
)

type Stats struct {
	Steps  int
	Ops    map[Op]int
	Size   int
	Height int
}

// Runner applies a random insert/remove/find workload to a red-black tree
// and checks every outcome against a hash set holding the same keys.
type Runner struct {
	service.SimpleService
	cfg Config
	// guards everything below, the tree must not be seen mid-rotation
	lock     sync.Mutex
	tree     collections.OrderedSet[int]
	oracle   collections.Set[int]
	live     collections.Vector[int]
	counters collections.Map[Op, int]
	rng      *rand.Rand
	steps    int
	err      error
	// closed once the workload may no longer step, nil before Start
	done <-chan struct{}
	// log
	log *log.Entry
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := log.WithFields(log.Fields{"component": "stress", "seed": cfg.Seed})
	instance := &Runner{
		cfg:      cfg,
		tree:     collections.NewRedBlackTree[int](),
		oracle:   collections.NewHashSet(collections.Identity[int]),
		live:     collections.NewVector[int](),
		counters: collections.NewHashMap[Op, int](),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		log:      logger,
	}
	instance.SimpleService = *service.NewSimpleService(instance)
	return instance, nil
}

func (r *Runner) OnStart(ctx context.Context) error {
	r.log.Info("stress run started")
	r.lock.Lock()
	r.done = ctx.Done()
	r.lock.Unlock()
	go r.WorkRoutine(ctx)
	go r.ReportRoutine(ctx, r.cfg.ReportInterval)
	return nil
}

// OnStop runs under the service lock, it must not call back into the
// service.
func (r *Runner) OnStop() {
	stats := r.Stats()
	r.log.WithFields(log.Fields{
		"steps":  stats.Steps,
		"size":   stats.Size,
		"height": stats.Height,
	}).Info("stress run stopped")
}

func (r *Runner) WorkRoutine(ctx context.Context) {
	for {
		steps, ok, err := r.advance(ctx)
		if err != nil {
			r.log.WithError(err).Error("stress step failed")
			r.Stop()
			return
		}
		if !ok {
			return
		}
		if r.cfg.Operations > 0 && steps >= r.cfg.Operations {
			r.log.Debug("operation budget reached")
			r.Stop()
			return
		}
	}
}

func (r *Runner) ReportRoutine(ctx context.Context, interval time.Duration) {
	timer := time.NewTimer(interval)
	for {
		select {
		case <-timer.C:
			stats := r.Stats()
			r.log.WithFields(log.Fields{
				"steps":  stats.Steps,
				"size":   stats.Size,
				"height": stats.Height,
				"ops":    stats.Ops,
			}).Info("report")
			timer.Reset(interval)
		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return
		}
	}
}

// Step applies one random operation. After the first failure every call
// returns that failure.
func (r *Runner) Step() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return r.err
	}
	r.err = r.step()
	return r.err
}

// advance steps once unless ctx is done, and returns the steps taken so far.
// The ctx check happens under the lock, so no step lands after the caller of
// Serve has seen the run end.
func (r *Runner) advance(ctx context.Context) (int, bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return r.steps, false, r.err
	}
	if ctx.Err() != nil {
		return r.steps, false, nil
	}
	r.err = r.step()
	return r.steps, true, r.err
}

func (r *Runner) step() error {
	r.steps++
	var err error
	p := r.rng.Float64()
	switch {
	case p < r.cfg.InsertRatio:
		err = r.insert(r.rng.Intn(r.cfg.MaxKey))
	case p < r.cfg.InsertRatio+(1-r.cfg.InsertRatio)/2:
		err = r.remove()
	default:
		err = r.find(r.rng.Intn(r.cfg.MaxKey))
	}
	if err != nil {
		return fmt.Errorf("step %d: %w", r.steps, err)
	}
	if r.cfg.VerifyEvery > 0 && r.steps%r.cfg.VerifyEvery == 0 {
		if err = r.verify(); err != nil {
			return fmt.Errorf("step %d: %w", r.steps, err)
		}
	}
	return nil
}

func (r *Runner) count(op Op) {
	_ = r.counters.Put(op, r.counters.GetOrDefault(op, 0)+1, true)
}

func (r *Runner) insert(k int) error {
	r.count(OpInsert)
	expected := !r.oracle.Contains(k)
	if got := r.tree.Insert(k); got != expected {
		return fmt.Errorf("%w: insert(%d) returned %v", ErrMismatch, k, got)
	}
	if !r.tree.Find(k) {
		return fmt.Errorf("%w: %d not found after insert", ErrMismatch, k)
	}
	if !expected {
		return nil
	}
	if err := r.oracle.Add(k); err != nil {
		return err
	}
	r.live.PushBack(k)
	return nil
}

// remove takes a random live key, or a random absent one when nothing is
// live.
func (r *Runner) remove() error {
	r.count(OpRemove)
	if r.live.Empty() {
		k := r.rng.Intn(r.cfg.MaxKey)
		if r.tree.Remove(k) {
			return fmt.Errorf("%w: remove(%d) succeeded on an empty tree", ErrMismatch, k)
		}
		return nil
	}
	i := r.rng.Intn(r.live.Size())
	k, err := r.live.At(i)
	if err != nil {
		return err
	}
	last, err := r.live.Pop()
	if err != nil {
		return err
	}
	if i < r.live.Size() {
		if err = r.live.Set(i, last); err != nil {
			return err
		}
	}
	return r.removeLive(k)
}

func (r *Runner) removeLive(k int) error {
	if !r.tree.Find(k) {
		return fmt.Errorf("%w: %d missing before remove", ErrMismatch, k)
	}
	if !r.tree.Remove(k) {
		return fmt.Errorf("%w: remove(%d) returned false", ErrMismatch, k)
	}
	if r.tree.Find(k) {
		return fmt.Errorf("%w: %d still found after remove", ErrMismatch, k)
	}
	return r.oracle.Remove(k)
}

func (r *Runner) find(k int) error {
	r.count(OpFind)
	if got, expected := r.tree.Find(k), r.oracle.Contains(k); got != expected {
		return fmt.Errorf("%w: find(%d) returned %v", ErrMismatch, k, got)
	}
	return nil
}

func (r *Runner) verify() error {
	r.count(OpVerify)
	if err := r.tree.Verify(); err != nil {
		return err
	}
	size := r.tree.Size()
	if size != r.oracle.Size() {
		return fmt.Errorf("%w: size %d, expected %d", ErrMismatch, size, r.oracle.Size())
	}
	if dumped := len(r.tree.Dump()); dumped != size {
		return fmt.Errorf("%w: dump holds %d entries, size is %d", ErrMismatch, dumped, size)
	}
	// at most 2*log2(n+1) nodes on any root to leaf path
	if size > 0 && r.tree.Height()+1 > 2*math.Log2Ceil(size+1) {
		return fmt.Errorf("%w: height %d too large for %d keys", collections.ErrTreeCorrupted, r.tree.Height(), size)
	}
	return nil
}

// Drain removes every live key and checks the tree ends up empty. It returns
// ErrRunning while a started run can still step.
func (r *Runner) Drain() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.done != nil {
		select {
		case <-r.done:
		default:
			return ErrRunning
		}
	}
	for !r.live.Empty() {
		k, err := r.live.Pop()
		if err != nil {
			return err
		}
		r.count(OpRemove)
		if err = r.removeLive(k); err != nil {
			r.err = fmt.Errorf("drain: %w", err)
			return r.err
		}
	}
	if r.tree.Size() != 0 {
		r.err = fmt.Errorf("drain: %w: %d keys left", ErrMismatch, r.tree.Size())
		return r.err
	}
	if err := r.tree.Verify(); err != nil {
		r.err = fmt.Errorf("drain: %w", err)
	}
	return r.err
}

// Steps is the number of operations applied so far.
func (r *Runner) Steps() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.steps
}

func (r *Runner) Err() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.err
}

func (r *Runner) Stats() Stats {
	r.lock.Lock()
	defer r.lock.Unlock()
	ops := make(map[Op]int, r.counters.Size())
	for _, op := range r.counters.Keys() {
		ops[op] = r.counters.GetOrDefault(op, 0)
	}
	return Stats{
		Steps:  r.steps,
		Ops:    ops,
		Size:   r.tree.Size(),
		Height: r.tree.Height(),
	}
}
