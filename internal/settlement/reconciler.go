package settlement

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultPageSize = 500

type BetRepo interface {
	FindSettleCandidates(ctx context.Context, since time.Time, afterID, limit int) ([]domain.BetSlip, error)
	Selections(ctx context.Context, betIDs []int) ([]domain.Selection, error)
}

type Settler interface {
	Settle(ctx context.Context, slip domain.BetSlip) (bool, error)
}

type Options struct {
	Interval time.Duration
	Lookback time.Duration
	Workers  int
}

// Reconciler settles finished slips nobody has opened since their matches
// ended. It goes through the same Settle as the read path, so the slip row
// lock keeps the two from crediting twice.
type Reconciler struct {
	betRepo    BetRepo
	settler    Settler
	workerPool WorkerPoolI
	interval   time.Duration
	lookback   time.Duration
	pageSize   int
	now        func() time.Time
	inFlight   sync.Map
}

func New(betRepo BetRepo, settler Settler, opts Options) *Reconciler {
	return &Reconciler{
		betRepo:    betRepo,
		settler:    settler,
		workerPool: NewWorkerPool(opts.Workers),
		interval:   opts.Interval,
		lookback:   opts.Lookback,
		pageSize:   defaultPageSize,
		now:        time.Now,
	}
}

// Run settles on every tick until ctx is done. It returns only after the
// pass in flight has finished.
func (r *Reconciler) Run(ctx context.Context) {
	zap.L().Info("settlement reconciler started", zap.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer r.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping settlement reconciler")
			return
		case <-ticker.C:
			n, err := r.Reconcile(ctx)
			if err != nil {
				zap.L().Error("settlement pass failed", zap.Error(err))
				continue
			}
			if n > 0 {
				zap.L().Info("settlement pass credited slips", zap.Int("count", n))
			}
		}
	}
}

// Reconcile runs one pass over the lookback window and returns how many
// slips this pass credited.
func (r *Reconciler) Reconcile(ctx context.Context) (int, error) {
	since := r.now().Add(-r.lookback)
	var credited atomic.Int64

	afterID := 0
	for {
		slips, err := r.betRepo.FindSettleCandidates(ctx, since, afterID, r.pageSize)
		if err != nil {
			return int(credited.Load()), fmt.Errorf("find settle candidates: %w", err)
		}
		if len(slips) == 0 {
			break
		}
		if err := r.attachSelections(ctx, slips); err != nil {
			return int(credited.Load()), err
		}
		if err := r.settlePage(ctx, slips, &credited); err != nil {
			return int(credited.Load()), err
		}
		if len(slips) < r.pageSize {
			break
		}
		afterID = slips[len(slips)-1].ID
	}
	return int(credited.Load()), nil
}

func (r *Reconciler) attachSelections(ctx context.Context, slips []domain.BetSlip) error {
	ids := make([]int, 0, len(slips))
	for _, s := range slips {
		ids = append(ids, s.ID)
	}
	selections, err := r.betRepo.Selections(ctx, ids)
	if err != nil {
		return fmt.Errorf("load selections: %w", err)
	}
	byBet := make(map[int][]domain.Selection, len(slips))
	for _, sel := range selections {
		byBet[sel.BetID] = append(byBet[sel.BetID], sel)
	}
	for i := range slips {
		slips[i].Selections = byBet[slips[i].ID]
	}
	return nil
}

func (r *Reconciler) settlePage(ctx context.Context, slips []domain.BetSlip, credited *atomic.Int64) error {
	var (
		g    errgroup.Group
		done sync.WaitGroup
	)
	for _, slip := range slips {
		if _, loaded := r.inFlight.LoadOrStore(slip.ID, struct{}{}); loaded {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer r.inFlight.Delete(slip.ID)
				ok, err := r.settler.Settle(ctx, slip)
				if ok {
					credited.Add(1)
				}
				return err
			})
			if err != nil {
				done.Done()
				r.inFlight.Delete(slip.ID)
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	done.Wait()
	return err
}
