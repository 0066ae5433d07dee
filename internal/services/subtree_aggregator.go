package services

import (
	"context"
	"errors"
	"time"

	"transaction-tree/internal/config"
	"transaction-tree/internal/models"
	"transaction-tree/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrClosureUnsupported = errors.New("record store does not support recursive closure queries")
)

// visitFunc is called once per distinct node of a subtree. Returning false stops the traversal.
type visitFunc func(node *models.Transaction) bool

// SubtreeAggregator sums amounts over a node and its descendant closure.
// It holds no traversal state between calls, so one instance serves concurrent requests.
type SubtreeAggregator struct {
	store          repositories.TreeReader
	closureStore   repositories.ClosureReader
	strategy       string
	maxFanOut      int
	timeout        time.Duration
	includeDeleted bool
	metrics        MetricsRecorderInterface
	logger         AggregationLoggerInterface
}

func NewSubtreeAggregator(
	store repositories.TreeReader,
	cfg *config.AggregationConfig,
	metrics MetricsRecorderInterface,
	logger AggregationLoggerInterface,
) (SubtreeAggregatorInterface, error) {
	a := &SubtreeAggregator{
		store:          store,
		strategy:       cfg.Strategy,
		maxFanOut:      cfg.MaxFanOut,
		timeout:        cfg.Timeout,
		includeDeleted: cfg.IncludeDeleted,
		metrics:        metrics,
		logger:         logger,
	}

	if a.strategy == "" {
		a.strategy = config.StrategyWalk
	}
	if a.maxFanOut < 1 {
		a.maxFanOut = 1
	}

	if a.strategy == config.StrategyClosure {
		closureStore, ok := store.(repositories.ClosureReader)
		if !ok {
			return nil, ErrClosureUnsupported
		}
		a.closureStore = closureStore
	}

	return a, nil
}

func (a *SubtreeAggregator) Strategy() string {
	return a.strategy
}

// SumSubtree returns the inclusive subtree sum of rootID rounded to two fractional digits.
// Store failures and context errors are returned as they were received.
func (a *SubtreeAggregator) SumSubtree(ctx context.Context, rootID string) (decimal.Decimal, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	tags := map[string]string{"strategy": a.strategy}
	a.logger.LogAggregationStarted(ctx, rootID, a.strategy)

	sum := decimal.Zero
	visited := 0
	err := a.traverse(ctx, rootID, func(node *models.Transaction) bool {
		visited++
		if a.includeDeleted || !node.IsDeleted {
			sum = sum.Add(node.Amount.Decimal)
		}
		return true
	})

	duration := time.Since(start)
	a.metrics.RecordProcessingTime("aggregation."+a.strategy, duration)

	if err != nil {
		a.metrics.IncrementCounter("aggregation.failed", tags)
		a.logger.LogAggregationFailed(ctx, rootID, a.strategy, err.Error(), duration.Milliseconds())
		return decimal.Zero, err
	}

	sum = sum.Round(models.AmountScale)

	a.metrics.IncrementCounter("aggregation.completed", tags)
	a.metrics.RecordGauge("aggregation.nodes_visited", float64(visited), tags)
	a.logger.LogAggregationCompleted(ctx, rootID, a.strategy, visited, sum, duration.Milliseconds())

	return sum, nil
}

func (a *SubtreeAggregator) IsInSubtree(ctx context.Context, rootID, candidateID string) (bool, error) {
	if rootID == candidateID {
		return true, nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	found := false
	err := a.traverse(ctx, rootID, func(node *models.Transaction) bool {
		found = node.ID == candidateID
		return !found
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (a *SubtreeAggregator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *SubtreeAggregator) traverse(ctx context.Context, rootID string, visit visitFunc) error {
	if a.strategy == config.StrategyClosure {
		return a.closure(ctx, rootID, visit)
	}
	return a.walk(ctx, rootID, visit)
}

// walk visits the subtree level by level. Children of a whole level are fetched concurrently,
// at most maxFanOut at a time; the visited set and visit are only touched by this goroutine.
func (a *SubtreeAggregator) walk(ctx context.Context, rootID string, visit visitFunc) error {
	root, err := a.store.Get(ctx, rootID)
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	visited := map[string]struct{}{root.ID: {}}
	if !visit(root) {
		return nil
	}

	frontier := []string{root.ID}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		levels, err := a.expand(ctx, frontier)
		if err != nil {
			return err
		}

		var next []string
		for _, children := range levels {
			for _, child := range children {
				if _, seen := visited[child.ID]; seen {
					a.cycleDetected(ctx, rootID, child.ID)
					continue
				}
				visited[child.ID] = struct{}{}

				if !visit(child) {
					return nil
				}
				next = append(next, child.ID)
			}
		}
		frontier = next
	}

	return nil
}

// expand fetches the direct children of every id in frontier. The first failure cancels the
// remaining fetches and is returned.
func (a *SubtreeAggregator) expand(ctx context.Context, frontier []string) ([][]*models.Transaction, error) {
	levels := make([][]*models.Transaction, len(frontier))

	if len(frontier) == 1 {
		children, err := a.childrenOf(ctx, frontier[0])
		if err != nil {
			return nil, err
		}
		levels[0] = children
		return levels, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxFanOut)

	for i, id := range frontier {
		g.Go(func() error {
			children, err := a.childrenOf(gctx, id)
			if err != nil {
				return err
			}
			levels[i] = children
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return levels, nil
}

// childrenOf drains one ChildrenOf stream so the store cursor is released before the next fetch
func (a *SubtreeAggregator) childrenOf(ctx context.Context, id string) ([]*models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var children []*models.Transaction
	for child, err := range a.store.ChildrenOf(ctx, id) {
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

func (a *SubtreeAggregator) closure(ctx context.Context, rootID string, visit visitFunc) error {
	visited := make(map[string]struct{})

	for node, err := range a.closureStore.SubtreeClosure(ctx, rootID) {
		if err != nil {
			return err
		}
		if _, seen := visited[node.ID]; seen {
			a.cycleDetected(ctx, rootID, node.ID)
			continue
		}
		visited[node.ID] = struct{}{}

		if !visit(node) {
			return nil
		}
	}

	return ctx.Err()
}

func (a *SubtreeAggregator) cycleDetected(ctx context.Context, rootID, nodeID string) {
	a.metrics.IncrementCounter("aggregation.cycle_detected", map[string]string{"strategy": a.strategy})
	a.logger.LogCycleDetected(ctx, rootID, nodeID)
}
