package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"
	"testing"
	"time"

	"transaction-tree/internal/config"
	"transaction-tree/internal/database"
	"transaction-tree/internal/models"
	"transaction-tree/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// memStore is an in-memory ClosureReader used to drive the aggregator without a database
type memStore struct {
	nodes map[string]*models.Transaction

	getErr     error
	childErr   error
	failOn     string
	closureErr error
	delay      time.Duration

	mu         sync.Mutex
	childCalls int
	inFlight   int
	maxFlight  int
}

func newMemStore() *memStore {
	return &memStore{nodes: make(map[string]*models.Transaction)}
}

func (m *memStore) add(id, parentID, amount string) *models.Transaction {
	node := &models.Transaction{
		ID:       id,
		ParentID: models.StringPtr(parentID),
		Type:     models.TransactionTypeShopping,
		Amount:   models.NewAmount(decimal.RequireFromString(amount)),
	}
	m.nodes[id] = node
	return node
}

func (m *memStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.getErr != nil {
		return nil, m.getErr
	}
	node, ok := m.nodes[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	c := *node
	return &c, nil
}

func (m *memStore) ChildrenOf(ctx context.Context, id string) iter.Seq2[*models.Transaction, error] {
	return func(yield func(*models.Transaction, error) bool) {
		m.enter()
		defer m.leave()

		if m.delay > 0 {
			select {
			case <-time.After(m.delay):
			case <-ctx.Done():
				yield(nil, ctx.Err())
				return
			}
		}
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		if m.childErr != nil && (m.failOn == "" || m.failOn == id) {
			yield(nil, m.childErr)
			return
		}

		for _, node := range m.nodes {
			if node.ParentID != nil && *node.ParentID == id {
				c := *node
				if !yield(&c, nil) {
					return
				}
			}
		}
	}
}

func (m *memStore) SubtreeClosure(ctx context.Context, rootID string) iter.Seq2[*models.Transaction, error] {
	return func(yield func(*models.Transaction, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		if m.closureErr != nil {
			yield(nil, m.closureErr)
			return
		}
		if _, ok := m.nodes[rootID]; !ok {
			return
		}

		seen := map[string]bool{rootID: true}
		queue := []string{rootID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			c := *m.nodes[id]
			if !yield(&c, nil) {
				return
			}
			for _, node := range m.nodes {
				if node.ParentID != nil && *node.ParentID == id && !seen[node.ID] {
					seen[node.ID] = true
					queue = append(queue, node.ID)
				}
			}
		}
	}
}

func (m *memStore) enter() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.childCalls++
	m.inFlight++
	if m.inFlight > m.maxFlight {
		m.maxFlight = m.inFlight
	}
}

func (m *memStore) leave() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight--
}

// exhaustiveSum is the reference oracle: plain recursion over an acyclic store
func exhaustiveSum(m *memStore, id string) decimal.Decimal {
	node, ok := m.nodes[id]
	if !ok {
		return decimal.Zero
	}
	sum := node.Amount.Decimal
	for _, child := range m.nodes {
		if child.ParentID != nil && *child.ParentID == id {
			sum = sum.Add(exhaustiveSum(m, child.ID))
		}
	}
	return sum
}

func skewedChain(m *memStore) {
	m.add("a", "", "300")
	m.add("b", "a", "200")
	m.add("c", "b", "100")
}

func binaryTree(m *memStore) {
	m.add("a", "", "300")
	m.add("b", "a", "200")
	m.add("c", "a", "100")
	m.add("d", "b", "10")
	m.add("e", "b", "20")
	m.add("f", "c", "30")
	m.add("g", "c", "40")
}

func aggregationConfig(strategy string) *config.AggregationConfig {
	return &config.AggregationConfig{
		Strategy:       strategy,
		MaxFanOut:      4,
		Timeout:        5 * time.Second,
		IncludeDeleted: true,
	}
}

func discardLogger() AggregationLoggerInterface {
	return NewAggregationLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type SubtreeAggregatorTestSuite struct {
	suite.Suite
	strategy string
	store    *memStore
	metrics  *PrometheusMetrics
	ctx      context.Context
}

func TestSubtreeAggregator_Walk(t *testing.T) {
	suite.Run(t, &SubtreeAggregatorTestSuite{strategy: config.StrategyWalk})
}

func TestSubtreeAggregator_Closure(t *testing.T) {
	suite.Run(t, &SubtreeAggregatorTestSuite{strategy: config.StrategyClosure})
}

func (s *SubtreeAggregatorTestSuite) SetupTest() {
	s.store = newMemStore()
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.ctx = context.Background()
}

func (s *SubtreeAggregatorTestSuite) newAggregator(mutate ...func(*config.AggregationConfig)) SubtreeAggregatorInterface {
	cfg := aggregationConfig(s.strategy)
	for _, fn := range mutate {
		fn(cfg)
	}
	aggregator, err := NewSubtreeAggregator(s.store, cfg, s.metrics, discardLogger())
	s.Require().NoError(err)
	return aggregator
}

func (s *SubtreeAggregatorTestSuite) assertSum(aggregator SubtreeAggregatorInterface, id, expected string) {
	sum, err := aggregator.SumSubtree(s.ctx, id)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString(expected).Equal(sum), "sum of %s: expected %s, got %s", id, expected, sum)
}

func (s *SubtreeAggregatorTestSuite) TestStrategy() {
	s.Equal(s.strategy, s.newAggregator().Strategy())
}

func (s *SubtreeAggregatorTestSuite) TestSkewedChain() {
	skewedChain(s.store)
	aggregator := s.newAggregator()

	s.assertSum(aggregator, "a", "600")
	s.assertSum(aggregator, "b", "300")
	s.assertSum(aggregator, "c", "100")
}

func (s *SubtreeAggregatorTestSuite) TestBinaryTree() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	s.assertSum(aggregator, "a", "700")
	s.assertSum(aggregator, "b", "230")
	s.assertSum(aggregator, "c", "170")
}

func (s *SubtreeAggregatorTestSuite) TestUnknownRootIsZero() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	sum, err := aggregator.SumSubtree(s.ctx, "nonexistent-id")
	s.NoError(err)
	s.True(sum.IsZero())
	s.Equal("0.00", sum.StringFixed(2))
}

func (s *SubtreeAggregatorTestSuite) TestLeafIsOwnAmount() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	for _, leaf := range []string{"d", "e", "f", "g"} {
		s.assertSum(aggregator, leaf, s.store.nodes[leaf].Amount.String())
	}
}

func (s *SubtreeAggregatorTestSuite) TestIdempotent() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	first, err := aggregator.SumSubtree(s.ctx, "a")
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		again, err := aggregator.SumSubtree(s.ctx, "a")
		s.Require().NoError(err)
		s.True(first.Equal(again))
	}
}

func (s *SubtreeAggregatorTestSuite) TestExactDecimalArithmetic() {
	s.store.add("root", "", "0.10")
	for i := 0; i < 1000; i++ {
		s.store.add(fmt.Sprintf("n%d", i), "root", "0.10")
	}

	s.assertSum(s.newAggregator(), "root", "100.10")
}

func (s *SubtreeAggregatorTestSuite) TestNegativeAmounts() {
	s.store.add("a", "", "100.00")
	s.store.add("b", "a", "-40.25")
	s.store.add("c", "a", "-0.75")

	s.assertSum(s.newAggregator(), "a", "59.00")
}

func (s *SubtreeAggregatorTestSuite) TestRandomForestsMatchExhaustiveSum() {
	for round := 0; round < 10; round++ {
		s.store = newMemStore()
		count := gofakeit.IntRange(1, 150)
		ids := make([]string, 0, count)
		for i := 0; i < count; i++ {
			id := fmt.Sprintf("r%d-n%d", round, i)
			parent := ""
			if i > 0 && gofakeit.IntRange(0, 9) > 1 {
				parent = ids[gofakeit.IntRange(0, i-1)]
			}
			amount := decimal.NewFromFloat(gofakeit.Price(-500, 5000)).Round(2)
			s.store.add(id, parent, amount.String())
			ids = append(ids, id)
		}

		aggregator := s.newAggregator()
		for _, id := range ids {
			sum, err := aggregator.SumSubtree(s.ctx, id)
			s.Require().NoError(err)
			expected := exhaustiveSum(s.store, id)
			s.True(expected.Equal(sum), "node %s: expected %s, got %s", id, expected, sum)
		}
	}
}

func (s *SubtreeAggregatorTestSuite) TestCycleTerminates() {
	s.store.add("a", "c", "1")
	s.store.add("b", "a", "2")
	s.store.add("c", "b", "4")

	aggregator := s.newAggregator()

	for _, id := range []string{"a", "b", "c"} {
		s.assertSum(aggregator, id, "7")
	}
}

func (s *SubtreeAggregatorTestSuite) TestSelfLoopTerminates() {
	s.store.add("a", "a", "5")
	s.store.add("b", "a", "1")

	s.assertSum(s.newAggregator(), "a", "6")
}

func (s *SubtreeAggregatorTestSuite) TestCycleWithBranch() {
	s.store.add("a", "c", "1")
	s.store.add("b", "a", "2")
	s.store.add("c", "b", "4")
	s.store.add("d", "b", "8")
	s.store.add("e", "d", "16")

	aggregator := s.newAggregator()

	s.assertSum(aggregator, "a", "31")
	s.assertSum(aggregator, "d", "24")
}

func (s *SubtreeAggregatorTestSuite) TestIncludesSoftDeletedByDefault() {
	binaryTree(s.store)
	s.store.nodes["b"].IsDeleted = true

	s.assertSum(s.newAggregator(), "a", "700")
}

func (s *SubtreeAggregatorTestSuite) TestExcludeSoftDeletedKeepsDescendants() {
	binaryTree(s.store)
	s.store.nodes["b"].IsDeleted = true

	aggregator := s.newAggregator(func(cfg *config.AggregationConfig) {
		cfg.IncludeDeleted = false
	})

	s.assertSum(aggregator, "a", "500")
	s.assertSum(aggregator, "b", "30")
}

func (s *SubtreeAggregatorTestSuite) TestCancelledContext() {
	binaryTree(s.store)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	sum, err := s.newAggregator().SumSubtree(ctx, "a")
	s.ErrorIs(err, context.Canceled)
	s.True(sum.IsZero())
}

func (s *SubtreeAggregatorTestSuite) TestTimeout() {
	if s.strategy != config.StrategyWalk {
		s.T().Skip("the in-memory closure query does not block")
	}
	skewedChain(s.store)
	s.store.delay = time.Second

	aggregator := s.newAggregator(func(cfg *config.AggregationConfig) {
		cfg.Timeout = 20 * time.Millisecond
	})

	_, err := aggregator.SumSubtree(s.ctx, "a")
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *SubtreeAggregatorTestSuite) TestStoreErrorOnRootIsReturnedUnmodified() {
	skewedChain(s.store)
	storeErr := errors.New("connection reset by peer")
	s.store.getErr = storeErr
	s.store.closureErr = storeErr

	_, err := s.newAggregator().SumSubtree(s.ctx, "a")
	s.Same(storeErr, err)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.aggregationsTotal.WithLabelValues(s.strategy, "failed")))
}

func (s *SubtreeAggregatorTestSuite) TestIsInSubtree() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	cases := []struct {
		root, candidate string
		expected        bool
	}{
		{"a", "a", true},
		{"a", "g", true},
		{"b", "e", true},
		{"b", "f", false},
		{"d", "a", false},
		{"nonexistent-id", "a", false},
	}

	for _, tc := range cases {
		found, err := aggregator.IsInSubtree(s.ctx, tc.root, tc.candidate)
		s.Require().NoError(err)
		s.Equal(tc.expected, found, "%s in subtree of %s", tc.candidate, tc.root)
	}
}

func (s *SubtreeAggregatorTestSuite) TestConcurrentCallsDoNotInterfere() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	expected := map[string]string{"a": "700", "b": "230", "c": "170", "d": "10", "nonexistent-id": "0"}

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 20; i++ {
		for id, want := range expected {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sum, err := aggregator.SumSubtree(s.ctx, id)
				if err != nil {
					errs <- err
					return
				}
				if !sum.Equal(decimal.RequireFromString(want)) {
					errs <- fmt.Errorf("sum of %s: expected %s, got %s", id, want, sum)
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}

func (s *SubtreeAggregatorTestSuite) TestMetricsRecorded() {
	binaryTree(s.store)
	aggregator := s.newAggregator()

	_, err := aggregator.SumSubtree(s.ctx, "a")
	s.Require().NoError(err)

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.aggregationsTotal.WithLabelValues(s.strategy, "success")))
	s.Equal(1, testutil.CollectAndCount(s.metrics.aggregationNodes))
}

func TestWalk_VisitsEachNodeOnce(t *testing.T) {
	store := newMemStore()
	binaryTree(store)

	aggregator, err := NewSubtreeAggregator(store, aggregationConfig(config.StrategyWalk), NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())
	require.NoError(t, err)

	_, err = aggregator.SumSubtree(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, 7, store.childCalls)
}

func TestWalk_FanOutIsBounded(t *testing.T) {
	store := newMemStore()
	store.add("root", "", "1")
	for i := 0; i < 32; i++ {
		store.add(fmt.Sprintf("child-%d", i), "root", "1")
	}
	store.delay = 5 * time.Millisecond

	cfg := aggregationConfig(config.StrategyWalk)
	cfg.MaxFanOut = 3
	aggregator, err := NewSubtreeAggregator(store, cfg, NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())
	require.NoError(t, err)

	sum, err := aggregator.SumSubtree(context.Background(), "root")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(33).Equal(sum))
	assert.LessOrEqual(t, store.maxFlight, 3)
	assert.Greater(t, store.maxFlight, 1)
}

func TestWalk_ChildStoreErrorIsReturnedUnmodified(t *testing.T) {
	store := newMemStore()
	binaryTree(store)
	storeErr := errors.New("too many connections")
	store.childErr = storeErr
	store.failOn = "e"

	aggregator, err := NewSubtreeAggregator(store, aggregationConfig(config.StrategyWalk), NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())
	require.NoError(t, err)

	sum, err := aggregator.SumSubtree(context.Background(), "a")

	assert.Same(t, storeErr, err)
	assert.True(t, sum.IsZero())
}

func TestWalk_CycleIsCounted(t *testing.T) {
	store := newMemStore()
	store.add("a", "b", "1")
	store.add("b", "a", "2")
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	aggregator, err := NewSubtreeAggregator(store, aggregationConfig(config.StrategyWalk), metrics, discardLogger())
	require.NoError(t, err)

	sum, err := aggregator.SumSubtree(context.Background(), "a")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(3).Equal(sum))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cyclesDetected))
}

func TestNewSubtreeAggregator_ClosureNeedsClosureReader(t *testing.T) {
	var store repositories.TreeReader = struct{ repositories.TreeReader }{newMemStore()}

	_, err := NewSubtreeAggregator(store, aggregationConfig(config.StrategyClosure), NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())

	assert.ErrorIs(t, err, ErrClosureUnsupported)
}

func TestNewSubtreeAggregator_Defaults(t *testing.T) {
	aggregator, err := NewSubtreeAggregator(newMemStore(), &config.AggregationConfig{}, NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())
	require.NoError(t, err)

	concrete := aggregator.(*SubtreeAggregator)
	assert.Equal(t, config.StrategyWalk, concrete.strategy)
	assert.Equal(t, 1, concrete.maxFanOut)
}

// Both strategies against the real repository on sqlite

type SubtreeAggregatorStoreSuite struct {
	suite.Suite
	db   *database.DB
	repo repositories.TransactionRepositoryInterface
}

func TestSubtreeAggregatorStoreSuite(t *testing.T) {
	suite.Run(t, new(SubtreeAggregatorStoreSuite))
}

func (s *SubtreeAggregatorStoreSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewTransactionRepository(s.db.DB)
}

func (s *SubtreeAggregatorStoreSuite) aggregators() map[string]SubtreeAggregatorInterface {
	out := make(map[string]SubtreeAggregatorInterface)
	for _, strategy := range []string{config.StrategyWalk, config.StrategyClosure} {
		aggregator, err := NewSubtreeAggregator(s.repo, aggregationConfig(strategy), NewPrometheusMetrics(prometheus.NewRegistry()), discardLogger())
		s.Require().NoError(err)
		out[strategy] = aggregator
	}
	return out
}

func (s *SubtreeAggregatorStoreSuite) TestBinaryTree() {
	a := database.CreateTestTransaction(s.T(), s.db, "", "300")
	b := database.CreateTestTransaction(s.T(), s.db, a.ID, "200")
	c := database.CreateTestTransaction(s.T(), s.db, a.ID, "100")
	database.CreateTestTransaction(s.T(), s.db, b.ID, "10")
	database.CreateTestTransaction(s.T(), s.db, b.ID, "20")
	database.CreateTestTransaction(s.T(), s.db, c.ID, "30")
	database.CreateTestTransaction(s.T(), s.db, c.ID, "40.55")

	expected := map[string]string{a.ID: "700.55", b.ID: "230", c.ID: "170.55", "nonexistent-id": "0"}

	for strategy, aggregator := range s.aggregators() {
		for id, want := range expected {
			sum, err := aggregator.SumSubtree(context.Background(), id)
			s.Require().NoError(err, strategy)
			s.True(decimal.RequireFromString(want).Equal(sum), "%s: sum of %s expected %s got %s", strategy, id, want, sum)
		}
	}
}

func (s *SubtreeAggregatorStoreSuite) TestCycle() {
	a := database.CreateTestTransaction(s.T(), s.db, "", "1")
	b := database.CreateTestTransaction(s.T(), s.db, a.ID, "2")
	c := database.CreateTestTransaction(s.T(), s.db, b.ID, "4")
	database.ForceParent(s.T(), s.db, a.ID, c.ID)

	for strategy, aggregator := range s.aggregators() {
		sum, err := aggregator.SumSubtree(context.Background(), b.ID)
		s.Require().NoError(err, strategy)
		s.True(decimal.NewFromInt(7).Equal(sum), "%s: got %s", strategy, sum)
	}
}

func (s *SubtreeAggregatorStoreSuite) TestSoftDeletedParentStillReachable() {
	a := database.CreateTestTransaction(s.T(), s.db, "", "300")
	b := database.CreateTestTransaction(s.T(), s.db, a.ID, "200")
	database.CreateTestTransaction(s.T(), s.db, b.ID, "100")

	_, err := s.repo.MarkDeleted(context.Background(), b.ID)
	s.Require().NoError(err)

	for strategy, aggregator := range s.aggregators() {
		sum, err := aggregator.SumSubtree(context.Background(), a.ID)
		s.Require().NoError(err, strategy)
		s.True(decimal.NewFromInt(600).Equal(sum), "%s: got %s", strategy, sum)
	}
}

func (s *SubtreeAggregatorStoreSuite) TestEighteenDigitAmountsKeepPrecision() {
	root := database.CreateTestTransaction(s.T(), s.db, "", "123456789012345678.91")
	database.CreateTestTransaction(s.T(), s.db, root.ID, "0.01")

	stored, err := s.repo.Get(context.Background(), root.ID)
	s.Require().NoError(err)
	s.Equal("123456789012345678.91", stored.Amount.String())

	want := decimal.RequireFromString("123456789012345678.92")
	for strategy, aggregator := range s.aggregators() {
		sum, err := aggregator.SumSubtree(context.Background(), root.ID)
		s.Require().NoError(err, strategy)
		s.True(want.Equal(sum), "%s: got %s", strategy, sum)
	}
}
