package rate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type fakeTracker struct {
	mu   sync.Mutex
	last time.Time
}

func (f *fakeTracker) LastRatesUpdate() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeTracker) BumpRatesUpdate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = f.last.Add(time.Hour)
}

func newFreshness(refresher *MockRefresher, age time.Duration) (*Freshness, *fakeTracker) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	tracker := &fakeTracker{last: base}
	f := NewFreshness(tracker, refresher, time.Hour)
	f.now = func() time.Time { return base.Add(age) }
	return f, tracker
}

func TestEnsureFresh_FreshRatesNoRefresh(t *testing.T) {
	refresher := new(MockRefresher)
	f, _ := newFreshness(refresher, 30*time.Minute)

	f.EnsureFresh(context.Background())

	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestEnsureFresh_StaleRatesTriggersRefresh(t *testing.T) {
	refresher := new(MockRefresher)
	f, tracker := newFreshness(refresher, 2*time.Hour)

	refresher.On("Refresh", mock.Anything).Run(func(args mock.Arguments) {
		tracker.BumpRatesUpdate()
	}).Return(3, nil).Once()

	f.EnsureFresh(context.Background())

	refresher.AssertExpectations(t)
}

func TestEnsureFresh_ExactIntervalCountsAsStale(t *testing.T) {
	refresher := new(MockRefresher)
	f, tracker := newFreshness(refresher, time.Hour)

	refresher.On("Refresh", mock.Anything).Run(func(args mock.Arguments) {
		tracker.BumpRatesUpdate()
	}).Return(0, nil).Once()

	f.EnsureFresh(context.Background())

	refresher.AssertExpectations(t)
}

func TestEnsureFresh_RefreshErrorIsAbsorbed(t *testing.T) {
	refresher := new(MockRefresher)
	f, _ := newFreshness(refresher, 2*time.Hour)

	refresher.On("Refresh", mock.Anything).Return(0, errors.New("merge failed")).Once()

	// must not panic or propagate anything
	f.EnsureFresh(context.Background())

	refresher.AssertExpectations(t)
}

func TestEnsureFresh_SecondCallAfterRefreshIsNoop(t *testing.T) {
	refresher := new(MockRefresher)
	f, tracker := newFreshness(refresher, 2*time.Hour)

	refresher.On("Refresh", mock.Anything).Run(func(args mock.Arguments) {
		// bump far enough that the rates are fresh again
		tracker.BumpRatesUpdate()
		tracker.BumpRatesUpdate()
	}).Return(5, nil).Once()

	f.EnsureFresh(context.Background())
	f.EnsureFresh(context.Background())

	refresher.AssertNumberOfCalls(t, "Refresh", 1)
}
