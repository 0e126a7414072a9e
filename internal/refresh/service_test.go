package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/dividend"
	"github.com/hisakawa/shisan/internal/domain"
)

type stubHydrator struct {
	mu       sync.Mutex
	calls    int
	err      error
	block    chan struct{} // when set, HydrateAll blocks until closed
	enriched []domain.EnrichedHolding
}

func (h *stubHydrator) HydrateAll(_ context.Context, _ []domain.StoredHolding) ([]domain.EnrichedHolding, error) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	if h.block != nil {
		<-h.block
	}
	if h.err != nil {
		return nil, h.err
	}
	return h.enriched, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func testEnriched() []domain.EnrichedHolding {
	return []domain.EnrichedHolding{
		{
			Kind:        domain.KindDomesticStock,
			Code:        "9432",
			Name:        "NTT",
			MarketValue: decimal.NewFromInt(1000000),
			ProfitLoss:  decimal.NewFromInt(100000),
		},
	}
}

func TestRefreshProducesResult(t *testing.T) {
	hyd := &stubHydrator{enriched: testEnriched()}
	svc := NewService(nil, hyd, dividend.DefaultTable, WithClock(fixedClock(testNow)))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, ok := svc.Latest()
	if !ok {
		t.Fatal("Latest() not ready after successful refresh")
	}
	if !result.Portfolio.Summary.TotalMarketValue.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("TotalMarketValue = %s, want 1000000", result.Portfolio.Summary.TotalMarketValue)
	}
	if len(result.Dividends) != 12 {
		t.Errorf("len(Dividends) = %d, want 12", len(result.Dividends))
	}
	if !result.RefreshedAt.Equal(testNow) {
		t.Errorf("RefreshedAt = %s, want %s", result.RefreshedAt, testNow)
	}
}

func TestLatestNotReadyBeforeFirstRefresh(t *testing.T) {
	svc := NewService(nil, &stubHydrator{}, dividend.DefaultTable)

	if _, ok := svc.Latest(); ok {
		t.Error("Latest() ready before any refresh")
	}
}

func TestFailedRefreshKeepsPreviousResult(t *testing.T) {
	hyd := &stubHydrator{enriched: testEnriched()}
	svc := NewService(nil, hyd, dividend.DefaultTable, WithClock(fixedClock(testNow)))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hyd.err = errors.New("quote source down")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected error from failed refresh")
	}

	result, ok := svc.Latest()
	if !ok {
		t.Fatal("previous result lost after failed refresh")
	}
	if !result.RefreshedAt.Equal(testNow) {
		t.Errorf("RefreshedAt = %s, want stale %s", result.RefreshedAt, testNow)
	}
}

func TestRefreshSingleFlight(t *testing.T) {
	block := make(chan struct{})
	hyd := &stubHydrator{enriched: testEnriched(), block: block}
	svc := NewService(nil, hyd, dividend.DefaultTable)

	done := make(chan error, 1)
	go func() { done <- svc.Refresh(context.Background()) }()

	// Wait until the first pass is inside HydrateAll.
	for {
		hyd.mu.Lock()
		started := hyd.calls > 0
		hyd.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := svc.Refresh(context.Background()); !errors.Is(err, ErrRefreshInFlight) {
		t.Errorf("concurrent Refresh error = %v, want ErrRefreshInFlight", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	hyd.mu.Lock()
	calls := hyd.calls
	hyd.mu.Unlock()
	if calls != 1 {
		t.Errorf("HydrateAll calls = %d, want 1", calls)
	}
}

type memFlags struct {
	mu    sync.Mutex
	flags map[string]string
}

func (m *memFlags) SetFlag(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[key] = value
	return nil
}

func (m *memFlags) GetFlag(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.flags[key]
	if !ok {
		return "", ErrFlagNotFound
	}
	return v, nil
}

func TestRefreshRecordsFlag(t *testing.T) {
	flags := &memFlags{flags: make(map[string]string)}
	svc := NewService(nil, &stubHydrator{enriched: testEnriched()}, dividend.DefaultTable,
		WithClock(fixedClock(testNow)), WithFlagStore(flags))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := flags.GetFlag(context.Background(), lastRefreshFlag)
	if err != nil {
		t.Fatalf("flag not recorded: %v", err)
	}
	if got != testNow.Format(time.RFC3339) {
		t.Errorf("flag = %s, want %s", got, testNow.Format(time.RFC3339))
	}
}

type countingExporter struct {
	mu    sync.Mutex
	calls int
}

func (e *countingExporter) Export(_ context.Context, _ domain.Portfolio, _ []domain.DividendMonth) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return nil
}

func TestRefreshRunsExportHook(t *testing.T) {
	hook := &countingExporter{}
	svc := NewService(nil, &stubHydrator{enriched: testEnriched()}, dividend.DefaultTable,
		WithExportHook(hook))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hook.calls != 1 {
		t.Errorf("export hook calls = %d, want 1", hook.calls)
	}
}
