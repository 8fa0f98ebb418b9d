package benchmark

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingQuoter struct {
	values []float64
	errs   []error
	calls  int
}

func (q *countingQuoter) YTDReturn(ctx context.Context) (float64, error) {
	i := q.calls
	q.calls++
	if i >= len(q.values) {
		i = len(q.values) - 1
	}
	var err error
	if i < len(q.errs) {
		err = q.errs[i]
	}
	return q.values[i], err
}

func TestCacheServesWithinTTL(t *testing.T) {
	src := &countingQuoter{values: []float64{12.5, 99}}
	c := &Cache{Source: src, TTL: time.Hour}
	ctx := context.Background()

	if got := c.Get(ctx); got != 12.5 {
		t.Fatalf("first get = %v, want 12.5", got)
	}
	if got := c.Get(ctx); got != 12.5 {
		t.Fatalf("cached get = %v, want 12.5", got)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1", src.calls)
	}
}

func TestCacheRefetchesAfterTTL(t *testing.T) {
	src := &countingQuoter{values: []float64{10, 20}}
	c := &Cache{Source: src, TTL: time.Nanosecond}
	ctx := context.Background()

	if got := c.Get(ctx); got != 10 {
		t.Fatalf("first get = %v, want 10", got)
	}
	time.Sleep(time.Millisecond)
	if got := c.Get(ctx); got != 20 {
		t.Fatalf("expired get = %v, want 20", got)
	}
}

func TestCacheServesStaleOnFailure(t *testing.T) {
	src := &countingQuoter{
		values: []float64{8, 0},
		errs:   []error{nil, errors.New("provider down")},
	}
	c := &Cache{Source: src, TTL: time.Nanosecond}
	ctx := context.Background()

	if got := c.Get(ctx); got != 8 {
		t.Fatalf("first get = %v, want 8", got)
	}
	time.Sleep(time.Millisecond)
	if got := c.Get(ctx); got != 8 {
		t.Fatalf("get after failure = %v, want stale 8", got)
	}
}

func TestCacheZeroBeforeFirstSuccess(t *testing.T) {
	src := &countingQuoter{values: []float64{0}, errs: []error{errors.New("provider down")}}
	c := &Cache{Source: src, TTL: time.Hour}

	if got := c.Get(context.Background()); got != 0 {
		t.Fatalf("get before any success = %v, want 0", got)
	}
	v, err := c.YTDReturn(context.Background())
	if err != nil {
		t.Fatalf("YTDReturn must not fail: %v", err)
	}
	if v != 0 {
		t.Fatalf("YTDReturn = %v, want 0", v)
	}
}

func TestCacheRefreshForcesFetch(t *testing.T) {
	src := &countingQuoter{values: []float64{5, 6}}
	c := &Cache{Source: src, TTL: time.Hour}
	ctx := context.Background()

	if got := c.Get(ctx); got != 5 {
		t.Fatalf("first get = %v, want 5", got)
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := c.Get(ctx); got != 6 {
		t.Fatalf("get after refresh = %v, want 6", got)
	}
	if src.calls != 2 {
		t.Fatalf("source called %d times, want 2", src.calls)
	}
}
