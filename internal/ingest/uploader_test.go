package ingest

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tradevault/internal/consts"
	"tradevault/internal/model/entity"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
)

// 内存假存储：按source_hash判断新建还是更新，可注入指定hash的失败
type fakeStore struct {
	mu       sync.Mutex
	rows     map[string]*entity.JournalEntry
	failing  map[string]bool
	inFlight int32
	maxSeen  int32
	delay    time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]*entity.JournalEntry{}, failing: map[string]bool{}}
}

func (f *fakeStore) JournalUpsertBySourceHash(ctx context.Context, e *entity.JournalEntry) (bool, *entity.JournalEntry, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		max := atomic.LoadInt32(&f.maxSeen)
		if cur <= max || atomic.CompareAndSwapInt32(&f.maxSeen, max, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[e.SourceHash] {
		return false, nil, errors.WithCode(ecode.IngestErr, "simulated write failure")
	}
	if existing, ok := f.rows[e.SourceHash]; ok {
		prev := *existing
		merged := *e
		merged.SetupId = prev.SetupId
		f.rows[e.SourceHash] = &merged
		return false, &prev, nil
	}
	row := *e
	f.rows[e.SourceHash] = &row
	return true, nil, nil
}

func (f *fakeStore) preload(e entity.JournalEntry) {
	f.rows[e.SourceHash] = &e
}

func mkEntries(n int) []entity.JournalEntry {
	entries := make([]entity.JournalEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, entity.JournalEntry{SourceHash: "h" + strconv.Itoa(i)})
	}
	return entries
}

func TestUploadCountsCreatedAndUpdated(t *testing.T) {
	store := newFakeStore()
	store.preload(entity.JournalEntry{SourceHash: "h0"})
	store.preload(entity.JournalEntry{SourceHash: "h1"})

	u := NewUploader(store, 4, time.Second)
	report := u.Upload(context.Background(), mkEntries(5))
	if report.Err != nil {
		t.Fatalf("partial-success batch must not fail: %v", report.Err)
	}
	if report.Created != 3 || report.Updated != 2 || report.Failed != 0 {
		t.Fatalf("bad counts: %+v", report)
	}
}

func TestUploadToleratesPartialFailure(t *testing.T) {
	store := newFakeStore()
	store.failing["h2"] = true

	u := NewUploader(store, 4, time.Second)
	report := u.Upload(context.Background(), mkEntries(4))
	if report.Err != nil {
		t.Fatalf("one failure out of four must not fail the batch: %v", report.Err)
	}
	if report.Failed != 1 || report.Created != 3 {
		t.Fatalf("bad counts: %+v", report)
	}
	if len(report.FailedHashes) != 1 || report.FailedHashes[0] != "h2" {
		t.Fatalf("failed hash not reported: %+v", report.FailedHashes)
	}
}

func TestUploadFailsWhenAllWritesFail(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 3; i++ {
		store.failing["h"+strconv.Itoa(i)] = true
	}

	u := NewUploader(store, 2, time.Second)
	report := u.Upload(context.Background(), mkEntries(3))
	if report.Err == nil {
		t.Fatal("all-fail batch must surface an aggregated error")
	}
	if report.Failed != 3 {
		t.Fatalf("bad counts: %+v", report)
	}
}

func TestUploadBoundsConcurrency(t *testing.T) {
	store := newFakeStore()
	store.delay = 20 * time.Millisecond

	u := NewUploader(store, 3, time.Second)
	report := u.Upload(context.Background(), mkEntries(12))
	if report.Created != 12 {
		t.Fatalf("bad counts: %+v", report)
	}
	if got := atomic.LoadInt32(&store.maxSeen); got > 3 {
		t.Fatalf("in-flight writes exceeded bound: %d", got)
	}
}

func TestUploadReportsSetupPnlDeltaOnResync(t *testing.T) {
	store := newFakeStore()
	// 上次同步还是open的交易，用户已经挂到setup 9上
	store.preload(entity.JournalEntry{SourceHash: "h0", SetupId: 9, Status: consts.TradeStatusOpen})
	// 已平仓且盈亏没变的条目不该产生差额
	store.preload(entity.JournalEntry{SourceHash: "h1", SetupId: 9, Status: consts.TradeStatusClosed, Pnl: -30})
	// 没挂setup的条目改了盈亏也不用补账
	store.preload(entity.JournalEntry{SourceHash: "h2", Status: consts.TradeStatusOpen})

	entries := []entity.JournalEntry{
		{SourceHash: "h0", Status: consts.TradeStatusClosed, Pnl: 120},
		{SourceHash: "h1", Status: consts.TradeStatusClosed, Pnl: -30},
		{SourceHash: "h2", Status: consts.TradeStatusClosed, Pnl: 50},
	}
	u := NewUploader(store, 2, time.Second)
	report := u.Upload(context.Background(), entries)
	if report.Err != nil {
		t.Fatalf("upload failed: %v", report.Err)
	}
	if report.Updated != 3 {
		t.Fatalf("bad counts: %+v", report)
	}
	if len(report.SetupPnlDeltas) != 1 || report.SetupPnlDeltas[9] != 120 {
		t.Fatalf("setup pnl delta wrong: %+v", report.SetupPnlDeltas)
	}
}

func TestUploadEmptyBatch(t *testing.T) {
	u := NewUploader(newFakeStore(), 4, time.Second)
	report := u.Upload(context.Background(), nil)
	if report.Total != 0 || report.Err != nil {
		t.Fatalf("empty batch should be a no-op: %+v", report)
	}
}
