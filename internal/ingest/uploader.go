package ingest

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"

	"tradevault/internal/model/entity"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/logger"
)

// EntryStore 上传器需要的最小落库能力
type EntryStore interface {
	JournalUpsertBySourceHash(ctx context.Context, e *entity.JournalEntry) (created bool, prev *entity.JournalEntry, err error)
}

// Report 一批条目上传完的汇总。个别失败不算整体失败，
// 全军覆没时Err才会带上聚合后的错误
type Report struct {
	Total        int
	Created      int
	Updated      int
	Failed       int
	FailedHashes []string
	// 更新分支改写了已归属setup的盈亏时，按setup累计的差额，
	// 调用方拿它去补setup的total_pnl
	SetupPnlDeltas map[int64]float64
	Err            error
}

// Uploader 有界并发地把日志条目写进存储。
// 等全部写完才返回，不会丢下在途的写操作
type Uploader struct {
	store        EntryStore
	maxInFlight  int
	writeTimeout time.Duration
}

func NewUploader(store EntryStore, maxInFlight int, writeTimeout time.Duration) *Uploader {
	if maxInFlight <= 0 {
		maxInFlight = 8
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Uploader{
		store:        store,
		maxInFlight:  maxInFlight,
		writeTimeout: writeTimeout,
	}
}

func (u *Uploader) Upload(ctx context.Context, entries []entity.JournalEntry) Report {
	report := Report{Total: len(entries)}
	if len(entries) == 0 {
		return report
	}

	type result struct {
		hash    string
		created bool
		pnl     float64
		prev    *entity.JournalEntry
		err     error
	}

	// 信号量限制在途写入数量
	semaphore := make(chan struct{}, u.maxInFlight)
	results := make(chan result, len(entries))
	var wg sync.WaitGroup

	for i := range entries {
		e := entries[i]
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()

			wctx, cancel := context.WithTimeout(ctx, u.writeTimeout)
			defer cancel()
			created, prev, err := u.store.JournalUpsertBySourceHash(wctx, &e)
			results <- result{hash: e.SourceHash, created: created, pnl: e.Pnl, prev: prev, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var errs []error
	for r := range results {
		if r.err != nil {
			report.Failed++
			report.FailedHashes = append(report.FailedHashes, r.hash)
			errs = append(errs, errors.Wrapf(r.err, ecode.IngestErr, "upsert %s", r.hash))
			logger.Warn("journal upsert failed",
				logger.Pair("source_hash", r.hash),
				logger.Pair("error", r.err.Error()),
			)
			continue
		}
		if r.created {
			report.Created++
			continue
		}
		report.Updated++
		// 重新同步改了盈亏（典型是open→closed收口），
		// 已挂setup的条目要把差额带回去，不然累计盈亏就此失真
		if r.prev != nil && r.prev.SetupId != 0 {
			if delta := r.pnl - r.prev.Pnl; delta != 0 {
				if report.SetupPnlDeltas == nil {
					report.SetupPnlDeltas = make(map[int64]float64)
				}
				report.SetupPnlDeltas[r.prev.SetupId] += delta
			}
		}
	}

	// 只有全部失败才把错误往上抛，部分失败记进报告即可
	if report.Failed == report.Total {
		report.Err = multierr.Combine(errs...)
	}
	return report
}
