package metrics

import (
	"time"

	"tradevault/internal/consts"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
)

// Sample 指标计算的输入样本，一笔已平仓交易
type Sample struct {
	Pnl          float64
	EntryDate    time.Time
	EntryQuality int
	ExitQuality  int
	HoldTimeMs   int64
}

// SamplesFrom 把日志条目转成指标样本。
// 未平仓的条目不参与统计，它们还没有盈亏可言
func SamplesFrom(entries []entity.JournalEntry) []Sample {
	samples := make([]Sample, 0, len(entries))
	for _, e := range entries {
		if e.Status != consts.TradeStatusClosed {
			continue
		}
		samples = append(samples, Sample{
			Pnl:          e.Pnl,
			EntryDate:    e.EntryDate,
			EntryQuality: e.EntryQuality,
			ExitQuality:  e.ExitQuality,
			HoldTimeMs:   e.HoldTimeMs,
		})
	}
	return samples
}

// Compute 一次算齐三组指标
func Compute(samples []Sample) (model.CoreMetrics, model.ConsistencyMetrics, model.ExecutionQualityMetrics) {
	return Core(samples), Consistency(samples), ExecutionQuality(samples)
}
