package metrics

import (
	"math"

	"tradevault/internal/model"
)

// ExecutionQuality 执行质量指标。持仓时长取算术平均（毫秒）；
// 最佳/最差时段按UTC开仓小时的平均盈亏取极值，
// 平局取更早的小时，没有样本时两个时段都是-1
func ExecutionQuality(samples []Sample) model.ExecutionQualityMetrics {
	m := model.ExecutionQualityMetrics{BestTimeOfDay: -1, WorstTimeOfDay: -1}
	if len(samples) == 0 {
		return m
	}

	var entrySum, exitSum float64
	var holdSum int64
	for _, s := range samples {
		entrySum += float64(s.EntryQuality)
		exitSum += float64(s.ExitQuality)
		holdSum += s.HoldTimeMs
	}

	n := float64(len(samples))
	m.AvgEntryQuality = entrySum / n
	m.AvgExitQuality = exitSum / n
	m.AvgHoldTime = holdSum / int64(len(samples))

	var hourPnl [24]float64
	var hourCount [24]int
	for _, s := range samples {
		h := s.EntryDate.UTC().Hour()
		hourPnl[h] += s.Pnl
		hourCount[h]++
	}
	bestAvg := math.Inf(-1)
	worstAvg := math.Inf(1)
	for h := 0; h < 24; h++ {
		if hourCount[h] == 0 {
			continue
		}
		avg := hourPnl[h] / float64(hourCount[h])
		if avg > bestAvg {
			bestAvg = avg
			m.BestTimeOfDay = h
		}
		if avg < worstAvg {
			worstAvg = avg
			m.WorstTimeOfDay = h
		}
	}
	return m
}
