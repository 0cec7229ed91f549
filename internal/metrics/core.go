package metrics

import "tradevault/internal/model"

// Core 核心盈亏指标。约定：
//   - 盈利交易是pnl>0，其余（含pnl==0）都算亏损方向的分母之外
//   - avgLoss是亏损的平均幅度，非负
//   - 没有亏损交易时avgRRR取0，profit_factor输出null
//   - 没有样本时全部指标是中性零值
func Core(samples []Sample) model.CoreMetrics {
	m := model.CoreMetrics{TotalTrades: len(samples)}
	if len(samples) == 0 {
		return m
	}

	var wins, losses int
	var grossProfit, grossLoss float64
	for _, s := range samples {
		m.TotalPnl += s.Pnl
		if s.Pnl > 0 {
			wins++
			grossProfit += s.Pnl
		} else if s.Pnl < 0 {
			losses++
			grossLoss += -s.Pnl
		}
	}

	n := float64(len(samples))
	m.WinRate = float64(wins) / n
	m.AvgPnl = m.TotalPnl / n
	if wins > 0 {
		m.AvgWin = grossProfit / float64(wins)
	}
	if losses > 0 {
		m.AvgLoss = grossLoss / float64(losses)
		m.AvgRRR = m.AvgWin / m.AvgLoss
		pf := grossProfit / grossLoss
		m.ProfitFactor = &pf
	}
	m.Expectancy = m.WinRate*m.AvgWin - (1-m.WinRate)*m.AvgLoss
	return m
}
