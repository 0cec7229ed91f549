package model

import "tradevault/utils"

type SetupCreateReq struct {
	Name        string `json:"name" binding:"required" label:"策略名称"`
	Description string `json:"description" label:"策略描述"`
}

type SetupCreateRes struct {
	SetupId int64 `json:"setup_id,string"`
}

type SetupEditReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type SetupRes struct {
	SetupId     int64          `json:"setup_id,string"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	TotalPnl    float64        `json:"total_pnl"`
	CreatedAt   utils.JsonTime `json:"created_at"`
	UpdatedAt   utils.JsonTime `json:"updated_at"`
}

// CoreMetrics 核心盈亏指标
type CoreMetrics struct {
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`
	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"` // 亏损幅度，非负
	AvgRRR      float64 `json:"avg_rrr"`
	// 没有亏损交易时盈亏比无定义，输出null
	ProfitFactor *float64 `json:"profit_factor"`
	Expectancy   float64  `json:"expectancy"`
	TotalPnl     float64  `json:"total_pnl"`
	AvgPnl       float64  `json:"avg_pnl"`
}

// ConsistencyMetrics 稳定性指标
type ConsistencyMetrics struct {
	MaxWinStreak  int     `json:"max_win_streak"`
	MaxLossStreak int     `json:"max_loss_streak"`
	PnlStdDev     float64 `json:"pnl_std_dev"`
	HitRate       float64 `json:"hit_rate"`
}

// ExecutionQualityMetrics 执行质量指标
type ExecutionQualityMetrics struct {
	AvgEntryQuality float64 `json:"avg_entry_quality"`
	AvgExitQuality  float64 `json:"avg_exit_quality"`
	AvgHoldTime     int64   `json:"avg_hold_time"` // 毫秒
	// 按UTC开仓小时聚合的平均盈亏极值，没有样本时为-1
	BestTimeOfDay  int `json:"best_time_of_day"`
	WorstTimeOfDay int `json:"worst_time_of_day"`
}

type SetupMetricsRes struct {
	SetupId                 int64                   `json:"setup_id,string"`
	CoreMetrics             CoreMetrics             `json:"core_metrics"`
	ConsistencyMetrics      ConsistencyMetrics      `json:"consistency_metrics"`
	ExecutionQualityMetrics ExecutionQualityMetrics `json:"execution_quality_metrics"`
	GeneratedAt             utils.JsonTime          `json:"generated_at"`
}
