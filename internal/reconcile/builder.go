package reconcile

import (
	"fmt"
	"time"

	"tradevault/internal/consts"
	"tradevault/internal/model/entity"
	"tradevault/utils/security"
	"tradevault/utils/uuid"
)

// QualityClassifier 给一笔交易打执行质量分。目前只有占位实现，
// 后续接评分模型时换掉这里即可，落库结构不用动
type QualityClassifier interface {
	Classify(t Trade) (entryQuality, exitQuality int, grade string)
}

// SessionClassifier 判定一笔交易所属的市场时段
type SessionClassifier interface {
	Session(t Trade) string
}

// 占位分类器：所有交易给同一组中性值
type neutralQuality struct{}

func (neutralQuality) Classify(Trade) (int, int, string) {
	return consts.DefaultEntryQuality, consts.DefaultExitQuality, consts.DefaultGrade
}

type neutralSession struct{}

func (neutralSession) Session(Trade) string {
	return consts.DefaultMarketSession
}

func NewNeutralQualityClassifier() QualityClassifier { return neutralQuality{} }
func NewNeutralSessionClassifier() SessionClassifier { return neutralSession{} }

// SourceHash 幂等键：同一券商账户下的同一position永远得到同一个值，
// 重复同步靠它落到同一条记录上
func SourceHash(brokerAccountId int64, positionId string) string {
	return security.Md5(fmt.Sprintf("%d:%s", brokerAccountId, positionId))
}

// Builder 把配对好的交易组装成可落库的日志条目
type Builder struct {
	node    *uuid.SnowNode
	quality QualityClassifier
	session SessionClassifier
}

func NewBuilder(node *uuid.SnowNode, quality QualityClassifier, session SessionClassifier) *Builder {
	if quality == nil {
		quality = neutralQuality{}
	}
	if session == nil {
		session = neutralSession{}
	}
	return &Builder{node: node, quality: quality, session: session}
}

func (b *Builder) Build(userId, brokerAccountId int64, t Trade) entity.JournalEntry {
	entryQuality, exitQuality, grade := b.quality.Classify(t)
	e := entity.JournalEntry{
		Id:            b.node.GenSnowID(),
		UserId:        userId,
		SourceHash:    SourceHash(brokerAccountId, t.PositionId),
		Status:        t.Status,
		Symbol:        t.Symbol,
		Direction:     t.Direction,
		Volume:        t.Volume,
		EntryDate:     time.UnixMilli(t.EntryDate).UTC(),
		EntryPrice:    t.EntryPrice,
		StopLoss:      t.StopLoss,
		TakeProfit:    t.TakeProfit,
		EntryQuality:  entryQuality,
		ExitQuality:   exitQuality,
		Grade:         grade,
		MarketSession: b.session.Session(t),
	}
	if t.Status == consts.TradeStatusClosed {
		e.ExitDate = time.UnixMilli(t.ExitDate).UTC()
		e.ExitPrice = t.ExitPrice
		e.Pnl = t.Pnl
		e.HoldTimeMs = t.HoldTimeMs
	}
	return e
}
