package reconcile

// PositionDeals 同一笔持仓下的全部成交，保持输入顺序
type PositionDeals struct {
	PositionId string
	Deals      []Deal
}

// Normalize 过滤掉非交易记录，并按deal id去重（同一id以先出现的为准）。
// 输入顺序原样保留
func Normalize(deals []Deal) []Deal {
	out := make([]Deal, 0, len(deals))
	seen := make(map[string]struct{}, len(deals))
	for _, d := range deals {
		if !d.IsTradeDeal() {
			continue
		}
		if d.Id != "" {
			if _, ok := seen[d.Id]; ok {
				continue
			}
			seen[d.Id] = struct{}{}
		}
		out = append(out, d)
	}
	return out
}

// GroupByPosition 按positionId归组。分组顺序是各position首次出现的顺序，
// 组内顺序是成交在输入里的顺序，后面的配对逻辑依赖这一点
func GroupByPosition(deals []Deal) []PositionDeals {
	index := make(map[string]int, len(deals))
	groups := make([]PositionDeals, 0, len(deals))
	for _, d := range deals {
		i, ok := index[d.PositionId]
		if !ok {
			i = len(groups)
			index[d.PositionId] = i
			groups = append(groups, PositionDeals{PositionId: d.PositionId})
		}
		groups[i].Deals = append(groups[i].Deals, d)
	}
	return groups
}
