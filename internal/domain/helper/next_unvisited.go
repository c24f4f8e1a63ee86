package helper

import (
	"fmt"

	"DondeComo-App/internal/domain/model"
)

// NextUnvisited 現在のレストランから最も近い未訪問のレストランを選ぶ
//
// 未訪問が残っていれば、現在のIDを巡回済みに加えた VisitCycle と共に返す。
// 同距離の場合は candidates で先に現れたものを選ぶ。
// 未訪問が無ければ空の VisitCycle と CycleReset を返し、選択は行わない。
func NextUnvisited(current *model.Restaurant, candidates []*model.Restaurant, cycle model.VisitCycle) (model.NextSelection, model.VisitCycle, error) {
	if current == nil {
		return model.NextSelection{}, cycle, fmt.Errorf("%w: 現在のレストランが指定されていません", model.ErrInvalidArgument)
	}
	if len(candidates) == 0 {
		return model.NextSelection{}, cycle, fmt.Errorf("%w: 候補のレストランがありません", model.ErrInvalidArgument)
	}

	origin := current.Location()
	var selected *model.Restaurant
	bestDistance := 0.0

	for _, c := range candidates {
		if c == nil || c.ID == current.ID || cycle.Contains(c.ID) {
			continue
		}
		d := DistanceMeters(origin, c.Location())
		if selected == nil || d < bestDistance {
			selected = c
			bestDistance = d
		}
	}

	if selected == nil {
		return model.NextSelection{CycleReset: true}, model.NewVisitCycle(), nil
	}

	return model.NextSelection{Restaurant: selected}, cycle.With(current.ID), nil
}
