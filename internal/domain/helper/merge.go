package helper

import "DondeComo-App/internal/domain/model"

// MergeByID 複数ページの結果をIDで重複排除して結合する
// 最初に現れたものを残し、出現順を保つ
func MergeByID(pages ...[]*model.Restaurant) []*model.Restaurant {
	seen := make(map[string]struct{})
	merged := make([]*model.Restaurant, 0)

	for _, page := range pages {
		for _, r := range page {
			if r == nil {
				continue
			}
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			merged = append(merged, r)
		}
	}

	return merged
}

// FindByID IDに一致するレストランを返す
func FindByID(restaurants []*model.Restaurant, id string) *model.Restaurant {
	for _, r := range restaurants {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}

// FindPromoted 最初のプロモーション対象レストランを返す
func FindPromoted(restaurants []*model.Restaurant) *model.Restaurant {
	for _, r := range restaurants {
		if r != nil && r.IsPromoted {
			return r
		}
	}
	return nil
}
