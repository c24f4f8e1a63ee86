package model

import "sort"

// SearchState 検索条件（テキスト・半径・現在地）
type SearchState struct {
	QueryText         string    `json:"q"`
	MaxDistanceMeters float64   `json:"max_distance"`
	UserLocation      *GeoPoint `json:"user_location,omitempty"` // nil は現在地が取得できない状態
}

// VisitCycle 巡回済みレストランIDの集合
// 値オブジェクトとして扱い、変更は常に新しい VisitCycle を返す
type VisitCycle struct {
	VisitedIDs map[string]struct{}
}

// NewVisitCycle ID一覧から VisitCycle を作成
func NewVisitCycle(ids ...string) VisitCycle {
	visited := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		visited[id] = struct{}{}
	}
	return VisitCycle{VisitedIDs: visited}
}

// Contains IDが巡回済みか
func (c VisitCycle) Contains(id string) bool {
	_, ok := c.VisitedIDs[id]
	return ok
}

// With IDを追加した新しい VisitCycle を返す
func (c VisitCycle) With(id string) VisitCycle {
	next := make(map[string]struct{}, len(c.VisitedIDs)+1)
	for k := range c.VisitedIDs {
		next[k] = struct{}{}
	}
	next[id] = struct{}{}
	return VisitCycle{VisitedIDs: next}
}

// Len 巡回済みの件数
func (c VisitCycle) Len() int {
	return len(c.VisitedIDs)
}

// IDs 巡回済みIDをソート済みで返す（レスポンス用）
func (c VisitCycle) IDs() []string {
	ids := make([]string, 0, len(c.VisitedIDs))
	for id := range c.VisitedIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NextSelection 次のレストラン選択結果
type NextSelection struct {
	Restaurant *Restaurant // CycleReset の場合は nil
	CycleReset bool        // 未訪問が無くなり巡回をリセットした
}

// NearbyQuery 周辺レストラン取得の条件
type NearbyQuery struct {
	Center       GeoPoint
	RadiusMeters float64
	PageSize     int
}

// RestaurantPage 取得元から返される1ページ分の結果
type RestaurantPage struct {
	Restaurants []*Restaurant
	NextCursor  string // 次ページ取得用（オフセットまたはページトークン）
	HasMore     bool
}
