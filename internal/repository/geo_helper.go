package repository

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"DondeComo-App/internal/domain/helper"
	"DondeComo-App/internal/domain/model"
)

// boundMarginRatio 境界ボックスを半径より僅かに広げる割合（丸め誤差分）
const boundMarginRatio = 1.001

// SearchBound 中心と半径から緯度経度の境界ボックスを作成（半径内の点を必ず含む外接矩形）
// 日付変更線をまたぐ場合は Min.Lon > Max.Lon になる
func SearchBound(center model.GeoPoint, radiusMeters float64) orb.Bound {
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		radiusMeters = 0
	}
	// orb/geo は赤道半径で角距離を求めるため、平均半径での距離に換算して渡す
	distance := radiusMeters*(orb.EarthRadius/helper.EarthRadiusMeters)*boundMarginRatio + 1
	return geo.NewBoundAroundPoint(center.ToOrbPoint(), distance)
}

// crossesAntimeridian 経度範囲が±180°をまたいでいるか
func crossesAntimeridian(bound orb.Bound) bool {
	return bound.Min.Lon() > bound.Max.Lon()
}

// boundFilter PostgREST の and フィルタ用に境界ボックスを条件式にする
// postgrest-go は列ごとに1条件しか保持しないため、範囲指定はまとめて and で渡す
func boundFilter(bound orb.Bound) string {
	lat := fmt.Sprintf("latitude.gte.%s,latitude.lte.%s",
		formatCoord(bound.Min.Lat()), formatCoord(bound.Max.Lat()))
	if crossesAntimeridian(bound) {
		return fmt.Sprintf("%s,or(longitude.gte.%s,longitude.lte.%s)",
			lat, formatCoord(bound.Min.Lon()), formatCoord(bound.Max.Lon()))
	}
	return fmt.Sprintf("%s,longitude.gte.%s,longitude.lte.%s",
		lat, formatCoord(bound.Min.Lon()), formatCoord(bound.Max.Lon()))
}

// boundWhereClause SQL 用の境界ボックス条件（$1..$4 に minLat, maxLat, minLon, maxLon を渡す）
func boundWhereClause(bound orb.Bound) string {
	if crossesAntimeridian(bound) {
		return `latitude BETWEEN $1 AND $2 AND (longitude >= $3 OR longitude <= $4)`
	}
	return `latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4`
}

// formatCoord PostgREST のフィルタ値用に座標を文字列化
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 7, 64)
}

// parseOffsetCursor オフセット方式のカーソルを解釈する（空は0）
func parseOffsetCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0, model.ErrInvalidArgument
	}
	return offset, nil
}

// pageSizeOrDefault ページサイズ未指定時の既定値
func pageSizeOrDefault(size int) int {
	if size <= 0 {
		return 50
	}
	return size
}

// buildOffsetPage pageSize+1 件取得した結果からページを組み立てる
func buildOffsetPage(restaurants []*model.Restaurant, offset, pageSize int) *model.RestaurantPage {
	page := &model.RestaurantPage{Restaurants: restaurants}
	if len(restaurants) > pageSize {
		page.Restaurants = restaurants[:pageSize]
		page.HasMore = true
		page.NextCursor = strconv.Itoa(offset + pageSize)
	}
	return page
}
