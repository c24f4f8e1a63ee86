package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"DondeComo-App/internal/domain/helper"
	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/usecase"
)

// RestaurantHandler はレストラン検索APIのハンドラー
type RestaurantHandler struct {
	restaurantUseCase  usecase.RestaurantUseCase
	defaultMaxDistance float64
}

// NewRestaurantHandler は新しいRestaurantHandlerインスタンスを作成
func NewRestaurantHandler(restaurantUseCase usecase.RestaurantUseCase, defaultMaxDistance float64) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUseCase:  restaurantUseCase,
		defaultMaxDistance: defaultMaxDistance,
	}
}

// SearchRestaurants は現在地周辺のレストランを検索するエンドポイント
// GET /restaurants/search?lat=&lng=&q=&max_distance=&sort=distance
func (h *RestaurantHandler) SearchRestaurants(c *gin.Context) {
	location, err := parseLocation(c.Query("lat"), c.Query("lng"))
	if err != nil {
		respondError(c, "検索条件が正しくありません", err)
		return
	}

	maxDistance := h.defaultMaxDistance
	if raw := c.Query("max_distance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, "検索条件が正しくありません", &ValidationError{Field: "max_distance", Message: "数値で指定してください"})
			return
		}
		maxDistance = v
	}

	state := model.SearchState{
		QueryText:         c.Query("q"),
		MaxDistanceMeters: maxDistance,
		UserLocation:      location,
	}

	response, err := h.restaurantUseCase.Search(c.Request.Context(), state)
	if err != nil {
		respondError(c, "レストランの検索に失敗しました", err)
		return
	}

	// 既定は取得元の順序のまま
	if c.Query("sort") == "distance" {
		helper.SortByDistance(response.Restaurants)
	}

	c.JSON(http.StatusOK, response)
}

// NextRestaurant は最も近い未訪問のレストランを返すエンドポイント
// POST /restaurants/next
func (h *RestaurantHandler) NextRestaurant(c *gin.Context) {
	var req model.NextRestaurantRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	state, err := h.stateFromNextRequest(&req)
	if err != nil {
		respondError(c, "リクエストの形式が正しくありません", err)
		return
	}

	response, err := h.restaurantUseCase.Next(c.Request.Context(), req.CurrentID, req.VisitedIDs, state)
	if err != nil {
		respondError(c, "次のレストランの選択に失敗しました", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPromotedRestaurant はプロモーション対象のレストランを返すエンドポイント
// GET /restaurants/promoted
func (h *RestaurantHandler) GetPromotedRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantUseCase.GetPromoted(c.Request.Context())
	if err != nil {
		respondError(c, "プロモーション対象のレストランが見つかりません", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetRestaurant GET /restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "レストランの取得に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetMenu GET /restaurants/:id/menu
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	menu, err := h.restaurantUseCase.GetMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "メニューの取得に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (h *RestaurantHandler) stateFromNextRequest(req *model.NextRestaurantRequest) (model.SearchState, error) {
	state := model.SearchState{
		QueryText:         req.QueryText,
		MaxDistanceMeters: h.defaultMaxDistance,
	}
	if req.MaxDistanceMeters != nil {
		state.MaxDistanceMeters = *req.MaxDistanceMeters
	}

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		state.UserLocation = &model.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	case req.Latitude != nil || req.Longitude != nil:
		return state, &ValidationError{Field: "lat/lng", Message: "緯度と経度は両方指定してください"}
	}
	return state, nil
}

// parseLocation lat/lng クエリを解釈する。両方空なら現在地無し
func parseLocation(rawLat, rawLng string) (*model.GeoPoint, error) {
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, &ValidationError{Field: "lat/lng", Message: "緯度と経度は両方指定してください"}
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, &ValidationError{Field: "lat", Message: "緯度は数値で指定してください"}
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, &ValidationError{Field: "lng", Message: "経度は数値で指定してください"}
	}
	if lat < -90 || lat > 90 {
		return nil, &ValidationError{Field: "lat", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if lng < -180 || lng > 180 {
		return nil, &ValidationError{Field: "lng", Message: "経度は-180から180の範囲で指定してください"}
	}

	return &model.GeoPoint{Latitude: lat, Longitude: lng}, nil
}
