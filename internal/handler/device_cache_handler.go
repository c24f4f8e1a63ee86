package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/usecase"
)

// DeviceCacheHandler は端末ごとのお気に入り・評価APIのハンドラー
type DeviceCacheHandler struct {
	cacheUseCase usecase.DeviceCacheUseCase
}

// NewDeviceCacheHandler は新しいDeviceCacheHandlerインスタンスを作成
func NewDeviceCacheHandler(cacheUseCase usecase.DeviceCacheUseCase) *DeviceCacheHandler {
	return &DeviceCacheHandler{
		cacheUseCase: cacheUseCase,
	}
}

// RegisterDevice POST /devices
func (h *DeviceCacheHandler) RegisterDevice(c *gin.Context) {
	device, err := h.cacheUseCase.RegisterDevice(c.Request.Context())
	if err != nil {
		respondError(c, "端末の登録に失敗しました", err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

// GetFavorites GET /devices/:device_id/favorites
func (h *DeviceCacheHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.cacheUseCase.GetFavorites(c.Request.Context(), c.Param("device_id"))
	if err != nil {
		respondError(c, "お気に入りの取得に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// PutFavorites PUT /devices/:device_id/favorites
func (h *DeviceCacheHandler) PutFavorites(c *gin.Context) {
	var req model.FavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	favorites, err := h.cacheUseCase.SaveFavorites(c.Request.Context(), c.Param("device_id"), req.RestaurantIDs)
	if err != nil {
		respondError(c, "お気に入りの保存に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// GetRating GET /devices/:device_id/ratings/:restaurant_id
func (h *DeviceCacheHandler) GetRating(c *gin.Context) {
	rating, err := h.cacheUseCase.GetRating(c.Request.Context(), c.Param("device_id"), c.Param("restaurant_id"))
	if err != nil {
		respondError(c, "評価の取得に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// PutRating PUT /devices/:device_id/ratings/:restaurant_id
func (h *DeviceCacheHandler) PutRating(c *gin.Context) {
	var req model.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	rating, err := h.cacheUseCase.SaveRating(c.Request.Context(), c.Param("device_id"), c.Param("restaurant_id"), &req)
	if err != nil {
		respondError(c, "評価の保存に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
