package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker 依存サービスの疎通確認
type HealthChecker func() error

// NewRouter ルーティングを設定したginエンジンを返す
// cacheHandler が nil の場合は端末キャッシュ系のルートを登録しない
func NewRouter(restaurantHandler *RestaurantHandler, cacheHandler *DeviceCacheHandler, health HealthChecker) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/api/health", func(c *gin.Context) {
		if health != nil {
			if err := health(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"details": err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "DondeComo API is running",
		})
	})

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("/search", restaurantHandler.SearchRestaurants)
		restaurants.POST("/next", restaurantHandler.NextRestaurant)
		restaurants.GET("/promoted", restaurantHandler.GetPromotedRestaurant)
		restaurants.GET("/:id", restaurantHandler.GetRestaurant)
		restaurants.GET("/:id/menu", restaurantHandler.GetMenu)
	}

	if cacheHandler != nil {
		devices := router.Group("/devices")
		{
			devices.POST("", cacheHandler.RegisterDevice)
			devices.GET("/:device_id/favorites", cacheHandler.GetFavorites)
			devices.PUT("/:device_id/favorites", cacheHandler.PutFavorites)
			devices.GET("/:device_id/ratings/:restaurant_id", cacheHandler.GetRating)
			devices.PUT("/:device_id/ratings/:restaurant_id", cacheHandler.PutRating)
		}
	}

	return router
}
