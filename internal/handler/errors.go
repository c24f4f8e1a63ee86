package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"DondeComo-App/internal/domain/model"
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// statusFor エラーの種類からHTTPステータスを決める
func statusFor(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrRestaurantNotFound), errors.Is(err, model.ErrCacheEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError エラーを {"error","details"} 形式で返す
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusBadRequest {
		message = "バリデーションエラー"
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
