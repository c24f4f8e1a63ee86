package repository

import (
	"context"

	"DondeComo-App/internal/domain/model"
)

type DishesRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]model.Dish, error)
}
