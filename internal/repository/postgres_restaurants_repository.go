package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
	"DondeComo-App/internal/infrastructure/database"
)

const restaurantColumns = `id::text, name, latitude, longitude, address, phone, description, image,
	"isPromoted", "isGlutenFree", "isVegetarian", "isVegan", "isLactoseFree"`

type PostgresRestaurantsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresRestaurantsRepository(client *database.PostgreSQLClient) repository.RestaurantsRepository {
	return &PostgresRestaurantsRepository{
		client: client,
	}
}

// RestaurantResult SQLの結果を受け取るための構造体
type RestaurantResult struct {
	ID            string
	Name          string
	Latitude      sql.NullFloat64
	Longitude     sql.NullFloat64
	Address       sql.NullString
	Phone         sql.NullString
	Description   sql.NullString
	Image         sql.NullString
	IsPromoted    sql.NullBool
	IsGlutenFree  sql.NullBool
	IsVegetarian  sql.NullBool
	IsVegan       sql.NullBool
	IsLactoseFree sql.NullBool
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(s rowScanner) (*RestaurantResult, error) {
	var result RestaurantResult
	err := s.Scan(&result.ID, &result.Name, &result.Latitude, &result.Longitude,
		&result.Address, &result.Phone, &result.Description, &result.Image,
		&result.IsPromoted, &result.IsGlutenFree, &result.IsVegetarian, &result.IsVegan, &result.IsLactoseFree)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ToRestaurant RestaurantResultをmodel.Restaurantに変換
func (rr *RestaurantResult) ToRestaurant() (*model.Restaurant, error) {
	if !rr.Latitude.Valid || !rr.Longitude.Valid {
		return nil, missingCoordinatesError(rr.ID)
	}
	r := &model.Restaurant{
		ID:          rr.ID,
		Name:        rr.Name,
		Latitude:    rr.Latitude.Float64,
		Longitude:   rr.Longitude.Float64,
		Address:     rr.Address.String,
		Phone:       rr.Phone.String,
		Description: rr.Description.String,
		ImageURL:    rr.Image.String,
		IsPromoted:  rr.IsPromoted.Bool,
		DietaryFlags: model.DietaryFlags{
			IsGlutenFree:  rr.IsGlutenFree.Bool,
			IsVegetarian:  rr.IsVegetarian.Bool,
			IsVegan:       rr.IsVegan.Bool,
			IsLactoseFree: rr.IsLactoseFree.Bool,
		},
	}
	r.ApplyDefaults()
	return r, nil
}

func (r *PostgresRestaurantsRepository) FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error) {
	offset, err := parseOffsetCursor(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: カーソルが不正です (%s)", err, cursor)
	}
	pageSize := pageSizeOrDefault(query.PageSize)
	bound := SearchBound(query.Center, query.RadiusMeters)

	sqlQuery := `SELECT ` + restaurantColumns + `
		FROM "` + model.TableRestaurants + `"
		WHERE ` + boundWhereClause(bound) + `
		ORDER BY id
		LIMIT $5 OFFSET $6`

	rows, err := r.client.DB.QueryContext(ctx, sqlQuery,
		bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon(),
		pageSize+1, offset)
	if err != nil {
		return nil, fmt.Errorf("周辺レストランデータの取得失敗: %w", err)
	}
	defer rows.Close()

	var restaurants []*model.Restaurant
	for rows.Next() {
		result, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("レストランデータスキャンエラー: %w", err)
		}
		restaurant, err := result.ToRestaurant()
		if err != nil {
			log.Printf("⚠️ レストランデータをスキップ: %v", err)
			continue
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("レストランデータの読み込みエラー: %w", err)
	}

	return buildOffsetPage(restaurants, offset, pageSize), nil
}

func (r *PostgresRestaurantsRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	sqlQuery := `SELECT ` + restaurantColumns + ` FROM "` + model.TableRestaurants + `" WHERE id::text = $1`

	result, err := scanRestaurant(r.client.DB.QueryRowContext(ctx, sqlQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: レストランID %s が見つかりません", model.ErrRestaurantNotFound, id)
		}
		return nil, fmt.Errorf("レストランデータの取得失敗: %w", err)
	}

	restaurant, err := result.ToRestaurant()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrRestaurantNotFound, err)
	}
	return restaurant, nil
}

func (r *PostgresRestaurantsRepository) FindPromoted(ctx context.Context) (*model.Restaurant, error) {
	sqlQuery := `SELECT ` + restaurantColumns + ` FROM "` + model.TableRestaurants + `"
		WHERE "isPromoted" = true AND latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY id LIMIT 1`

	result, err := scanRestaurant(r.client.DB.QueryRowContext(ctx, sqlQuery))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: プロモーション対象のレストランがありません", model.ErrRestaurantNotFound)
		}
		return nil, fmt.Errorf("プロモーション対象レストランの取得失敗: %w", err)
	}

	return result.ToRestaurant()
}
