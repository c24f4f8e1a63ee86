package maps

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
)

// Nearby Search の半径上限（メートル）
const maxPlacesRadiusMeters = 50000

// placesAPI *maps.Client のうち使用するメソッド
type placesAPI interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// GooglePlacesProvider Google Places API を使ったレストラン取得元
type GooglePlacesProvider struct {
	api        placesAPI
	language   string
	tokenDelay time.Duration
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewGooglePlacesProvider APIキーからプロバイダを生成する
func NewGooglePlacesProvider(apiKey, language string, tokenDelay time.Duration) (repository.RestaurantsRepository, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Google Mapsクライアントの初期化に失敗: %w", err)
	}
	return newGooglePlacesProvider(client, language, tokenDelay), nil
}

func newGooglePlacesProvider(api placesAPI, language string, tokenDelay time.Duration) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		api:        api,
		language:   language,
		tokenDelay: tokenDelay,
		maxRetries: 3,
		sleep:      sleepContext,
	}
}

// FindNearbyPage Nearby Search を1ページ分実行する。cursor は next_page_token
func (g *GooglePlacesProvider) FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: query.Center.Latitude, Lng: query.Center.Longitude},
		Radius:   clampRadius(query.RadiusMeters),
		Type:     maps.PlaceTypeRestaurant,
		Language: g.language,
	}
	if cursor != "" {
		req.PageToken = cursor
	}

	resp, err := g.nearbySearch(ctx, req)
	if err != nil {
		return nil, err
	}

	restaurants := make([]*model.Restaurant, 0, len(resp.Results))
	for _, result := range resp.Results {
		restaurants = append(restaurants, searchResultToRestaurant(result))
	}

	return &model.RestaurantPage{
		Restaurants: restaurants,
		NextCursor:  resp.NextPageToken,
		HasMore:     resp.NextPageToken != "",
	}, nil
}

// nearbySearch ページトークン指定時は有効になるまで待ってから再試行する
func (g *GooglePlacesProvider) nearbySearch(ctx context.Context, req *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error) {
	if req.PageToken == "" {
		resp, err := g.api.NearbySearch(ctx, req)
		if err != nil {
			return maps.PlacesSearchResponse{}, fmt.Errorf("Nearby Searchの実行に失敗: %w", err)
		}
		return resp, nil
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		if err := g.sleep(ctx, g.tokenDelay); err != nil {
			return maps.PlacesSearchResponse{}, err
		}

		resp, err := g.api.NearbySearch(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !isTokenNotReady(err) {
			return maps.PlacesSearchResponse{}, fmt.Errorf("Nearby Searchの次ページ取得に失敗: %w", err)
		}
		lastErr = err
		log.Printf("⏳ next_page_tokenがまだ有効ではありません（%d/%d回目）", attempt, g.maxRetries)
	}

	return maps.PlacesSearchResponse{}, fmt.Errorf("next_page_tokenが有効になりませんでした: %w", lastErr)
}

// GetByID Place Details で1件取得する
func (g *GooglePlacesProvider) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	result, err := g.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  id,
		Language: g.language,
	})
	if err != nil {
		if strings.Contains(err.Error(), "NOT_FOUND") || strings.Contains(err.Error(), "ZERO_RESULTS") {
			return nil, fmt.Errorf("%w: %s", model.ErrRestaurantNotFound, id)
		}
		return nil, fmt.Errorf("Place Detailsの取得失敗: %w", err)
	}

	r := &model.Restaurant{
		ID:        result.PlaceID,
		Name:      result.Name,
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
		Address:   result.FormattedAddress,
		Phone:     result.FormattedPhoneNumber,
	}
	if r.Address == "" {
		r.Address = result.Vicinity
	}
	r.ApplyDefaults()
	return r, nil
}

// FindPromoted Google Places にはプロモーション情報が無い
func (g *GooglePlacesProvider) FindPromoted(ctx context.Context) (*model.Restaurant, error) {
	return nil, fmt.Errorf("%w: Google Placesにはプロモーション対象がありません", model.ErrRestaurantNotFound)
}

func searchResultToRestaurant(result maps.PlacesSearchResult) *model.Restaurant {
	r := &model.Restaurant{
		ID:        result.PlaceID,
		Name:      result.Name,
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
		Address:   result.Vicinity,
	}
	if r.Address == "" {
		r.Address = result.FormattedAddress
	}
	r.ApplyDefaults()
	return r
}

func clampRadius(meters float64) uint {
	if meters < 1 || math.IsNaN(meters) {
		return 1
	}
	if meters > maxPlacesRadiusMeters {
		return maxPlacesRadiusMeters
	}
	return uint(math.Ceil(meters))
}

// isTokenNotReady 発行直後のトークンは INVALID_REQUEST になる
func isTokenNotReady(err error) bool {
	return err != nil && strings.Contains(err.Error(), "INVALID_REQUEST")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.Join(errors.New("ページトークン待機中にキャンセルされました"), ctx.Err())
	case <-timer.C:
		return nil
	}
}
