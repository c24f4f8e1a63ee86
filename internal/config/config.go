package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"DondeComo-App/internal/domain/model"
)

// 取得元の種類
const (
	SourceSupabase     = "supabase"
	SourcePostgres     = "postgres"
	SourceGooglePlaces = "google_places"
)

// Config アプリケーション設定
type Config struct {
	Port string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string

	RestaurantSource string
	GoogleMapsAPIKey string
	PlacesLanguage   string
	// PlacesPageTokenDelay next_page_token が有効になるまでの待ち時間
	PlacesPageTokenDelay time.Duration

	FirestoreProjectID string

	DefaultMaxDistanceMeters float64
	FetchPageSize            int
	FetchMaxPages            int
}

// Load .env を読み込んだ上で環境変数から設定を構築する
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ .envファイルが見つかりません（環境変数を直接使用）: %v", err)
	}
	return FromEnv()
}

// FromEnv 環境変数のみから設定を構築する
func FromEnv() (Config, error) {
	cfg := Config{
		Port:                     envOrDefault("PORT", "8080"),
		SupabaseURL:              os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:          os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword:       os.Getenv("SUPABASE_DB_PASSWORD"),
		RestaurantSource:         strings.ToLower(envOrDefault("RESTAURANT_SOURCE", SourceSupabase)),
		GoogleMapsAPIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
		PlacesLanguage:           envOrDefault("PLACES_LANGUAGE", "es"),
		PlacesPageTokenDelay:     envOrDefaultDuration("PLACES_PAGE_TOKEN_DELAY", 2*time.Second),
		FirestoreProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		DefaultMaxDistanceMeters: envOrDefaultFloat("DEFAULT_MAX_DISTANCE_METERS", model.DefaultMaxDistanceMeters),
		FetchPageSize:            envOrDefaultInt("FETCH_PAGE_SIZE", 50),
		FetchMaxPages:            envOrDefaultInt("FETCH_MAX_PAGES", 5),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 取得元ごとの必須項目をチェック
func (c Config) Validate() error {
	// メニューは取得元に関わらずSupabaseから読む
	if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_URL と SUPABASE_ANON_KEY を設定してください")
	}

	switch c.RestaurantSource {
	case SourceSupabase:
	case SourcePostgres:
		if c.SupabaseDBPassword == "" {
			return fmt.Errorf("RESTAURANT_SOURCE=postgres には SUPABASE_DB_PASSWORD が必要です")
		}
	case SourceGooglePlaces:
		if c.GoogleMapsAPIKey == "" {
			return fmt.Errorf("RESTAURANT_SOURCE=google_places には GOOGLE_MAPS_API_KEY が必要です")
		}
	default:
		return fmt.Errorf("RESTAURANT_SOURCE が不正です: %s", c.RestaurantSource)
	}

	if c.DefaultMaxDistanceMeters < 0 {
		return fmt.Errorf("DEFAULT_MAX_DISTANCE_METERS は0以上で指定してください")
	}
	if c.FetchPageSize <= 0 || c.FetchMaxPages <= 0 {
		return fmt.Errorf("FETCH_PAGE_SIZE と FETCH_MAX_PAGES は1以上で指定してください")
	}
	return nil
}

// DeviceCacheEnabled Firestoreの端末キャッシュを使うか
func (c Config) DeviceCacheEnabled() bool {
	return c.FirestoreProjectID != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ %s の値が不正なためデフォルト値 %d を使用: %q", key, def, v)
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
		log.Printf("⚠️ %s の値が不正なためデフォルト値 %v を使用: %q", key, def, v)
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("⚠️ %s の値が不正なためデフォルト値 %s を使用: %q", key, def, v)
	}
	return def
}
