package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DondeComo-App/internal/config"
	"DondeComo-App/internal/domain/repository"
	"DondeComo-App/internal/domain/service"
	"DondeComo-App/internal/handler"
	"DondeComo-App/internal/infrastructure/database"
	"DondeComo-App/internal/infrastructure/firestore"
	"DondeComo-App/internal/infrastructure/maps"
	repoImpl "DondeComo-App/internal/repository"
	"DondeComo-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 設定の読み込みに失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Supabaseはメニュー取得で常に使用する
	supabaseClient, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		log.Fatalf("❌ Supabaseクライアント初期化失敗: %v", err)
	}

	restaurantsRepo, health, cleanup, err := newRestaurantSource(ctx, cfg, supabaseClient)
	if err != nil {
		log.Fatalf("❌ レストラン取得元の初期化失敗: %v", err)
	}
	defer cleanup()
	log.Printf("✅ レストラン取得元: %s", cfg.RestaurantSource)

	collector := service.NewRestaurantCollector(restaurantsRepo, cfg.FetchPageSize, cfg.FetchMaxPages)
	dishesRepo := repoImpl.NewSupabaseDishesRepository(supabaseClient)
	restaurantUseCase := usecase.NewRestaurantUseCase(collector, restaurantsRepo, dishesRepo)
	restaurantHandler := handler.NewRestaurantHandler(restaurantUseCase, cfg.DefaultMaxDistanceMeters)

	var cacheHandler *handler.DeviceCacheHandler
	if cfg.DeviceCacheEnabled() {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Fatalf("❌ Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()

		cacheRepo := repoImpl.NewFirestoreDeviceCacheRepository(firestoreClient.GetClient())
		cacheHandler = handler.NewDeviceCacheHandler(usecase.NewDeviceCacheUseCase(cacheRepo))
	} else {
		log.Printf("⚠️ FIRESTORE_PROJECT_ID未設定のため端末キャッシュAPIは無効")
	}

	router := handler.NewRouter(restaurantHandler, cacheHandler, health)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 DondeComo API server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ サーバー起動失敗: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("🛑 シャットダウン中...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ シャットダウン失敗: %v", err)
	}
}

// newRestaurantSource 設定に応じてレストランの取得元を組み立てる
func newRestaurantSource(ctx context.Context, cfg config.Config, supabaseClient *database.SupabaseClient) (repository.RestaurantsRepository, handler.HealthChecker, func(), error) {
	noop := func() {}

	switch cfg.RestaurantSource {
	case config.SourcePostgres:
		pgClient, err := database.NewPostgreSQLClient(ctx, cfg.SupabaseURL, cfg.SupabaseDBPassword)
		if err != nil {
			return nil, nil, noop, err
		}
		cleanup := func() {
			if err := pgClient.Close(); err != nil {
				log.Printf("⚠️ PostgreSQL切断失敗: %v", err)
			}
		}
		return repoImpl.NewPostgresRestaurantsRepository(pgClient), pgClient.HealthCheck, cleanup, nil

	case config.SourceGooglePlaces:
		provider, err := maps.NewGooglePlacesProvider(cfg.GoogleMapsAPIKey, cfg.PlacesLanguage, cfg.PlacesPageTokenDelay)
		if err != nil {
			return nil, nil, noop, err
		}
		return provider, supabaseClient.HealthCheck, noop, nil

	default:
		return repoImpl.NewSupabaseRestaurantsRepository(supabaseClient), supabaseClient.HealthCheck, noop, nil
	}
}
