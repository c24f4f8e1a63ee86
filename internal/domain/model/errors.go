package model

import "errors"

var (
	// ErrInvalidArgument 入力値が不正
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLocationUnavailable 現在地が取得できない
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrRestaurantNotFound レストランが存在しない
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCacheEntryNotFound 端末キャッシュに値が無い
	ErrCacheEntryNotFound = errors.New("cache entry not found")
)
