package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSupabaseDSN(t *testing.T) {
	t.Run("正常なURL", func(t *testing.T) {
		dsn, err := BuildSupabaseDSN("https://abcd.supabase.co", "secret")
		require.NoError(t, err)
		assert.Equal(t, "host=db.abcd.supabase.co port=6543 user=postgres password=secret dbname=postgres sslmode=require", dsn)
	})

	t.Run("末尾スラッシュ付き", func(t *testing.T) {
		dsn, err := BuildSupabaseDSN("https://abcd.supabase.co/", "secret")
		require.NoError(t, err)
		assert.Contains(t, dsn, "host=db.abcd.supabase.co ")
	})

	t.Run("パスワード未設定", func(t *testing.T) {
		_, err := BuildSupabaseDSN("https://abcd.supabase.co", "")
		assert.Error(t, err)
	})

	t.Run("URLが不正", func(t *testing.T) {
		_, err := BuildSupabaseDSN("abcd", "secret")
		assert.Error(t, err)
	})
}
