package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-7", time.Minute)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-7", id)

	expired, err := GenerateToken("user-7", -time.Minute)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(expired)
	require.Error(t, err)

	_, err = ExtractIDFromToken("not-a-token")
	require.Error(t, err)
}

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	status := CheckHealth(context.Background(), []*redis.Client{client}, func(context.Context) error { return nil })
	require.True(t, status.Healthy())
	require.Equal(t, status, GetHealthStatus())

	status = CheckHealth(context.Background(), []*redis.Client{client}, func(context.Context) error { return errors.New("down") })
	require.False(t, status.Healthy())
	require.Equal(t, []bool{true}, status.Redis)
}

func TestErrorHandlerRecovers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal Server Error")
}
