package stats

// Тесты HTTP-клиента сервиса статистики (httptest-сервер вместо апстрима).

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_Hit(t *testing.T) {
	var got hitRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, "events-service", time.Second)

	err := c.Hit(context.Background(), "/events/42", "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, "events-service", got.App)
	require.Equal(t, "/events/42", got.URI)
	require.Equal(t, "10.0.0.1", got.IP)

	// Метка времени в формате API.
	_, err = time.Parse(timeLayout, got.Timestamp)
	require.NoError(t, err)
}

func TestClient_Hit_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "events-service", time.Second)

	err := c.Hit(context.Background(), "/events/42", "10.0.0.1")
	require.Error(t, err)
}

func TestClient_Views(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("unique"))
		require.NotEmpty(t, r.URL.Query().Get("start"))
		require.NotEmpty(t, r.URL.Query().Get("end"))

		_ = json.NewEncoder(w).Encode([]viewStats{
			{App: "events-service", URI: "/events/1", Hits: 7},
			{App: "events-service", URI: "/events/2", Hits: 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "events-service", time.Second)

	views, err := c.Views(context.Background(),
		time.Now().Add(-time.Hour), time.Now(),
		[]string{"/events/1", "/events/2"}, true)
	require.NoError(t, err)
	require.Equal(t, int64(7), views["/events/1"])
	require.Equal(t, int64(3), views["/events/2"])
	require.Zero(t, views["/events/3"])
}
