//go:build integration
// +build integration

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/tradeseed/config"
	"github.com/guttosm/tradeseed/internal/app"
	"github.com/guttosm/tradeseed/internal/domain/dto"
	"github.com/guttosm/tradeseed/internal/domain/models"
)

const mongoPort nat.Port = "27017/tcp"

func startMongo(t *testing.T) (uri string, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{string(mongoPort)},
		WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err, "container")

	h, err := c.Host(ctx)
	require.NoError(t, err, "host")
	mp, err := c.MappedPort(ctx, mongoPort)
	require.NoError(t, err, "port")

	uri = fmt.Sprintf("mongodb://%s:%s/trading_analytics_e2e", h, mp.Port())
	terminate = func() { _ = c.Terminate(context.Background()) }
	return uri, terminate
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestAPI_E2E_SeedThenRead(t *testing.T) {
	uri, term := startMongo(t)
	defer term()

	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "0"},
		Mongo:  config.MongoConfig{URI: uri, Database: "trading_analytics_e2e", Timeout: 10 * time.Second},
		Seed:   config.SeedConfig{Count: config.SeedCount},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Seeding twice leaves exactly one corpus.
	for range 2 {
		report, err := app.RunSeed(ctx, config.AppConfig, nil)
		require.NoError(t, err)
		require.Len(t, report.Collections, len(models.Collections))
	}

	router, cleanup, err := app.InitializeApp(ctx)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, http.StatusOK, get(t, router, "/readyz").Code)

	for _, name := range models.Collections {
		w := get(t, router, "/api/v1/collections/"+name)
		require.Equal(t, http.StatusOK, w.Code, name)
		var docs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs), name)
		assert.Len(t, docs, config.SeedCount, name)
	}

	w := get(t, router, "/api/v1/collections/agents/0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"agent_id":"AG`)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/collections/agents/100").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/collections/trades").Code)

	body := strings.NewReader(`{"symbol":"TEST","note":"manual"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/collections/prices", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.ID, 24)

	w = get(t, router, "/api/v1/collections/prices/100")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"note":"manual"`)
}
