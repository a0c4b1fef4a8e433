package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("defaults_are_filled", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "App port should default")
		require.NotEmpty(t, C.App.Host, "App host should default")
		require.Contains(t, []string{"http", "https"}, C.App.Protocol)
		require.NotEmpty(t, C.Database.Mongo.URI)
		require.NotEmpty(t, C.Database.Mongo.Name)
		require.NotEmpty(t, C.Bangumi.AuthURL)
		require.NotEmpty(t, C.Bangumi.TokenURL)
	})
}

func TestApp_CallbackURL(t *testing.T) {
	app := App{Protocol: "https", Host: "tracker.example.com"}
	assert.Equal(t, "https://tracker.example.com/oauth_callback", app.CallbackURL())

	app = App{Protocol: "http", Host: "localhost:6003"}
	assert.Equal(t, "http://localhost:6003/oauth_callback", app.CallbackURL())
}

func TestRedisClient_TTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want time.Duration
	}{
		{name: "valid duration", ttl: "15m", want: 15 * time.Minute},
		{name: "empty falls back", ttl: "", want: time.Hour},
		{name: "garbage falls back", ttl: "soon", want: time.Hour},
		{name: "negative falls back", ttl: "-1s", want: time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedisClient{CacheTTL: tt.ttl}.TTL())
		})
	}
}

func TestRedisClient_Enabled(t *testing.T) {
	assert.False(t, RedisClient{}.RedisEnabled())
	r := RedisClient{Host: "cache", Port: "6380"}
	assert.True(t, r.RedisEnabled())
	assert.Equal(t, "cache:6380", r.Addr())
}

func TestGetConfigValue(t *testing.T) {
	t.Setenv("TRACKER_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", getConfigValue("from-config", "TRACKER_TEST_KEY", "default"))
	assert.Equal(t, "from-config", getConfigValue("from-config", "TRACKER_TEST_UNSET", "default"))
	assert.Equal(t, "default", getConfigValue("YOUR_CLIENT_ID", "TRACKER_TEST_UNSET", "default"))
	assert.Equal(t, "default", getConfigValue("", "TRACKER_TEST_UNSET", "default"))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("MONGO_DB", "tracker_test")
	t.Setenv("APP_PORT", "7001")
	t.Setenv("PROTOCOL", "HTTPS")
	t.Setenv("HOST", "tracker.example.com")
	t.Cleanup(Load)

	Load()

	assert.Equal(t, "tracker_test", C.Database.Mongo.Name)
	assert.Equal(t, 7001, C.App.Port)
	assert.Equal(t, "https://tracker.example.com/oauth_callback", C.App.CallbackURL())
}
