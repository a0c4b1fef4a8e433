package configuration

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"bgm-auto-tracker/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	Bangumi     Bangumi     `json:"bangumi"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port int `json:"port"`
	// Host is the public host name the service is reachable at, used to build the OAuth callback URL.
	Host       string `json:"host"`
	Protocol   string `json:"protocol"`
	ProjectURL string `json:"projectURL"`
}

type Database struct {
	Mongo Mongo `json:"mongo"`
}

type Mongo struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Bangumi holds the bgm.tv OAuth client registration.
type Bangumi struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AuthURL      string `json:"authURL"`
	TokenURL     string `json:"tokenURL"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	// CacheTTL is how long a catalog entry stays cached, e.g. "1h".
	CacheTTL string `json:"cacheTTL"`
}

type Logger struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

const (
	defaultPort       = 6003
	defaultProjectURL = "https://github.com/Trim21/bilibili-bangumi-tv-auto-tracker"
	defaultAuthURL    = "https://bgm.tv/oauth/authorize"
	defaultTokenURL   = "https://bgm.tv/oauth/access_token"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoName  = "bilibili_bangumi"
	defaultCacheTTL   = time.Hour
)

var C Config

func init() {
	Load()
}

// Load rebuilds C from the config file and the environment. main calls it
// again after dotenv files have been applied.
func Load() {
	C = Config{}
	LoadConfig()
	initApp(&C)
	initDatabase(&C)
	initBangumi(&C)
	initRedis(&C)
	initLogger(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = defaultPort
	}
	C.App.Host = getConfigValue(C.App.Host, "HOST", fmt.Sprintf("localhost:%d", C.App.Port))
	C.App.Protocol = strings.ToLower(getConfigValue(C.App.Protocol, "PROTOCOL", "http"))
	if C.App.Protocol != "http" && C.App.Protocol != "https" {
		logger.GetLogger().WithField("protocol", C.App.Protocol).Warn("Unsupported protocol, using http")
		C.App.Protocol = "http"
	}
	C.App.ProjectURL = getConfigValue(C.App.ProjectURL, "PROJECT_URL", defaultProjectURL)
}

func initDatabase(C *Config) {
	C.Database.Mongo.URI = getConfigValue(C.Database.Mongo.URI, "MONGO_URI", defaultMongoURI)
	C.Database.Mongo.Name = getConfigValue(C.Database.Mongo.Name, "MONGO_DB", defaultMongoName)
	logger.GetLogger().WithField("database", C.Database.Mongo.Name).Info("Database configuration")
}

func initBangumi(C *Config) {
	C.Bangumi.ClientID = getConfigValue(C.Bangumi.ClientID, "APP_ID", "")
	C.Bangumi.ClientSecret = getConfigValue(C.Bangumi.ClientSecret, "APP_SECRET", "")
	C.Bangumi.AuthURL = getConfigValue(C.Bangumi.AuthURL, "BANGUMI_AUTH_URL", defaultAuthURL)
	C.Bangumi.TokenURL = getConfigValue(C.Bangumi.TokenURL, "BANGUMI_TOKEN_URL", defaultTokenURL)
	if C.Bangumi.ClientID == "" || C.Bangumi.ClientSecret == "" {
		logger.GetLogger().Warn("APP_ID or APP_SECRET not set; OAuth exchanges will be rejected by bgm.tv")
	}
}

func initRedis(C *Config) {
	C.RedisClient.Host = getConfigValue(C.RedisClient.Host, "REDIS_HOST", "")
	C.RedisClient.Port = getConfigValue(C.RedisClient.Port, "REDIS_PORT", "6379")
	C.RedisClient.Username = getConfigValue(C.RedisClient.Username, "REDIS_USERNAME", "")
	C.RedisClient.Password = getConfigValue(C.RedisClient.Password, "REDIS_PASSWORD", "")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			C.RedisClient.DB = db
		}
	}
	C.RedisClient.CacheTTL = getConfigValue(C.RedisClient.CacheTTL, "SUBJECT_CACHE_TTL", defaultCacheTTL.String())
}

func initLogger(C *Config) {
	C.Logger.Level = getConfigValue(C.Logger.Level, "LOG_LEVEL", "debug")
	C.Logger.Format = getConfigValue(C.Logger.Format, "LOG_FORMAT", "json")
	logger.Configure(C.Logger.Level, C.Logger.Format)
}

// CallbackURL is the redirect URI registered with bgm.tv.
func (a App) CallbackURL() string {
	u := url.URL{Scheme: a.Protocol, Host: a.Host, Path: "/oauth_callback"}
	return u.String()
}

// RedisEnabled reports whether a Redis host was configured.
func (r RedisClient) RedisEnabled() bool {
	return r.Host != ""
}

func (r RedisClient) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// TTL parses CacheTTL, falling back to one hour.
func (r RedisClient) TTL() time.Duration {
	d, err := time.ParseDuration(r.CacheTTL)
	if err != nil || d <= 0 {
		return defaultCacheTTL
	}
	return d
}

// getConfigValue gets value from config first, then environment variable, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	// Environment variable takes precedence when provided
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
