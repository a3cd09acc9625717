package configuration

import (
	"fmt"
	"os"
	"strconv"

	"pagecaster/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	Graph       Graph       `json:"graph"`
	OAuth       OAuth       `json:"oauth"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
	RedisClient RedisClient `json:"redisClient"`
	Insights    Insights    `json:"insights"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	// FrontendURL is where the OAuth callback redirects after page selection.
	FrontendURL string `json:"frontendURL"`
}

type Database struct {
	// Vendor selects the credential store: mongo (default) or postgres.
	Vendor string `json:"vendor"`
	Mongo  Db     `json:"mongo"`
	Psql   Db     `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Graph holds the publishing API endpoint; BaseURL is overridable so tests
// can point the client at a fake server.
type Graph struct {
	BaseURL string `json:"baseURL"`
	Version string `json:"version"`
}

// OAuth holds the Facebook app credentials for the authorization handshake.
type OAuth struct {
	Facebook OAuthClient `json:"facebook"`
}

type OAuthClient struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	ConnectionString string `json:"connectionString"`
	Queue            string `json:"queue"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Insights struct {
	Metrics         []string `json:"metrics"`
	CacheTTLSeconds int      `json:"cacheTTLSeconds"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initGraph(&C)
	initMessaging(&C)
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

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if v := os.Getenv("DB_VENDOR"); v != "" {
		C.Database.Vendor = v
	}
	if C.Database.Vendor == "" {
		C.Database.Vendor = "mongo"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = envOr("MONGO_HOST", "localhost")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = envOr("MONGO_PORT", "27017")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = envOr("MONGO_DB_NAME", "pagecaster")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = envOr("DB_PORT", "5432")
	}
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides the config file when provided.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
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
		C.App.Port = 4000
	}
	if C.App.FrontendURL == "" {
		C.App.FrontendURL = envOr("FRONTEND_URL", "http://localhost:5173")
	}
	if C.OAuth.Facebook.ClientID == "" {
		C.OAuth.Facebook.ClientID = os.Getenv("FB_APP_ID")
	}
	if C.OAuth.Facebook.ClientSecret == "" {
		C.OAuth.Facebook.ClientSecret = os.Getenv("FB_APP_SECRET")
	}
	if C.OAuth.Facebook.RedirectURI == "" {
		C.OAuth.Facebook.RedirectURI = os.Getenv("FB_REDIRECT_URI")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; session cookies cannot be verified. Provide SECRET_KEY via environment.")
	}
}

func initGraph(C *Config) {
	if v := os.Getenv("GRAPH_BASE_URL"); v != "" {
		C.Graph.BaseURL = v
	}
	if C.Graph.BaseURL == "" {
		C.Graph.BaseURL = "https://graph.facebook.com"
	}
	if C.Graph.Version == "" {
		C.Graph.Version = envOr("GRAPH_API_VERSION", "v20.0")
	}
	if len(C.Insights.Metrics) == 0 {
		C.Insights.Metrics = []string{"post_impressions", "post_impressions_unique", "post_clicks"}
	}
	if C.Insights.CacheTTLSeconds == 0 {
		C.Insights.CacheTTLSeconds = 300
	}
}

func initMessaging(C *Config) {
	if C.Pubsub.ProjectID == "" {
		C.Pubsub.ProjectID = os.Getenv("PUBSUB_PROJECT_ID")
	}
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = envOr("PUBSUB_TOPIC", "publish-events")
	}
	if C.ServiceBus.ConnectionString == "" {
		C.ServiceBus.ConnectionString = os.Getenv("SERVICEBUS_CONNECTION_STRING")
	}
	if C.ServiceBus.Queue == "" {
		C.ServiceBus.Queue = envOr("SERVICEBUS_QUEUE", "publish-events")
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = envOr("REDIS_PORT", "6379")
	}
	if C.RedisClient.Username == "" {
		C.RedisClient.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
