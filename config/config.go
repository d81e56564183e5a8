package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Pagination PaginationConfig `yaml:"pagination"`
	Events     EventsConfig     `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	CORSOrigins  []string `yaml:"cors_origins"`
	MaxBodyBytes int64    `yaml:"max_body_bytes"`
}

// StorageConfig selects the blog/user repository implementation.
// "memory" keeps everything in process and is meant for local runs.
type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// PaginationConfig holds the page sizes used when the client sends no
// (or an unparseable) limit.
type PaginationConfig struct {
	DefaultLimit        int `yaml:"default_limit"`
	MyBlogsDefaultLimit int `yaml:"my_blogs_default_limit"`
}

// EventsConfig controls publication of blog lifecycle events to Kafka.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Brokers string `yaml:"brokers"`
	GroupID string `yaml:"group_id"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := Default()
	path := filepath.Join(GetBasePath(), CONFIG_FILE)
	if data, err := os.ReadFile(path); err == nil {
		if err := Parse(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}
	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Default returns the configuration used for keys missing from config.yaml.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:         ":8000",
			CORSOrigins:  []string{"http://localhost:5173"},
			MaxBodyBytes: 128 << 10,
		},
		Storage: StorageConfig{Driver: StorageMongo},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "blogger",
		},
		Pagination: PaginationConfig{
			DefaultLimit:        3,
			MyBlogsDefaultLimit: 5,
		},
		Events: EventsConfig{GroupID: "blogger"},
	}
}

// Parse decodes yaml on top of whatever c already holds, so callers can
// start from Default().
func Parse(data []byte, c *AppConfig) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	if c.Pagination.DefaultLimit <= 0 {
		c.Pagination.DefaultLimit = 3
	}
	if c.Pagination.MyBlogsDefaultLimit <= 0 {
		c.Pagination.MyBlogsDefaultLimit = 5
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMongo
	}
	return nil
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		c.Server.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Events.Brokers = v
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		c.Events.GroupID = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
