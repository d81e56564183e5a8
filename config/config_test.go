package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	c := Default()
	err := Parse([]byte(`
logging:
  level: debug
mongo:
  database: blogger_test
`), &c)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "blogger_test", c.Mongo.Database)
	assert.Equal(t, "mongodb://localhost:27017", c.Mongo.URI)
	assert.Equal(t, 3, c.Pagination.DefaultLimit)
	assert.Equal(t, 5, c.Pagination.MyBlogsDefaultLimit)
	assert.Equal(t, StorageMongo, c.Storage.Driver)
}

func TestParseNormalisesInvalidValues(t *testing.T) {
	c := Default()
	err := Parse([]byte(`
storage:
  driver: " Memory "
pagination:
  default_limit: 0
  my_blogs_default_limit: -2
`), &c)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, c.Storage.Driver)
	assert.Equal(t, 3, c.Pagination.DefaultLimit)
	assert.Equal(t, 5, c.Pagination.MyBlogsDefaultLimit)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	c := Default()
	err := Parse([]byte("server: [unterminated"), &c)
	assert.Error(t, err)
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGIN", "http://a.test,http://b.test")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "kafka:9092")

	c := Default()
	applyEnv(&c)

	assert.Equal(t, "mongodb://mongo:27017", c.Mongo.URI)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Server.CORSOrigins)
	assert.Equal(t, "kafka:9092", c.Events.Brokers)
}
