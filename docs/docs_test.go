package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Blogger API", parsed.Info["title"])
	for _, p := range []string{"/blog/create", "/blog/delete", "/blog/get", "/blog/update", "/blog/getmyblogs", "/blog/getblog/{blog_id}"} {
		assert.Contains(t, parsed.Paths, p)
	}
}
