package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	c := NewRedisCache("localhost:0", "bundles")

	assert.Equal(t, "bundles:snapshot:bundle-store", c.GenerateKey("snapshot", "bundle-store"))
}
