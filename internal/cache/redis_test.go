package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileCacheKey(t *testing.T) {
	assert.Equal(t, "profile:507f1f77bcf86cd799439011", ProfileCacheKey("507f1f77bcf86cd799439011"))
	assert.Equal(t, "profile:", ProfileCacheKey(""))
}
