package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the counter key for a client in a fixed rate-limit window.
// window is the index of the fixed window counted from the Unix epoch.
func (r *CacheKeyStruct) RateLimitKey(client string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", client, window)
}

var CacheKey = NewCacheKeyStruct()
