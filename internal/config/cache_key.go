package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RevokedTokenKey returns the cache key marking a token ID as logged out.
func (r *CacheKeyStruct) RevokedTokenKey(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}

// UserTokensKey returns the cache key of the set of live token IDs of a user.
func (r *CacheKeyStruct) UserTokensKey(userID int) string {
	return fmt.Sprintf("auth:user:%d:tokens", userID)
}

var CacheKey = NewCacheKeyStruct()
