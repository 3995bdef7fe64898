package consts

// Redis key 前缀
const (
	TokenBlacklistKey = "auth:blacklist:"
	TrendingCacheKey  = "feed:trending:default"
)
