package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is an
// alias of redis.UniversalClient so single-node and cluster clients fit.
type Client interface {
	redis.UniversalClient
}
