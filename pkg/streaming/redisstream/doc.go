/*
Package redisstream provides fusion streams backed by Redis.

Values walks a Redis list page by page with LRANGE; Keys walks the keyspace
with SCAN. Both are lazy: a page is fetched only when the consumer pulls past
the end of the previous one, so a Take or Head over a large list issues as
few commands as possible.

Basic Usage:

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	cfg := redisstream.DefaultConfig()
	cfg.Redis = rdb
	cfg.Key = "events"

	events, err := redisstream.Values(cfg)
	if err != nil {
		log.Fatal(err)
	}

	recent, err := fusion.ToSlice(ctx, fusion.Take(events, 50))

Each command runs under the consumer's context, bounded by Config.RedisTimeout.
Command failures end the run with an *errors.OperationError whose cause is the
go-redis error. Its context names the key or pattern and notes whether the
command timed out or was canceled.

Runs are independent: every terminal operation starts again from the head of
the list or from SCAN cursor 0. Values read while the list is being modified
may skip or repeat elements, as LRANGE paging does.
*/
package redisstream
