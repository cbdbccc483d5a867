// Package suite runs repository tests against a real Redis started with dockertest.
package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerLifetime = uint(120)
	startupTimeout    = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// keys follow the repository layout "match:<id>"
const (
	matchKeyPrefix  = "match:"
	matchKeyPattern = matchKeyPrefix + "*"
)

// Suite - an empty Redis for one test plus helpers for looking at stored matches.
type Suite struct {
	*testing.T

	Storage *redis.Client
}

// New - starts Redis in Docker. The test is skipped with -short or when Docker is unavailable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis container in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)

	return ctx, &Suite{
		T:       t,
		Storage: startRedis(ctx, t),
	}
}

func startRedis(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Errorf("could not purge redis container: %v", purgeErr)
		}
	})

	// hard kill if the cleanup never runs
	_ = resource.Expire(containerLifetime)

	client := redis.NewClient(&redis.Options{Addr: resource.GetHostPort(redisPort)})
	t.Cleanup(func() {
		_ = client.Close()
	})

	pool.MaxWait = startupTimeout
	if err = pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	return client
}

// MatchKeys - every stored match key.
func (that *Suite) MatchKeys(ctx context.Context) []string {
	that.Helper()

	var keys []string

	iter := that.Storage.Scan(ctx, 0, matchKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		that.Fatalf("could not scan match keys: %v", err)
	}

	return keys
}

// MatchTTL - remaining lifetime of a stored match.
func (that *Suite) MatchTTL(ctx context.Context, id string) time.Duration {
	that.Helper()

	ttl, err := that.Storage.TTL(ctx, matchKeyPrefix+id).Result()
	if err != nil {
		that.Fatalf("could not read ttl of match %s: %v", id, err)
	}

	return ttl
}

// PutRawMatch - stores payload as match id without going through the repository.
func (that *Suite) PutRawMatch(ctx context.Context, id, payload string) {
	that.Helper()

	if err := that.Storage.Set(ctx, matchKeyPrefix+id, payload, 0).Err(); err != nil {
		that.Fatalf("could not store match %s: %v", id, err)
	}
}
