package internal

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	gojson "github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

var rdb *redis.Client
var ctx = context.Background()
var memCache *cache.Cache

var redisDataExpiration time.Duration
var memoryDataExpiration time.Duration

var redisInitialized bool

// InitCache initializes the tiered cache. Snapshots live a few seconds in
// memory; redis is the shared second tier when multiple replicas serve the
// same facility.
func InitCache(redisURI string, redisPassword string, redisDB int, dryRun string) {

	if dryRun == "True" || dryRun == "true" {
		zap.S().Infof("Running cache in DRY_RUN mode. This means that cache will not be used")
		return
	}

	redisDataExpiration = 1 * time.Minute
	memoryDataExpiration = 5 * time.Second

	memCache = cache.New(memoryDataExpiration, 20*time.Second)

	if redisURI == "" {
		zap.S().Infof("No REDIS_URI set, running with in-memory cache only")
		return
	}

	var options = redis.Options{
		Addr:     redisURI,
		Password: redisPassword,
		DB:       redisDB,
	}
	zap.S().Debugf("Initializing redis cache with address %s", redisURI)

	rdb = redis.NewClient(&options)
	redisInitialized = true
}

// InitMemcache initializes only the in-memory tier. Used by tests.
func InitMemcache() {
	memoryDataExpiration = 5 * time.Second
	memCache = cache.New(memoryDataExpiration, 20*time.Second)
	redisInitialized = false
}

// GetTiered attempts to get key from the memory cache, falling back to redis
func GetTiered(key string) (cached bool, value []byte) {
	if memCache == nil {
		return false, nil
	}

	raw, cached := memCache.Get(key)
	if cached {
		value, cached = raw.([]byte)
		return cached, value
	}

	if !redisInitialized {
		return false, nil
	}

	d := time.Now().Add(memoryDataExpiration)
	timeoutCtx, cancel := context.WithDeadline(ctx, d)
	defer cancel()

	value, err := rdb.Get(timeoutCtx, key).Bytes()
	if err != nil {
		return false, nil
	}

	// Write back to the memory tier
	memCache.SetDefault(key, value)
	return true, value
}

// SetTiered sets the memory tier and, if available, redis
func SetTiered(key string, value []byte) {
	if memCache == nil {
		return
	}
	memCache.SetDefault(key, value)
	if redisInitialized {
		rdb.Set(ctx, key, value, redisDataExpiration)
	}
}

// GetFacilityMetricsFromCache returns a cached facility rollup if present
func GetFacilityMetricsFromCache(key string) (metrics datamodel.FacilityMetrics, cacheHit bool) {
	cacheHit, value := GetTiered(key)
	if !cacheHit {
		return
	}
	err := gojson.Unmarshal(value, &metrics)
	if err != nil {
		zap.S().Warnf("Unable to unmarshal cached facility metrics: %v", err)
		return datamodel.FacilityMetrics{}, false
	}
	return metrics, true
}

// StoreFacilityMetricsToCache caches a facility rollup
func StoreFacilityMetricsToCache(key string, metrics datamodel.FacilityMetrics) {
	value, err := gojson.Marshal(metrics)
	if err != nil {
		zap.S().Warnf("Unable to marshal facility metrics for cache: %v", err)
		return
	}
	SetTiered(key, value)
}
