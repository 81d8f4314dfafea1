package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func TestLoadSiteConfigurationDefaults(t *testing.T) {
	configuration, err := LoadSiteConfiguration("")
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if configuration != datamodel.DefaultSiteConfiguration() {
		t.Errorf("empty path must yield defaults, got %+v", configuration)
	}
}

func TestLoadSiteConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := []byte("excellentOeeThreshold: 90\ngoodOeeThreshold: 70\ncostPerUnit: 12.5\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}

	configuration, err := LoadSiteConfiguration(path)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if configuration.ExcellentOEEThreshold != 90 || configuration.GoodOEEThreshold != 70 {
		t.Errorf("thresholds not loaded: %+v", configuration)
	}
	if configuration.CostPerUnit != 12.5 {
		t.Errorf("cost per unit not loaded: %+v", configuration)
	}
	// unset keys keep their defaults
	if configuration.UnitsPerMinuteIdeal != datamodel.DefaultSiteConfiguration().UnitsPerMinuteIdeal {
		t.Errorf("unset key lost its default: %+v", configuration)
	}
}

func TestLoadSiteConfigurationMissingFile(t *testing.T) {
	_, err := LoadSiteConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Errorf("missing file must fail loudly")
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("facilitymetrics", "plant-north")
	b := CacheKey("facilitymetrics", "plant-north")
	c := CacheKey("facilitymetrics", "plant-south")

	if a != b {
		t.Errorf("cache key must be deterministic: %v vs %v", a, b)
	}
	if a == c {
		t.Errorf("different parts must not collide: %v", a)
	}
}

func TestTieredCacheRoundtrip(t *testing.T) {
	InitMemcache()

	metrics := datamodel.FacilityMetrics{OverallOEE: 81.4, TotalLines: 4}
	key := CacheKey("facilitymetrics", "roundtrip-facility")

	StoreFacilityMetricsToCache(key, metrics)

	cached, cacheHit := GetFacilityMetricsFromCache(key)
	if !cacheHit {
		t.Fatalf("no cache hit directly after store")
	}
	if cached != metrics {
		t.Errorf("cache roundtrip changed the value: %+v vs %+v", cached, metrics)
	}

	_, cacheHit = GetFacilityMetricsFromCache(CacheKey("facilitymetrics", "unknown"))
	if cacheHit {
		t.Errorf("unexpected cache hit for unknown key")
	}
}
