package services

import (
	"testing"
	"time"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/repository"
	"github.com/lineinsight/lineinsight/internal"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func TestGetFacilityMetricsEmptyFacility(t *testing.T) {
	internal.InitMemcache()
	Init(repository.NewStore("empty-facility"), datamodel.DefaultSiteConfiguration())

	metrics := GetFacilityMetrics()
	if metrics != (datamodel.FacilityMetrics{}) {
		t.Errorf("empty facility must roll up to zeros, got %+v", metrics)
	}
}

func TestGetFacilityMetricsSeededFacility(t *testing.T) {
	internal.InitMemcache()

	testStore := repository.NewStore("seeded-facility")
	repository.Seed(testStore, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	Init(testStore, datamodel.DefaultSiteConfiguration())

	metrics := GetFacilityMetrics()

	if metrics.TotalLines != 4 {
		t.Errorf("wrong total lines: %v", metrics.TotalLines)
	}
	// line-a is stopped but not offline, so all four lines count as active
	if metrics.ActiveLines != 4 {
		t.Errorf("wrong active lines: %v", metrics.ActiveLines)
	}
	// (78.5 + 72.3 + 89.7 + 85.4) / 4
	if !almostEqual(metrics.OverallOEE, 81.475) {
		t.Errorf("wrong overall OEE: %v", metrics.OverallOEE)
	}
	// one active critical alert in the seed
	if metrics.CriticalAlerts != 1 {
		t.Errorf("wrong critical alert count: %v", metrics.CriticalAlerts)
	}
	if metrics.TotalUnitsProduced != 1247+856+328+1680 {
		t.Errorf("wrong units produced: %v", metrics.TotalUnitsProduced)
	}
}

func TestGetFacilityMetricsServedFromCache(t *testing.T) {
	internal.InitMemcache()

	testStore := repository.NewStore("cached-facility")
	testStore.UpsertMachine(datamodel.MachineStatus{
		ID: "m1", Status: datamodel.MachineRunning,
		OEE: datamodel.OEEMetrics{Overall: 80},
	})
	Init(testStore, datamodel.DefaultSiteConfiguration())

	first := GetFacilityMetrics()

	// a write inside the cache window is not visible yet
	testStore.UpsertMachine(datamodel.MachineStatus{
		ID: "m2", Status: datamodel.MachineRunning,
		OEE: datamodel.OEEMetrics{Overall: 60},
	})
	second := GetFacilityMetrics()

	if first != second {
		t.Errorf("rollup must be served from cache within the staleness window: %+v vs %+v", first, second)
	}
}
