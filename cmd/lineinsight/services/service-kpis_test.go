package services

import (
	"errors"
	"testing"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/models"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func TestGetMachineKpis(t *testing.T) {
	setupTestFacility(t)

	response, err := GetMachineKpis("line-x")
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if len(response.Kpis) != len(models.MachineKpis) {
		t.Errorf("wrong kpi list: %v", response.Kpis)
	}

	_, err = GetMachineKpis("no-such-line")
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown machine, got %v", err)
	}
}

func TestProcessOeeKpiRecomputesFromComponents(t *testing.T) {
	testStore := setupTestFacility(t)

	testStore.UpsertMachine(datamodel.MachineStatus{
		ID:   "line-x",
		Name: "Line X - Test",
		// stored overall is stale on purpose
		OEE:            datamodel.OEEMetrics{Overall: 99, Availability: 94.2, Performance: 78.1, Quality: 99.2},
		ProductionRate: datamodel.ProductionRate{Current: 100, Target: 120},
	})

	response, err := ProcessKpiRequest("line-x", models.OeeKpi)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if len(response.Datapoints) != 1 {
		t.Fatalf("expected exactly one datapoint, got %d", len(response.Datapoints))
	}

	oee := response.Datapoints[0][0].(float64)
	if !almostEqual(oee, 72.9816384) {
		t.Errorf("OEE not recomputed from components: %v", oee)
	}
	if rating := response.Datapoints[0][1].(string); rating != string(datamodel.OEEGood) {
		t.Errorf("wrong rating: %v", rating)
	}
}

func TestProcessComponentKpis(t *testing.T) {
	testStore := setupTestFacility(t)

	testStore.UpsertMachine(datamodel.MachineStatus{
		ID:  "line-x",
		OEE: datamodel.OEEMetrics{Availability: 82.1, Performance: 85.2, Quality: 98.8},
	})

	validInputOutputMap := map[string]float64{
		models.AvailabilityKpi: 82.1,
		models.PerformanceKpi:  85.2,
		models.QualityKpi:      98.8,
	}

	for kpi, expected := range validInputOutputMap {
		response, err := ProcessKpiRequest("line-x", kpi)
		if err != nil {
			t.Errorf("error detected for %v: %v", kpi, err)
			continue
		}
		if value := response.Datapoints[0][0].(float64); !almostEqual(value, expected) {
			t.Errorf("wrong %v: got %v, expected %v", kpi, value, expected)
		}
	}
}

func TestProcessUnknownKpi(t *testing.T) {
	setupTestFacility(t)

	_, err := ProcessKpiRequest("line-x", "throughput")
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown kpi, got %v", err)
	}
}

func TestProcessRemainingTimeKpi(t *testing.T) {
	testStore := setupTestFacility(t)

	testStore.UpsertMachine(datamodel.MachineStatus{
		ID:             "line-x",
		ProductionRate: datamodel.ProductionRate{Current: 180, Target: 180},
		CurrentOrder: &datamodel.ProductionOrder{
			ID: "order-x", Quantity: 1247, TargetQuantity: 1500,
		},
	})

	response, err := ProcessKpiRequest("line-x", models.RemainingTimeKpi)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	minutes := response.Datapoints[0][0].(float64)
	if !almostEqual(minutes, 253.0/180.0*60) {
		t.Errorf("wrong remaining minutes: %v", minutes)
	}
}

func TestProcessRemainingTimeKpiEdgeCases(t *testing.T) {
	testStore := setupTestFacility(t)

	// no active order
	testStore.UpsertMachine(datamodel.MachineStatus{ID: "line-x"})
	_, err := ProcessKpiRequest("line-x", models.RemainingTimeKpi)
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for machine without order, got %v", err)
	}

	// stopped line, remaining work left
	testStore.UpsertMachine(datamodel.MachineStatus{
		ID:             "line-x",
		ProductionRate: datamodel.ProductionRate{Current: 0, Target: 180},
		CurrentOrder: &datamodel.ProductionOrder{
			ID: "order-x", Quantity: 100, TargetQuantity: 1500,
		},
	})
	_, err = ProcessKpiRequest("line-x", models.RemainingTimeKpi)
	if !errors.Is(err, datamodel.ErrIndeterminate) {
		t.Errorf("no ErrIndeterminate for zero rate, got %v", err)
	}
}
