// Copyright 2025 Lineinsight Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package services

import (
	"fmt"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/models"
	"github.com/lineinsight/lineinsight/internal"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// GetMachineKpis lists the KPIs a machine serves.
func GetMachineKpis(machineID string) (models.GetKpisResponse, error) {
	if _, err := store.GetMachine(machineID); err != nil {
		return models.GetKpisResponse{}, err
	}
	return models.GetKpisResponse{Kpis: models.MachineKpis}, nil
}

// ProcessKpiRequest computes one KPI for one machine and shapes it as a
// column/datapoint response.
func ProcessKpiRequest(machineID string, kpi string) (datamodel.DataResponseAny, error) {
	machine, err := store.GetMachine(machineID)
	if err != nil {
		return datamodel.DataResponseAny{}, err
	}

	internal.KpiRequestsTotal.WithLabelValues(kpi).Inc()

	switch kpi {
	case models.OeeKpi:
		return processOeeKpi(machine)
	case models.AvailabilityKpi:
		return processComponentKpi(kpi, machine.OEE.Availability)
	case models.PerformanceKpi:
		return processComponentKpi(kpi, machine.OEE.Performance)
	case models.QualityKpi:
		return processComponentKpi(kpi, machine.OEE.Quality)
	case models.RemainingTimeKpi:
		return processRemainingTimeKpi(machine)
	default:
		return datamodel.DataResponseAny{},
			fmt.Errorf("unknown kpi %s: %w", kpi, datamodel.ErrNotFound)
	}
}

// processOeeKpi recomputes the overall OEE from the live components instead of
// trusting the stored overall, so the response is always internally consistent.
func processOeeKpi(machine datamodel.MachineStatus) (datamodel.DataResponseAny, error) {
	overall, err := CalculateOEE(
		machine.OEE.Availability,
		machine.OEE.Performance,
		machine.OEE.Quality)
	if err != nil {
		return datamodel.DataResponseAny{}, err
	}

	rating := ClassifyOEE(overall, siteConfiguration)

	return datamodel.DataResponseAny{
		ColumnNames: []string{"oee", "rating", "timestamp"},
		Datapoints: [][]interface{}{
			{overall, string(rating), now().UnixMilli()},
		},
	}, nil
}

func processComponentKpi(name string, value float64) (datamodel.DataResponseAny, error) {
	return datamodel.DataResponseAny{
		ColumnNames: []string{name, "timestamp"},
		Datapoints: [][]interface{}{
			{value, now().UnixMilli()},
		},
	}, nil
}

// processRemainingTimeKpi estimates the minutes until the machine's current
// order reaches its target at the current production rate.
func processRemainingTimeKpi(machine datamodel.MachineStatus) (datamodel.DataResponseAny, error) {
	if machine.CurrentOrder == nil {
		return datamodel.DataResponseAny{},
			fmt.Errorf("machine %s has no active order: %w", machine.ID, datamodel.ErrNotFound)
	}

	remaining, err := CalculateRemainingTime(
		machine.CurrentOrder.TargetQuantity,
		machine.CurrentOrder.Quantity,
		machine.ProductionRate.Current)
	if err != nil {
		return datamodel.DataResponseAny{}, err
	}

	return datamodel.DataResponseAny{
		ColumnNames: []string{"remainingMinutes", "orderId", "timestamp"},
		Datapoints: [][]interface{}{
			{remaining.Minutes(), machine.CurrentOrder.ID, now().UnixMilli()},
		},
	}, nil
}
