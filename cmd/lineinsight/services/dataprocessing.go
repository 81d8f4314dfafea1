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
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// ### CalculateOEE (only pure computations allowed here) ###

// CalculateOEE multiplies the three OEE components into the overall OEE.
// All inputs and the result are percentages in [0, 100].
func CalculateOEE(availability float64, performance float64, quality float64) (float64, error) {
	for _, component := range []struct {
		name  string
		value float64
	}{
		{"availability", availability},
		{"performance", performance},
		{"quality", quality},
	} {
		if math.IsNaN(component.value) || component.value < 0 || component.value > 100 {
			return 0, fmt.Errorf("%s is %f, not a percentage: %w",
				component.name, component.value, datamodel.ErrInvalidMetric)
		}
	}

	return availability * performance * quality / 10000, nil
}

// ClassifyOEE rates an overall OEE value against the site thresholds.
func ClassifyOEE(overall float64, configuration datamodel.SiteConfiguration) datamodel.OEEClass {
	switch {
	case overall >= configuration.ExcellentOEEThreshold:
		return datamodel.OEEExcellent
	case overall >= configuration.GoodOEEThreshold:
		return datamodel.OEEGood
	default:
		return datamodel.OEEPoor
	}
}

// ### CalculateRemainingTime ###

// CalculateRemainingTime estimates how long an order needs to reach its target
// quantity at the given production rate (units per hour). A rate of zero or
// less makes the estimate indeterminate; an order at or past its target needs
// zero time.
func CalculateRemainingTime(targetQuantity int, currentQuantity int, ratePerHour float64) (time.Duration, error) {
	remaining := targetQuantity - currentQuantity
	if remaining <= 0 {
		return 0, nil
	}

	if ratePerHour <= 0 || math.IsNaN(ratePerHour) {
		return 0, fmt.Errorf("%d units remaining at rate %f: %w",
			remaining, ratePerHour, datamodel.ErrIndeterminate)
	}

	hours := float64(remaining) / ratePerHour
	return time.Duration(hours * float64(time.Hour)), nil
}

// ### EstimateImpact ###

// EstimateImpact derives the business impact of a downtime period from the
// site's impact model. Lost units are the floor of what the line would have
// produced at its ideal rate; cost follows from lost units.
func EstimateImpact(downtimeMinutes float64, configuration datamodel.SiteConfiguration) datamodel.EstimatedImpact {
	if downtimeMinutes < 0 || math.IsNaN(downtimeMinutes) {
		downtimeMinutes = 0
	}

	unitsLost := int(math.Floor(downtimeMinutes * configuration.UnitsPerMinuteIdeal))

	return datamodel.EstimatedImpact{
		UnitsLost:  unitsLost,
		CostImpact: float64(unitsLost) * configuration.CostPerUnit,
		OEEImpact:  downtimeMinutes * configuration.OEEImpactPerMinute,
	}
}

// ### AggregateFacilityMetrics ###

// AggregateFacilityMetrics rolls the machine and alert sets up into one
// facility snapshot. Every machine weighs the same in the averages, regardless
// of its speed or order size. A line is active unless it is offline; stopped
// and maintenance lines still belong to the shift. An empty facility
// aggregates to all zeros.
func AggregateFacilityMetrics(
	machines []datamodel.MachineStatus,
	alerts []datamodel.SupervisorAlert) datamodel.FacilityMetrics {

	metrics := datamodel.FacilityMetrics{
		TotalLines:     len(machines),
		CriticalAlerts: CountCriticalAlerts(alerts),
	}
	if len(machines) == 0 {
		return metrics
	}

	oees := make([]float64, 0, len(machines))
	currentRates := make([]float64, 0, len(machines))
	targetRates := make([]float64, 0, len(machines))

	for _, machine := range machines {
		oees = append(oees, machine.OEE.Overall)
		currentRates = append(currentRates, machine.ProductionRate.Current)
		targetRates = append(targetRates, machine.ProductionRate.Target)

		if machine.Status != datamodel.MachineOffline {
			metrics.ActiveLines++
		}
		if machine.CurrentOrder != nil {
			metrics.TotalUnitsProduced += machine.CurrentOrder.Quantity
			metrics.TotalUnitsTarget += machine.CurrentOrder.TargetQuantity
		}
	}

	metrics.OverallOEE = stat.Mean(oees, nil)
	metrics.AverageLineSpeed = stat.Mean(currentRates, nil)
	metrics.TargetLineSpeed = stat.Mean(targetRates, nil)
	return metrics
}

// CountCriticalAlerts counts critical alerts that are not yet acknowledged.
func CountCriticalAlerts(alerts []datamodel.SupervisorAlert) int {
	var count int
	for _, alert := range alerts {
		if alert.Type == datamodel.AlertCritical && alert.State != datamodel.AlertAcknowledged {
			count++
		}
	}
	return count
}
