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

package repository

import (
	"time"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// Seed loads the demo facility: four production lines with their orders,
// operators, alerts and shift timelines. Timestamps are anchored to now so
// the data always looks live. Demo deployments combine this with the
// telemetry simulator; production deployments skip it entirely.
func Seed(s *Store, now time.Time) {
	seedOrdersAndMachines(s, now)
	seedOperators(s, now)
	seedAlerts(s, now)
	seedTimelines(s, now)
}

func seedOrdersAndMachines(s *Store, now time.Time) {
	orders := []datamodel.ProductionOrder{
		{
			ID:                "order-1",
			OrderNumber:       "PO-2025-001",
			ProductName:       "Widget A - Premium",
			Quantity:          1247,
			TargetQuantity:    1500,
			Priority:          datamodel.PriorityHigh,
			DueDate:           now.Add(2 * time.Hour),
			EstimatedDuration: 240,
			Status:            datamodel.OrderInProgress,
		},
		{
			ID:                "order-2",
			OrderNumber:       "PO-2025-002",
			ProductName:       "Component B - Standard",
			Quantity:          856,
			TargetQuantity:    2000,
			Priority:          datamodel.PriorityMedium,
			DueDate:           now.Add(6 * time.Hour),
			EstimatedDuration: 180,
			Status:            datamodel.OrderInProgress,
		},
		{
			ID:                "order-3",
			OrderNumber:       "PO-2025-003",
			ProductName:       "Assembly C - Custom",
			Quantity:          328,
			TargetQuantity:    500,
			Priority:          datamodel.PriorityLow,
			DueDate:           now.Add(12 * time.Hour),
			EstimatedDuration: 120,
			Status:            datamodel.OrderInProgress,
		},
		{
			ID:                "order-4",
			OrderNumber:       "PO-2025-004",
			ProductName:       "Product D - Special",
			Quantity:          1680,
			TargetQuantity:    2500,
			Priority:          datamodel.PriorityHigh,
			DueDate:           now.Add(4 * time.Hour),
			EstimatedDuration: 300,
			Status:            datamodel.OrderInProgress,
		},
		{
			ID:                "order-5",
			OrderNumber:       "PO-2025-005",
			ProductName:       "Widget A - Premium",
			Quantity:          0,
			TargetQuantity:    1500,
			Priority:          datamodel.PriorityHigh,
			DueDate:           now.Add(24 * time.Hour),
			EstimatedDuration: 240,
			Status:            datamodel.OrderAvailable,
		},
	}
	for _, order := range orders {
		s.UpsertOrder(order)
	}

	machines := []datamodel.MachineStatus{
		{
			ID:              "line-a",
			Name:            "Line A - Packaging",
			Status:          datamodel.MachineStopped,
			LastStateChange: now.Add(-18 * time.Minute),
			OEE:             datamodel.OEEMetrics{Overall: 78.5, Availability: 82.1, Performance: 85.2, Quality: 98.8},
			ProductionRate:  datamodel.ProductionRate{Current: 0, Target: 180, Unit: "units/hour"},
			CurrentOrder:    &orders[0],
		},
		{
			ID:              "line-b",
			Name:            "Line B - Assembly",
			Status:          datamodel.MachineSlow,
			LastStateChange: now.Add(-45 * time.Minute),
			OEE:             datamodel.OEEMetrics{Overall: 72.3, Availability: 95.2, Performance: 72.1, Quality: 99.5},
			ProductionRate:  datamodel.ProductionRate{Current: 108, Target: 150, Unit: "units/hour"},
			CurrentOrder:    &orders[1],
		},
		{
			ID:              "line-c",
			Name:            "Line C - Filling",
			Status:          datamodel.MachineRunning,
			LastStateChange: now.Add(-2 * time.Hour),
			OEE:             datamodel.OEEMetrics{Overall: 89.7, Availability: 96.8, Performance: 91.2, Quality: 98.1},
			ProductionRate:  datamodel.ProductionRate{Current: 164, Target: 180, Unit: "units/hour"},
			CurrentOrder:    &orders[2],
		},
		{
			ID:              "line-d",
			Name:            "Line D - Labeling",
			Status:          datamodel.MachineRunning,
			LastStateChange: now.Add(-1 * time.Hour),
			OEE:             datamodel.OEEMetrics{Overall: 85.4, Availability: 94.1, Performance: 88.7, Quality: 99.2},
			ProductionRate:  datamodel.ProductionRate{Current: 142, Target: 160, Unit: "units/hour"},
			CurrentOrder:    &orders[3],
		},
	}
	for _, machine := range machines {
		s.UpsertMachine(machine)
	}
}

func seedOperators(s *Store, now time.Time) {
	shiftStart := now.Add(-6 * time.Hour)

	operators := []datamodel.OperatorStatus{
		{
			ID: "operator1", Name: "John Smith", Status: datamodel.OperatorActive,
			AssignedMachine: "line-a", LastActivity: now.Add(-2 * time.Minute),
			ShiftStart: shiftStart, BreaksDue: 1, SkillLevel: datamodel.SkillSenior,
		},
		{
			ID: "operator2", Name: "Sarah Johnson", Status: datamodel.OperatorActive,
			AssignedMachine: "line-b", LastActivity: now.Add(-1 * time.Minute),
			ShiftStart: shiftStart, BreaksDue: 0, SkillLevel: datamodel.SkillOperator,
		},
		{
			ID: "operator3", Name: "Mike Wilson", Status: datamodel.OperatorBreak,
			AssignedMachine: "line-c", LastActivity: now.Add(-15 * time.Minute),
			ShiftStart: shiftStart, BreaksDue: 0, SkillLevel: datamodel.SkillLead,
		},
		{
			ID: "operator4", Name: "Lisa Chen", Status: datamodel.OperatorActive,
			AssignedMachine: "line-d", LastActivity: now.Add(-30 * time.Second),
			ShiftStart: shiftStart, BreaksDue: 2, SkillLevel: datamodel.SkillOperator,
		},
	}
	for _, operator := range operators {
		s.UpsertOperator(operator)
	}
}

func seedAlerts(s *Store, now time.Time) {
	alerts := []datamodel.SupervisorAlert{
		{
			Type:             datamodel.AlertCritical,
			Priority:         datamodel.PriorityHigh,
			Title:            "Extended Downtime",
			Message:          "Line A stopped for 18 minutes - No reason code entered",
			MachineID:        "line-a",
			MachineName:      "Line A - Packaging",
			Timestamp:        now.Add(-18 * time.Minute),
			State:            datamodel.AlertActive,
			AssignedOperator: "operator1",
			EstimatedImpact:  &datamodel.EstimatedImpact{UnitsLost: 54, CostImpact: 2700, OEEImpact: 3.2},
		},
		{
			Type:             datamodel.AlertWarning,
			Priority:         datamodel.PriorityMedium,
			Title:            "Slow Performance",
			Message:          "Line B running at 72% of target speed for 45 minutes",
			MachineID:        "line-b",
			MachineName:      "Line B - Assembly",
			Timestamp:        now.Add(-45 * time.Minute),
			State:            datamodel.AlertActive,
			AssignedOperator: "operator2",
			EstimatedImpact:  &datamodel.EstimatedImpact{UnitsLost: 126, CostImpact: 1890, OEEImpact: 2.1},
		},
		{
			Type:             datamodel.AlertInfo,
			Priority:         datamodel.PriorityMedium,
			Title:            "Maintenance Request",
			Message:          "Line C operator requested maintenance for conveyor belt",
			MachineID:        "line-c",
			MachineName:      "Line C - Filling",
			Timestamp:        now.Add(-5 * time.Minute),
			State:            datamodel.AlertActive,
			AssignedOperator: "operator3",
		},
		{
			Type:             datamodel.AlertWarning,
			Priority:         datamodel.PriorityHigh,
			Title:            "Target at Risk",
			Message:          "Line D behind schedule - 15% below daily target",
			MachineID:        "line-d",
			MachineName:      "Line D - Labeling",
			Timestamp:        now.Add(-30 * time.Minute),
			State:            datamodel.AlertAcknowledged,
			Acknowledged:     true,
			AssignedOperator: "operator4",
			EstimatedImpact:  &datamodel.EstimatedImpact{UnitsLost: 450, CostImpact: 6750, OEEImpact: 5.8},
		},
	}

	for _, alert := range alerts {
		alert.RequiresClassification = datamodel.RequiresDowntimeClassification(alert.Type, alert.Title, alert.Message)
		s.InsertAlert(alert)
	}
}

func seedTimelines(s *Store, now time.Time) {
	type segment struct {
		eventType datamodel.TimelineEventType
		duration  float64
		reason    string
	}

	patterns := map[string][]segment{
		"line-a": {
			{datamodel.TimelineRunning, 90, ""},
			{datamodel.TimelineBreak, 15, ""},
			{datamodel.TimelineRunning, 75, ""},
			{datamodel.TimelineStopped, 18, "Material shortage"},
			{datamodel.TimelineRunning, 45, ""},
			{datamodel.TimelineChangeover, 25, ""},
			{datamodel.TimelineRunning, 12, ""},
		},
		"line-b": {
			{datamodel.TimelineRunning, 120, ""},
			{datamodel.TimelineSlow, 45, "Performance issue"},
			{datamodel.TimelineRunning, 60, ""},
			{datamodel.TimelineBreak, 15, ""},
			{datamodel.TimelineRunning, 30, ""},
		},
		"line-c": {
			{datamodel.TimelineRunning, 180, ""},
			{datamodel.TimelineMaintenance, 20, "Scheduled PM"},
			{datamodel.TimelineRunning, 40, ""},
		},
		"line-d": {
			{datamodel.TimelineRunning, 100, ""},
			{datamodel.TimelineChangeover, 30, ""},
			{datamodel.TimelineRunning, 80, ""},
			{datamodel.TimelineStopped, 10, "Quality issue"},
			{datamodel.TimelineRunning, 20, ""},
		},
	}

	for machineID, pattern := range patterns {
		var total float64
		for _, seg := range pattern {
			total += seg.duration
		}

		// anchor the pattern so that the last segment ends now
		start := now.Add(-time.Duration(total) * time.Minute)

		events := make([]datamodel.TimelineEvent, 0, len(pattern))
		for _, seg := range pattern {
			events = append(events, datamodel.TimelineEvent{
				Type:            seg.eventType,
				Start:           start,
				DurationMinutes: seg.duration,
				Reason:          seg.reason,
			})
			start = start.Add(time.Duration(seg.duration) * time.Minute)
		}
		s.SetTimeline(machineID, events)
	}
}
