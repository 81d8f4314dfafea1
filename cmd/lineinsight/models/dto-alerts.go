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

package models

import (
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

type GetAlertRequest struct {
	AlertID string `uri:"alertId" binding:"required"`
}

// ListAlertsQuery filters the alert list. Every field is optional.
type ListAlertsQuery struct {
	Acknowledged *bool  `form:"acknowledged"`
	Type         string `form:"type"`
	Priority     string `form:"priority"`
	MachineID    string `form:"machineId"`
	Query        string `form:"q"`
}

// CreateAlertRequest is the body of POST /alerts. RequiresClassification is
// optional; producers that omit it get the legacy text heuristic.
type CreateAlertRequest struct {
	Type                   datamodel.AlertType     `json:"type" binding:"required,oneof=critical warning info"`
	Priority               datamodel.OrderPriority `json:"priority" binding:"required,oneof=high medium low"`
	Title                  string                  `json:"title" binding:"required"`
	Message                string                  `json:"message" binding:"required"`
	MachineID              string                  `json:"machineId" binding:"required"`
	AssignedOperator       string                  `json:"assignedOperator"`
	DowntimeMinutes        float64                 `json:"downtimeMinutes" binding:"omitempty,gte=0"`
	RequiresClassification *bool                   `json:"requiresClassification"`
}

// ClassificationBody is a downtime classification as sent by the dashboard.
// Level 1 and 2 are mandatory; level 3 refines when known.
type ClassificationBody struct {
	Level1ID           string `json:"level1Id" binding:"required"`
	Level2ID           string `json:"level2Id" binding:"required"`
	Level3ID           string `json:"level3Id"`
	Notes              string `json:"notes"`
	SupervisorOverride bool   `json:"supervisorOverride"`
}

// ToClassification converts the request body into the stored form.
func (b ClassificationBody) ToClassification() datamodel.SupervisorClassification {
	return datamodel.SupervisorClassification{
		Level1ID:           b.Level1ID,
		Level2ID:           b.Level2ID,
		Level3ID:           b.Level3ID,
		Notes:              b.Notes,
		SupervisorOverride: b.SupervisorOverride,
	}
}

// AcknowledgeAlertRequest optionally attaches a classification in the same
// step as the acknowledgment.
type AcknowledgeAlertRequest struct {
	Classification *ClassificationBody `json:"classification"`
}
