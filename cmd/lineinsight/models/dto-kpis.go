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

// KPIs served per machine.
const (
	OeeKpi           string = "oee"
	AvailabilityKpi  string = "availability"
	PerformanceKpi   string = "performance"
	QualityKpi       string = "quality"
	RemainingTimeKpi string = "remainingTime"
)

// MachineKpis lists the KPIs every machine serves, in display order.
var MachineKpis = []string{
	OeeKpi,
	AvailabilityKpi,
	PerformanceKpi,
	QualityKpi,
	RemainingTimeKpi,
}

type GetKpisRequest struct {
	MachineID string `uri:"machineId" binding:"required"`
}

type GetKpiDataRequest struct {
	MachineID string `uri:"machineId" binding:"required"`
	Kpi       string `uri:"kpi" binding:"required"`
}

type GetKpisResponse struct {
	Kpis []string `json:"kpis"`
}
