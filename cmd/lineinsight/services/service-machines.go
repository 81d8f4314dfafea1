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
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// GetMachines returns snapshots of all production lines.
func GetMachines() []datamodel.MachineStatus {
	return store.GetMachines()
}

// GetMachine returns a snapshot of one production line.
func GetMachine(machineID string) (datamodel.MachineStatus, error) {
	return store.GetMachine(machineID)
}

// GetMachineTimeline returns the shift timeline of one production line.
func GetMachineTimeline(machineID string) ([]datamodel.TimelineEvent, error) {
	return store.GetTimeline(machineID)
}

// GetOrders returns all production orders of the facility.
func GetOrders() []datamodel.ProductionOrder {
	return store.GetOrders()
}

// GetOrder returns one production order.
func GetOrder(orderID string) (datamodel.ProductionOrder, error) {
	return store.GetOrder(orderID)
}

// GetOperators returns all line operators of the facility.
func GetOperators() []datamodel.OperatorStatus {
	return store.GetOperators()
}
