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
	"fmt"
	"sync"
	"time"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// Store is the in-memory state of one facility: machines, orders, operators,
// alerts and shift timelines. Reads return deep copies, so callers always work
// on snapshots; writes replace records by id under the write lock. Alert
// lifecycle transitions go through CompareAndSwapAlert only.
type Store struct {
	mu sync.RWMutex

	facilityName string

	machines   map[string]datamodel.MachineStatus
	machineIDs []string

	orders   map[string]datamodel.ProductionOrder
	orderIDs []string

	operators   map[string]datamodel.OperatorStatus
	operatorIDs []string

	alerts   map[string]datamodel.SupervisorAlert
	alertIDs []string
	alertSeq int

	timelines map[string][]datamodel.TimelineEvent
}

// NewStore creates an empty store for the given facility.
func NewStore(facilityName string) *Store {
	return &Store{
		facilityName: facilityName,
		machines:     make(map[string]datamodel.MachineStatus),
		orders:       make(map[string]datamodel.ProductionOrder),
		operators:    make(map[string]datamodel.OperatorStatus),
		alerts:       make(map[string]datamodel.SupervisorAlert),
		timelines:    make(map[string][]datamodel.TimelineEvent),
	}
}

func (s *Store) FacilityName() string {
	return s.facilityName
}

// ---------------------- machines ----------------------

// GetMachines returns snapshots of all machines in insertion order.
func (s *Store) GetMachines() []datamodel.MachineStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	machines := make([]datamodel.MachineStatus, 0, len(s.machineIDs))
	for _, id := range s.machineIDs {
		machines = append(machines, s.machines[id].Clone())
	}
	return machines
}

// GetMachine returns a snapshot of one machine.
func (s *Store) GetMachine(id string) (datamodel.MachineStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	machine, ok := s.machines[id]
	if !ok {
		return datamodel.MachineStatus{}, datamodel.ErrNotFound
	}
	return machine.Clone(), nil
}

// UpsertMachine inserts or replaces a machine record by id.
func (s *Store) UpsertMachine(machine datamodel.MachineStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.machines[machine.ID]; !ok {
		s.machineIDs = append(s.machineIDs, machine.ID)
	}
	s.machines[machine.ID] = machine.Clone()
}

// ApplyTelemetry replaces the live telemetry of one machine: state, current
// production rate and OEE components. LastStateChange only moves when the
// state actually changes.
func (s *Store) ApplyTelemetry(
	id string,
	state datamodel.MachineState,
	currentRate float64,
	oee datamodel.OEEMetrics,
	at time.Time) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	machine, ok := s.machines[id]
	if !ok {
		return datamodel.ErrNotFound
	}

	if machine.Status != state {
		machine.Status = state
		machine.LastStateChange = at
	}
	machine.ProductionRate.Current = currentRate
	machine.OEE = oee

	s.machines[id] = machine
	return nil
}

// ---------------------- orders ----------------------

// GetOrders returns snapshots of all production orders in insertion order.
func (s *Store) GetOrders() []datamodel.ProductionOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]datamodel.ProductionOrder, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		orders = append(orders, s.orders[id])
	}
	return orders
}

// GetOrder returns a snapshot of one production order.
func (s *Store) GetOrder(id string) (datamodel.ProductionOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return datamodel.ProductionOrder{}, datamodel.ErrNotFound
	}
	return order, nil
}

// UpsertOrder inserts or replaces an order record by id.
func (s *Store) UpsertOrder(order datamodel.ProductionOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		s.orderIDs = append(s.orderIDs, order.ID)
	}
	s.orders[order.ID] = order
}

// AdvanceOrderQuantity increases the produced quantity of an order. Quantity
// never decreases and is clamped at the target; reaching the target completes
// the order. The same order embedded in a machine record is advanced too.
func (s *Store) AdvanceOrderQuantity(orderID string, delta int) error {
	if delta < 0 {
		return fmt.Errorf("quantity is monotonic, cannot advance by %d", delta)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return datamodel.ErrNotFound
	}

	order.Quantity += delta
	if order.Quantity >= order.TargetQuantity {
		order.Quantity = order.TargetQuantity
		order.Status = datamodel.OrderCompleted
	}
	s.orders[orderID] = order

	for machineID, machine := range s.machines {
		if machine.CurrentOrder != nil && machine.CurrentOrder.ID == orderID {
			updated := order
			machine.CurrentOrder = &updated
			s.machines[machineID] = machine
		}
	}
	return nil
}

// ---------------------- operators ----------------------

// GetOperators returns snapshots of all operators in insertion order.
func (s *Store) GetOperators() []datamodel.OperatorStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	operators := make([]datamodel.OperatorStatus, 0, len(s.operatorIDs))
	for _, id := range s.operatorIDs {
		operators = append(operators, s.operators[id])
	}
	return operators
}

// UpsertOperator inserts or replaces an operator record by id.
func (s *Store) UpsertOperator(operator datamodel.OperatorStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.operators[operator.ID]; !ok {
		s.operatorIDs = append(s.operatorIDs, operator.ID)
	}
	s.operators[operator.ID] = operator
}

// ---------------------- timelines ----------------------

// GetTimeline returns the shift timeline of a machine, ordered by start time.
func (s *Store) GetTimeline(machineID string) ([]datamodel.TimelineEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.machines[machineID]; !ok {
		return nil, datamodel.ErrNotFound
	}

	events := make([]datamodel.TimelineEvent, len(s.timelines[machineID]))
	copy(events, s.timelines[machineID])
	return events, nil
}

// SetTimeline replaces the shift timeline of a machine.
func (s *Store) SetTimeline(machineID string, events []datamodel.TimelineEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timeline := make([]datamodel.TimelineEvent, len(events))
	copy(timeline, events)
	s.timelines[machineID] = timeline
}

// ---------------------- alerts ----------------------

// GetAlerts returns snapshots of all alerts in insertion order.
func (s *Store) GetAlerts() []datamodel.SupervisorAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alerts := make([]datamodel.SupervisorAlert, 0, len(s.alertIDs))
	for _, id := range s.alertIDs {
		alerts = append(alerts, s.alerts[id].Clone())
	}
	return alerts
}

// GetAlert returns a snapshot of one alert.
func (s *Store) GetAlert(id string) (datamodel.SupervisorAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alert, ok := s.alerts[id]
	if !ok {
		return datamodel.SupervisorAlert{}, datamodel.ErrNotFound
	}
	return alert.Clone(), nil
}

// InsertAlert stores a new alert, assigning an id when none is set, and
// returns the stored snapshot.
func (s *Store) InsertAlert(alert datamodel.SupervisorAlert) datamodel.SupervisorAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	if alert.ID == "" {
		s.alertSeq++
		alert.ID = fmt.Sprintf("alert-%d", s.alertSeq)
	}
	if _, ok := s.alerts[alert.ID]; !ok {
		s.alertIDs = append(s.alertIDs, alert.ID)
	}
	s.alerts[alert.ID] = alert.Clone()
	return alert.Clone()
}

// CompareAndSwapAlert applies a lifecycle transition to an alert if and only
// if its state still equals expectedState. A transition attempted on a
// terminal alert returns ErrAlreadyAcknowledged; any other lost race returns
// ErrConcurrentModification, never a silent overwrite.
func (s *Store) CompareAndSwapAlert(
	id string,
	expectedState datamodel.AlertState,
	apply func(*datamodel.SupervisorAlert)) (datamodel.SupervisorAlert, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.alerts[id]
	if !ok {
		return datamodel.SupervisorAlert{}, datamodel.ErrNotFound
	}

	if alert.State != expectedState {
		if alert.State == datamodel.AlertAcknowledged {
			return datamodel.SupervisorAlert{}, datamodel.ErrAlreadyAcknowledged
		}
		return datamodel.SupervisorAlert{}, datamodel.ErrConcurrentModification
	}

	updated := alert.Clone()
	apply(&updated)
	s.alerts[id] = updated.Clone()
	return updated.Clone(), nil
}
