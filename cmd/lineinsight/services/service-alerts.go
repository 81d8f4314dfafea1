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
	"errors"
	"strings"

	"github.com/lineinsight/lineinsight/internal"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// ErrClassificationRequired rejects a simple acknowledgment of an alert whose
// RequiresClassification flag is set and which has no classification yet.
var ErrClassificationRequired = errors.New("alert requires a downtime classification before acknowledgment")

// AlertFilter selects a subset of the facility's alerts. Zero-valued fields
// do not filter; Query matches title, message and machine name case-insensitively.
type AlertFilter struct {
	Acknowledged *bool
	Type         datamodel.AlertType
	Priority     datamodel.OrderPriority
	MachineID    string
	Query        string
}

func (f AlertFilter) matches(alert datamodel.SupervisorAlert) bool {
	if f.Acknowledged != nil && alert.Acknowledged != *f.Acknowledged {
		return false
	}
	if f.Type != "" && alert.Type != f.Type {
		return false
	}
	if f.Priority != "" && alert.Priority != f.Priority {
		return false
	}
	if f.MachineID != "" && alert.MachineID != f.MachineID {
		return false
	}
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(alert.Title), query) &&
			!strings.Contains(strings.ToLower(alert.Message), query) &&
			!strings.Contains(strings.ToLower(alert.MachineName), query) {
			return false
		}
	}
	return true
}

// GetAlert returns a snapshot of one alert.
func GetAlert(alertID string) (datamodel.SupervisorAlert, error) {
	return store.GetAlert(alertID)
}

// ListAlerts returns the facility's alerts matching the filter, in insertion order.
func ListAlerts(filter AlertFilter) []datamodel.SupervisorAlert {
	alerts := store.GetAlerts()
	filtered := make([]datamodel.SupervisorAlert, 0, len(alerts))
	for _, alert := range alerts {
		if filter.matches(alert) {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}

// CreateAlertInput carries everything a producer may set on a new alert.
// RequiresClassification is explicit; producers that leave it nil get the
// legacy text heuristic applied once, at creation.
type CreateAlertInput struct {
	Type                   datamodel.AlertType
	Priority               datamodel.OrderPriority
	Title                  string
	Message                string
	MachineID              string
	AssignedOperator       string
	DowntimeMinutes        float64
	RequiresClassification *bool
}

// CreateAlert builds and stores a new active alert. The machine must exist;
// a positive downtime duration attaches an impact estimate from the site's
// impact model.
func CreateAlert(input CreateAlertInput) (datamodel.SupervisorAlert, error) {
	machine, err := store.GetMachine(input.MachineID)
	if err != nil {
		return datamodel.SupervisorAlert{}, err
	}

	alert := datamodel.SupervisorAlert{
		Type:             input.Type,
		Priority:         input.Priority,
		Title:            input.Title,
		Message:          input.Message,
		MachineID:        machine.ID,
		MachineName:      machine.Name,
		Timestamp:        now(),
		State:            datamodel.AlertActive,
		AssignedOperator: input.AssignedOperator,
	}

	if input.RequiresClassification != nil {
		alert.RequiresClassification = *input.RequiresClassification
	} else {
		alert.RequiresClassification = datamodel.RequiresDowntimeClassification(
			input.Type, input.Title, input.Message)
	}

	if input.DowntimeMinutes > 0 {
		impact := EstimateImpact(input.DowntimeMinutes, siteConfiguration)
		alert.EstimatedImpact = &impact
	}

	internal.AlertTransitionsTotal.WithLabelValues("create", "ok").Inc()
	return store.InsertAlert(alert), nil
}

// ClassifyAlert attaches a downtime classification to an alert and moves it to
// the classified state. The path is validated against the taxonomy first.
// Classifying may happen repeatedly while the alert is not acknowledged; the
// last classification wins. An acknowledged alert rejects with
// ErrAlreadyAcknowledged.
func ClassifyAlert(alertID string, classification datamodel.SupervisorClassification) (datamodel.SupervisorAlert, error) {
	if _, err := ResolveClassification(classification); err != nil {
		internal.AlertTransitionsTotal.WithLabelValues("classify", "rejected").Inc()
		return datamodel.SupervisorAlert{}, err
	}

	snapshot, err := store.GetAlert(alertID)
	if err != nil {
		internal.AlertTransitionsTotal.WithLabelValues("classify", "rejected").Inc()
		return datamodel.SupervisorAlert{}, err
	}
	if snapshot.State == datamodel.AlertAcknowledged {
		internal.AlertTransitionsTotal.WithLabelValues("classify", "rejected").Inc()
		return datamodel.SupervisorAlert{}, datamodel.ErrAlreadyAcknowledged
	}

	updated, err := store.CompareAndSwapAlert(alertID, snapshot.State,
		func(alert *datamodel.SupervisorAlert) {
			stored := classification
			alert.SupervisorClassification = &stored
			alert.State = datamodel.AlertClassified
		})
	if err != nil {
		internal.AlertTransitionsTotal.WithLabelValues("classify", "conflict").Inc()
		return datamodel.SupervisorAlert{}, err
	}

	internal.AlertTransitionsTotal.WithLabelValues("classify", "ok").Inc()
	return updated, nil
}

// AcknowledgeAlert moves an alert to its terminal state. A classification may
// be attached in the same step; one already attached is frozen as-is. An alert
// flagged as requiring classification cannot be acknowledged without one.
// Acknowledging twice returns ErrAlreadyAcknowledged.
func AcknowledgeAlert(alertID string, classification *datamodel.SupervisorClassification) (datamodel.SupervisorAlert, error) {
	if classification != nil {
		if _, err := ResolveClassification(*classification); err != nil {
			internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "rejected").Inc()
			return datamodel.SupervisorAlert{}, err
		}
	}

	snapshot, err := store.GetAlert(alertID)
	if err != nil {
		internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "rejected").Inc()
		return datamodel.SupervisorAlert{}, err
	}
	if snapshot.State == datamodel.AlertAcknowledged {
		internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "rejected").Inc()
		return datamodel.SupervisorAlert{}, datamodel.ErrAlreadyAcknowledged
	}

	if snapshot.RequiresClassification &&
		classification == nil &&
		snapshot.SupervisorClassification == nil {
		internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "rejected").Inc()
		return datamodel.SupervisorAlert{}, ErrClassificationRequired
	}

	updated, err := store.CompareAndSwapAlert(alertID, snapshot.State,
		func(alert *datamodel.SupervisorAlert) {
			if classification != nil {
				stored := *classification
				alert.SupervisorClassification = &stored
			}
			alert.State = datamodel.AlertAcknowledged
			alert.Acknowledged = true
		})
	if err != nil {
		internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "conflict").Inc()
		return datamodel.SupervisorAlert{}, err
	}

	internal.AlertTransitionsTotal.WithLabelValues("acknowledge", "ok").Inc()
	return updated, nil
}
