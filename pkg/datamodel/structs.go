package datamodel

import (
	"time"
)

// OrderPriority is the scheduling priority of a production order.
type OrderPriority string

const (
	PriorityHigh   OrderPriority = "high"
	PriorityMedium OrderPriority = "medium"
	PriorityLow    OrderPriority = "low"
)

// OrderStatus is the lifecycle status of a production order.
type OrderStatus string

const (
	OrderAvailable  OrderStatus = "available"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderPaused     OrderStatus = "paused"
)

// MachineState is the current operating state of a production line.
type MachineState string

const (
	MachineRunning     MachineState = "running"
	MachineStopped     MachineState = "stopped"
	MachineSlow        MachineState = "slow"
	MachineMaintenance MachineState = "maintenance"
	MachineOffline     MachineState = "offline"
)

// TimelineEventType classifies a segment of a shift timeline.
type TimelineEventType string

const (
	TimelineRunning     TimelineEventType = "running"
	TimelineSlow        TimelineEventType = "slow"
	TimelineStopped     TimelineEventType = "stopped"
	TimelineChangeover  TimelineEventType = "changeover"
	TimelineBreak       TimelineEventType = "break"
	TimelineMaintenance TimelineEventType = "maintenance"
)

// AlertType is the severity class of a supervisor alert.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// AlertState is the lifecycle state of a supervisor alert.
// Transitions: Active -> Classified -> Acknowledged. Acknowledged is terminal.
type AlertState string

const (
	AlertActive       AlertState = "active"
	AlertClassified   AlertState = "classified"
	AlertAcknowledged AlertState = "acknowledged"
)

// OperatorState is the current status of a line operator.
type OperatorState string

const (
	OperatorActive   OperatorState = "active"
	OperatorBreak    OperatorState = "break"
	OperatorTraining OperatorState = "training"
	OperatorAbsent   OperatorState = "absent"
	OperatorOffline  OperatorState = "offline"
)

// SkillLevel is the qualification level of a line operator.
type SkillLevel string

const (
	SkillTrainee  SkillLevel = "trainee"
	SkillOperator SkillLevel = "operator"
	SkillSenior   SkillLevel = "senior"
	SkillLead     SkillLevel = "lead"
)

// ProductionOrder is one order on a production line. Quantity is the number
// of units produced so far and is monotonically non-decreasing while the
// order is in progress; TargetQuantity is fixed at order creation.
type ProductionOrder struct {
	ID                string        `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	ProductName       string        `json:"productName"`
	Quantity          int           `json:"quantity"`
	TargetQuantity    int           `json:"targetQuantity"`
	Priority          OrderPriority `json:"priority"`
	DueDate           time.Time     `json:"dueDate"`
	EstimatedDuration int           `json:"estimatedDuration"` // minutes
	Status            OrderStatus   `json:"status"`
}

// OEEMetrics contains the OEE components of a machine, each a percentage in [0,100]
type OEEMetrics struct {
	Overall      float64 `json:"overall"`
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
}

// ProductionRate is the current vs. target output rate of a machine
type ProductionRate struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// MachineStatus is a snapshot of one production line
type MachineStatus struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          MachineState     `json:"status"`
	CurrentOrder    *ProductionOrder `json:"currentOrder,omitempty"`
	LastStateChange time.Time        `json:"lastStateChange"`
	OEE             OEEMetrics       `json:"oee"`
	ProductionRate  ProductionRate   `json:"productionRate"`
}

// Clone returns a deep copy, so that snapshot readers can never mutate the store
func (m MachineStatus) Clone() MachineStatus {
	clone := m
	if m.CurrentOrder != nil {
		order := *m.CurrentOrder
		clone.CurrentOrder = &order
	}
	return clone
}

// TimelineEvent is one segment of a shift timeline. A sequence of these,
// ordered by Start and non-overlapping, partitions the shift.
type TimelineEvent struct {
	Type            TimelineEventType `json:"type"`
	Start           time.Time         `json:"start"`
	DurationMinutes float64           `json:"durationMinutes"`
	Reason          string            `json:"reason,omitempty"`
}

// EstimatedImpact is the estimated business impact of a downtime event
type EstimatedImpact struct {
	UnitsLost  int     `json:"unitsLost"`
	CostImpact float64 `json:"costImpact"`
	OEEImpact  float64 `json:"oeeImpact"` // percentage points
}

// SupervisorClassification is the downtime reason a supervisor attached to an
// alert. Level3ID may be empty: a classification that stops at level 2 is valid.
type SupervisorClassification struct {
	Level1ID           string `json:"level1Id"`
	Level2ID           string `json:"level2Id"`
	Level3ID           string `json:"level3Id,omitempty"`
	Notes              string `json:"notes,omitempty"`
	SupervisorOverride bool   `json:"supervisorOverride"`
}

// SupervisorAlert is one alert shown on the supervisor dashboard.
// RequiresClassification is set once at creation time; message text never
// drives the lifecycle afterwards.
type SupervisorAlert struct {
	ID                       string                    `json:"id"`
	Type                     AlertType                 `json:"type"`
	Priority                 OrderPriority             `json:"priority"`
	Title                    string                    `json:"title"`
	Message                  string                    `json:"message"`
	MachineID                string                    `json:"machineId"`
	MachineName              string                    `json:"machineName"`
	Timestamp                time.Time                 `json:"timestamp"`
	State                    AlertState                `json:"state"`
	Acknowledged             bool                      `json:"acknowledged"`
	RequiresClassification   bool                      `json:"requiresClassification"`
	AssignedOperator         string                    `json:"assignedOperator,omitempty"`
	EstimatedImpact          *EstimatedImpact          `json:"estimatedImpact,omitempty"`
	SupervisorClassification *SupervisorClassification `json:"supervisorClassification,omitempty"`
}

// Clone returns a deep copy of the alert
func (a SupervisorAlert) Clone() SupervisorAlert {
	clone := a
	if a.EstimatedImpact != nil {
		impact := *a.EstimatedImpact
		clone.EstimatedImpact = &impact
	}
	if a.SupervisorClassification != nil {
		classification := *a.SupervisorClassification
		clone.SupervisorClassification = &classification
	}
	return clone
}

// OperatorStatus is a snapshot of one line operator
type OperatorStatus struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          OperatorState `json:"status"`
	AssignedMachine string        `json:"assignedMachine,omitempty"`
	LastActivity    time.Time     `json:"lastActivity"`
	ShiftStart      time.Time     `json:"shiftStart"`
	BreaksDue       int           `json:"breaksDue"`
	SkillLevel      SkillLevel    `json:"skillLevel"`
}

// FacilityMetrics is a derived facility-wide rollup. It is always recomputed
// from the machine and alert sets, never mutated independently.
type FacilityMetrics struct {
	OverallOEE         float64 `json:"overallOEE"`
	TotalUnitsProduced int     `json:"totalUnitsProduced"`
	TotalUnitsTarget   int     `json:"totalUnitsTarget"`
	ActiveLines        int     `json:"activeLines"`
	TotalLines         int     `json:"totalLines"`
	CriticalAlerts     int     `json:"criticalAlerts"`
	AverageLineSpeed   float64 `json:"averageLineSpeed"`
	TargetLineSpeed    float64 `json:"targetLineSpeed"`
}

// OEEClass is the rating of an overall OEE value against the site targets.
type OEEClass string

const (
	OEEExcellent OEEClass = "excellent"
	OEEGood      OEEClass = "good"
	OEEPoor      OEEClass = "poor"
)

// DataResponseAny is the format of the returned JSON for KPI endpoints.
type DataResponseAny struct {
	ColumnNames []string        `json:"columnNames"`
	Datapoints  [][]interface{} `json:"datapoints"`
}
