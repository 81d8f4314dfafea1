package services

import (
	"errors"
	"testing"
	"time"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/repository"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func setupTestFacility(t *testing.T) *repository.Store {
	t.Helper()

	testStore := repository.NewStore("test-facility")
	testStore.UpsertMachine(datamodel.MachineStatus{
		ID:             "line-x",
		Name:           "Line X - Test",
		Status:         datamodel.MachineRunning,
		ProductionRate: datamodel.ProductionRate{Current: 100, Target: 120, Unit: "units/hour"},
	})

	Init(testStore, datamodel.DefaultSiteConfiguration())
	now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	return testStore
}

func TestCreateAlert(t *testing.T) {
	setupTestFacility(t)

	alert, err := CreateAlert(CreateAlertInput{
		Type:            datamodel.AlertCritical,
		Priority:        datamodel.PriorityHigh,
		Title:           "Extended Downtime",
		Message:         "Line X stopped for 12 minutes",
		MachineID:       "line-x",
		DowntimeMinutes: 12,
	})
	if err != nil {
		t.Errorf("error detected %v", err)
	}

	if alert.ID == "" {
		t.Errorf("created alert must get an id")
	}
	if alert.State != datamodel.AlertActive || alert.Acknowledged {
		t.Errorf("created alert must start active, got %+v", alert)
	}
	if alert.MachineName != "Line X - Test" {
		t.Errorf("machine name not resolved: %v", alert.MachineName)
	}
	// critical + "stopped" triggers the legacy heuristic
	if !alert.RequiresClassification {
		t.Errorf("critical stoppage alert must require classification")
	}
	if alert.EstimatedImpact == nil || alert.EstimatedImpact.UnitsLost != 36 {
		t.Errorf("wrong impact estimate: %+v", alert.EstimatedImpact)
	}
}

func TestCreateAlertExplicitFlagWinsOverHeuristic(t *testing.T) {
	setupTestFacility(t)

	explicit := false
	alert, err := CreateAlert(CreateAlertInput{
		Type:                   datamodel.AlertCritical,
		Priority:               datamodel.PriorityHigh,
		Title:                  "Extended Downtime",
		Message:                "Line X stopped for 12 minutes",
		MachineID:              "line-x",
		RequiresClassification: &explicit,
	})
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if alert.RequiresClassification {
		t.Errorf("explicit flag must win over the text heuristic")
	}
}

func TestCreateAlertUnknownMachine(t *testing.T) {
	setupTestFacility(t)

	_, err := CreateAlert(CreateAlertInput{
		Type:      datamodel.AlertInfo,
		Priority:  datamodel.PriorityLow,
		Title:     "Test",
		Message:   "Test",
		MachineID: "no-such-line",
	})
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown machine, got %v", err)
	}
}

func mustCreateTestAlert(t *testing.T, requires bool) datamodel.SupervisorAlert {
	t.Helper()

	alert, err := CreateAlert(CreateAlertInput{
		Type:                   datamodel.AlertCritical,
		Priority:               datamodel.PriorityHigh,
		Title:                  "Extended Downtime",
		Message:                "Line X stopped",
		MachineID:              "line-x",
		RequiresClassification: &requires,
	})
	if err != nil {
		t.Fatalf("cannot create test alert: %v", err)
	}
	return alert
}

func TestClassifyThenAcknowledge(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, true)

	classified, err := ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "mechanical",
		Level2ID: "mech-drive",
		Level3ID: "mech-drive-motor",
		Notes:    "motor tripped twice this shift",
	})
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if classified.State != datamodel.AlertClassified {
		t.Errorf("wrong state after classify: %v", classified.State)
	}
	if classified.SupervisorClassification == nil ||
		classified.SupervisorClassification.Level3ID != "mech-drive-motor" {
		t.Errorf("classification not stored: %+v", classified.SupervisorClassification)
	}

	acknowledged, err := AcknowledgeAlert(alert.ID, nil)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if acknowledged.State != datamodel.AlertAcknowledged || !acknowledged.Acknowledged {
		t.Errorf("wrong state after acknowledge: %+v", acknowledged)
	}
	// the classification attached before acknowledgment stays frozen
	if acknowledged.SupervisorClassification == nil ||
		acknowledged.SupervisorClassification.Level2ID != "mech-drive" {
		t.Errorf("classification lost on acknowledge: %+v", acknowledged.SupervisorClassification)
	}
}

func TestReclassifyBeforeAcknowledge(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, true)

	if _, err := ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "mechanical", Level2ID: "mech-drive",
	}); err != nil {
		t.Errorf("error detected %v", err)
	}

	// a second classification replaces the first while not acknowledged
	reclassified, err := ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "material", Level2ID: "mat-shortage",
	})
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if reclassified.SupervisorClassification.Level1ID != "material" {
		t.Errorf("reclassification did not replace: %+v", reclassified.SupervisorClassification)
	}
}

func TestClassifyAfterAcknowledgeRejected(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, false)

	if _, err := AcknowledgeAlert(alert.ID, nil); err != nil {
		t.Errorf("error detected %v", err)
	}

	_, err := ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "mechanical", Level2ID: "mech-drive",
	})
	if !errors.Is(err, datamodel.ErrAlreadyAcknowledged) {
		t.Errorf("no ErrAlreadyAcknowledged for classify after acknowledge, got %v", err)
	}
}

func TestAcknowledgeTwiceRejected(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, false)

	if _, err := AcknowledgeAlert(alert.ID, nil); err != nil {
		t.Errorf("error detected %v", err)
	}

	_, err := AcknowledgeAlert(alert.ID, nil)
	if !errors.Is(err, datamodel.ErrAlreadyAcknowledged) {
		t.Errorf("no ErrAlreadyAcknowledged for double acknowledge, got %v", err)
	}
}

func TestAcknowledgeRequiresClassification(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, true)

	_, err := AcknowledgeAlert(alert.ID, nil)
	if !errors.Is(err, ErrClassificationRequired) {
		t.Errorf("no ErrClassificationRequired, got %v", err)
	}

	// attaching the classification in the same step works
	acknowledged, err := AcknowledgeAlert(alert.ID, &datamodel.SupervisorClassification{
		Level1ID: "mechanical", Level2ID: "mech-drive",
	})
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if acknowledged.State != datamodel.AlertAcknowledged {
		t.Errorf("wrong state: %v", acknowledged.State)
	}
}

func TestAcknowledgeWithoutClassificationStaysSimple(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, false)

	acknowledged, err := AcknowledgeAlert(alert.ID, nil)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	// simple acknowledgment is first-class: no classification is attached
	if acknowledged.SupervisorClassification != nil {
		t.Errorf("simple acknowledgment must not attach a classification: %+v",
			acknowledged.SupervisorClassification)
	}
}

func TestClassifyInvalidPath(t *testing.T) {
	setupTestFacility(t)
	alert := mustCreateTestAlert(t, true)

	// level 2 under the wrong level 1
	_, err := ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "electrical", Level2ID: "mech-drive",
	})
	if !errors.Is(err, datamodel.ErrInvalidParent) {
		t.Errorf("no ErrInvalidParent for broken chain, got %v", err)
	}

	// unknown level 2
	_, err = ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "mechanical", Level2ID: "no-such-subcategory",
	})
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown subcategory, got %v", err)
	}

	// classification must reach level 2
	_, err = ClassifyAlert(alert.ID, datamodel.SupervisorClassification{
		Level1ID: "mechanical",
	})
	if !errors.Is(err, datamodel.ErrInvalidParent) {
		t.Errorf("no ErrInvalidParent for level-1-only classification, got %v", err)
	}
}

func TestListAlertsFilter(t *testing.T) {
	setupTestFacility(t)

	first := mustCreateTestAlert(t, false)
	if _, err := CreateAlert(CreateAlertInput{
		Type:      datamodel.AlertWarning,
		Priority:  datamodel.PriorityMedium,
		Title:     "Slow Performance",
		Message:   "Line X below target",
		MachineID: "line-x",
	}); err != nil {
		t.Fatalf("cannot create test alert: %v", err)
	}
	if _, err := AcknowledgeAlert(first.ID, nil); err != nil {
		t.Fatalf("cannot acknowledge test alert: %v", err)
	}

	if got := len(ListAlerts(AlertFilter{})); got != 2 {
		t.Errorf("empty filter must return everything, got %d", got)
	}

	open := false
	if got := len(ListAlerts(AlertFilter{Acknowledged: &open})); got != 1 {
		t.Errorf("wrong open alert count: %d", got)
	}

	if got := len(ListAlerts(AlertFilter{Type: datamodel.AlertWarning})); got != 1 {
		t.Errorf("wrong warning count: %d", got)
	}

	if got := len(ListAlerts(AlertFilter{Query: "slow perf"})); got != 1 {
		t.Errorf("free-text filter failed: %d", got)
	}

	if got := len(ListAlerts(AlertFilter{MachineID: "line-y"})); got != 0 {
		t.Errorf("unknown machine must match nothing: %d", got)
	}
}
