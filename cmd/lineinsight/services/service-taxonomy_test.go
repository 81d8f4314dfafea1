package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func TestGetDowntimeReasonsRanking(t *testing.T) {
	// declaration order by default
	reasons, err := GetDowntimeReasons("mechanical", "mech-drive", false)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if len(reasons) == 0 {
		t.Fatalf("no reasons returned")
	}
	if reasons[0].ID != "mech-drive-motor" {
		t.Errorf("declaration order broken, first reason: %v", reasons[0].ID)
	}

	// most-used first when ranked
	ranked, err := GetDowntimeReasons("mechanical", "mech-drive", true)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if !sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	}) {
		t.Errorf("ranked reasons not sorted by frequency: %v", ranked)
	}
	if ranked[0].ID != "mech-drive-overload" { // frequency 20 is the highest
		t.Errorf("wrong top-ranked reason: %v", ranked[0].ID)
	}

	// ranking must not disturb the following unranked call
	again, err := GetDowntimeReasons("mechanical", "mech-drive", false)
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	if again[0].ID != "mech-drive-motor" {
		t.Errorf("ranking mutated the underlying table, first reason: %v", again[0].ID)
	}
}

func TestGetDowntimeReasonsBrokenChain(t *testing.T) {
	_, err := GetDowntimeReasons("electrical", "mech-drive", false)
	if !errors.Is(err, datamodel.ErrInvalidParent) {
		t.Errorf("no ErrInvalidParent for subcategory under wrong category, got %v", err)
	}

	_, err = GetDowntimeReasons("no-such-category", "mech-drive", false)
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown category, got %v", err)
	}
}

func TestGetDowntimeSubcategories(t *testing.T) {
	subcategories, err := GetDowntimeSubcategories("mechanical")
	if err != nil {
		t.Errorf("error detected %v", err)
	}
	for _, subcategory := range subcategories {
		if subcategory.ParentID != "mechanical" {
			t.Errorf("foreign subcategory in result: %+v", subcategory)
		}
	}

	_, err = GetDowntimeSubcategories("no-such-category")
	if !errors.Is(err, datamodel.ErrNotFound) {
		t.Errorf("no ErrNotFound for unknown category, got %v", err)
	}
}
