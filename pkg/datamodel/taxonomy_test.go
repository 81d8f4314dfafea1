package datamodel

import (
	"errors"
	"testing"
)

func TestTaxonomyReferentialIntegrity(t *testing.T) {
	level1Ids := make(map[string]bool)
	for _, category := range downtimeLevel1 {
		if level1Ids[category.ID] {
			t.Errorf("duplicate level-1 id %s", category.ID)
		}
		level1Ids[category.ID] = true
	}

	level2Ids := make(map[string]bool)
	for _, subcategory := range downtimeLevel2 {
		if level2Ids[subcategory.ID] {
			t.Errorf("duplicate level-2 id %s", subcategory.ID)
		}
		level2Ids[subcategory.ID] = true
		if !level1Ids[subcategory.ParentID] {
			t.Errorf("level-2 %s references unknown parent %s", subcategory.ID, subcategory.ParentID)
		}
	}

	level3Ids := make(map[string]bool)
	for _, reason := range downtimeLevel3 {
		if level3Ids[reason.ID] {
			t.Errorf("duplicate level-3 id %s", reason.ID)
		}
		level3Ids[reason.ID] = true
		if !level2Ids[reason.ParentID] {
			t.Errorf("level-3 %s references unknown parent %s", reason.ID, reason.ParentID)
		}
	}
}

func TestResolveDowntimePathAllLevel3(t *testing.T) {
	// every declared level-3 reason must resolve through its declared chain
	for _, reason := range downtimeLevel3 {
		level2, err := GetLevel2(reason.ParentID)
		if err != nil {
			t.Fatalf("level-2 %s not found", reason.ParentID)
		}

		path, err := ResolveDowntimePath(level2.ParentID, level2.ID, reason.ID)
		if err != nil {
			t.Errorf("resolve failed for %s: %v", reason.ID, err)
			continue
		}
		if path.Level1.ID != level2.ParentID || path.Level2 == nil || path.Level3 == nil {
			t.Errorf("incomplete path for %s", reason.ID)
			continue
		}
		if path.Level3.Name != reason.Name {
			t.Errorf("wrong level-3 name for %s: %s", reason.ID, path.Level3.Name)
		}
	}
}

func TestResolveDowntimePathPartial(t *testing.T) {
	// a classification may legitimately stop at level 2
	path, err := ResolveDowntimePath("mechanical", "mech-drive", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Level2 == nil || path.Level2.Name != "Drive System" {
		t.Errorf("wrong level-2: %+v", path.Level2)
	}
	if path.Level3 != nil {
		t.Errorf("level-3 should be nil for a partial path")
	}

	// level 1 only
	path, err = ResolveDowntimePath("material", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Level1.Name != "Material" || path.Level2 != nil || path.Level3 != nil {
		t.Errorf("wrong partial path: %+v", path)
	}
}

func TestResolveDowntimePathErrors(t *testing.T) {
	_, err := ResolveDowntimePath("does-not-exist", "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = ResolveDowntimePath("mechanical", "mat-shortage", "")
	if !errors.Is(err, ErrInvalidParent) {
		t.Errorf("expected ErrInvalidParent for mismatched level-2, got %v", err)
	}

	// level-3 exists but is paired with the wrong level-2 parent
	_, err = ResolveDowntimePath("operator", "op-break", "mech-drive-motor")
	if !errors.Is(err, ErrInvalidParent) {
		t.Errorf("expected ErrInvalidParent for mismatched level-3, got %v", err)
	}

	// level-3 without level-2 is not resolvable
	_, err = ResolveDowntimePath("mechanical", "", "mech-drive-motor")
	if !errors.Is(err, ErrInvalidParent) {
		t.Errorf("expected ErrInvalidParent for level-3 without level-2, got %v", err)
	}
}

func TestLevel2ChildrenOfDeclarationOrder(t *testing.T) {
	children := Level2ChildrenOf("mechanical")
	if len(children) != 9 {
		t.Fatalf("expected 9 mechanical subcategories, got %d", len(children))
	}
	if children[0].ID != "mech-drive" || children[8].ID != "mech-other" {
		t.Errorf("declaration order not preserved: first %s last %s", children[0].ID, children[8].ID)
	}

	if got := Level2ChildrenOf("does-not-exist"); len(got) != 0 {
		t.Errorf("unknown parent should yield no children, got %d", len(got))
	}
}
