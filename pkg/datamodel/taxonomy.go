package datamodel

// The downtime reason taxonomy is a fixed three-level tree: category ->
// subcategory -> specific reason. It is immutable reference data compiled
// into the binary; nothing edits it at runtime. Lookup order is declaration
// order, which is what reason-selection UIs render.

// DowntimeReasonLevel1 is a top-level downtime category.
type DowntimeReasonLevel1 struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DowntimeReasonLevel2 is a subcategory below exactly one level-1 category.
type DowntimeReasonLevel2 struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

// DowntimeReasonLevel3 is a specific reason below exactly one level-2
// subcategory. Frequency is the historical usage count and is used to rank
// reasons in selection UIs.
type DowntimeReasonLevel3 struct {
	ID        string `json:"id"`
	ParentID  string `json:"parentId"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Frequency int    `json:"frequency"`
}

// DowntimeReasonPath is a fully or partially resolved classification path.
// Level2 and Level3 are nil when the path stops above them; a path that stops
// at level 2 is a valid classification, not an error.
type DowntimeReasonPath struct {
	Level1 DowntimeReasonLevel1  `json:"level1"`
	Level2 *DowntimeReasonLevel2 `json:"level2,omitempty"`
	Level3 *DowntimeReasonLevel3 `json:"level3,omitempty"`
}

// Level1Categories returns all top-level downtime categories in declaration order.
func Level1Categories() []DowntimeReasonLevel1 {
	categories := make([]DowntimeReasonLevel1, len(downtimeLevel1))
	copy(categories, downtimeLevel1)
	return categories
}

// Level2ChildrenOf returns the direct subcategories of a level-1 category in
// declaration order. An unknown parent yields an empty slice.
func Level2ChildrenOf(level1ID string) []DowntimeReasonLevel2 {
	var children []DowntimeReasonLevel2
	for _, subcategory := range downtimeLevel2 {
		if subcategory.ParentID == level1ID {
			children = append(children, subcategory)
		}
	}
	return children
}

// Level3ChildrenOf returns the specific reasons below a level-2 subcategory in
// declaration order. An unknown parent yields an empty slice.
func Level3ChildrenOf(level2ID string) []DowntimeReasonLevel3 {
	var children []DowntimeReasonLevel3
	for _, reason := range downtimeLevel3 {
		if reason.ParentID == level2ID {
			children = append(children, reason)
		}
	}
	return children
}

// GetLevel1 looks up a level-1 category by id.
func GetLevel1(id string) (DowntimeReasonLevel1, error) {
	for _, category := range downtimeLevel1 {
		if category.ID == id {
			return category, nil
		}
	}
	return DowntimeReasonLevel1{}, ErrNotFound
}

// GetLevel2 looks up a level-2 subcategory by id.
func GetLevel2(id string) (DowntimeReasonLevel2, error) {
	for _, subcategory := range downtimeLevel2 {
		if subcategory.ID == id {
			return subcategory, nil
		}
	}
	return DowntimeReasonLevel2{}, ErrNotFound
}

// GetLevel3 looks up a level-3 reason by id.
func GetLevel3(id string) (DowntimeReasonLevel3, error) {
	for _, reason := range downtimeLevel3 {
		if reason.ID == id {
			return reason, nil
		}
	}
	return DowntimeReasonLevel3{}, ErrNotFound
}

// ResolveDowntimePath resolves a classification path through the taxonomy.
// level2ID and level3ID may be empty for a partial path, but level3ID
// requires level2ID. Unknown ids return ErrNotFound; ids that exist but do
// not chain to the given parent return ErrInvalidParent.
func ResolveDowntimePath(level1ID, level2ID, level3ID string) (path DowntimeReasonPath, err error) {
	if level3ID != "" && level2ID == "" {
		return DowntimeReasonPath{}, ErrInvalidParent
	}

	path.Level1, err = GetLevel1(level1ID)
	if err != nil {
		return DowntimeReasonPath{}, err
	}

	if level2ID == "" {
		return path, nil
	}

	level2, err := GetLevel2(level2ID)
	if err != nil {
		return DowntimeReasonPath{}, err
	}
	if level2.ParentID != level1ID {
		return DowntimeReasonPath{}, ErrInvalidParent
	}
	path.Level2 = &level2

	if level3ID == "" {
		return path, nil
	}

	level3, err := GetLevel3(level3ID)
	if err != nil {
		return DowntimeReasonPath{}, err
	}
	if level3.ParentID != level2ID {
		return DowntimeReasonPath{}, ErrInvalidParent
	}
	path.Level3 = &level3

	return path, nil
}
