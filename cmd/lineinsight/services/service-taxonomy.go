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
	"sort"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// GetDowntimeCategories returns the top-level downtime categories in
// declaration order.
func GetDowntimeCategories() []datamodel.DowntimeReasonLevel1 {
	return datamodel.Level1Categories()
}

// GetDowntimeSubcategories returns the subcategories below one category.
func GetDowntimeSubcategories(level1ID string) ([]datamodel.DowntimeReasonLevel2, error) {
	if _, err := datamodel.GetLevel1(level1ID); err != nil {
		return nil, err
	}
	return datamodel.Level2ChildrenOf(level1ID), nil
}

// GetDowntimeReasons returns the specific reasons below one subcategory. The
// chain category -> subcategory is validated first. With rankByFrequency the
// reasons come most-used first; otherwise in declaration order.
func GetDowntimeReasons(level1ID string, level2ID string, rankByFrequency bool) ([]datamodel.DowntimeReasonLevel3, error) {
	if _, err := datamodel.ResolveDowntimePath(level1ID, level2ID, ""); err != nil {
		return nil, err
	}

	reasons := datamodel.Level3ChildrenOf(level2ID)
	if rankByFrequency {
		sort.SliceStable(reasons, func(i, j int) bool {
			return reasons[i].Frequency > reasons[j].Frequency
		})
	}
	return reasons, nil
}

// ResolveClassification validates a supervisor classification against the
// taxonomy and returns the resolved path. A classification must reach at least
// level 2; level 3 stays optional.
func ResolveClassification(classification datamodel.SupervisorClassification) (datamodel.DowntimeReasonPath, error) {
	if classification.Level2ID == "" {
		return datamodel.DowntimeReasonPath{}, datamodel.ErrInvalidParent
	}
	return datamodel.ResolveDowntimePath(
		classification.Level1ID,
		classification.Level2ID,
		classification.Level3ID)
}
