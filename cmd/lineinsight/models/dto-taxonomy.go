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

type GetSubcategoriesRequest struct {
	Level1ID string `uri:"level1Id" binding:"required"`
}

type GetReasonsRequest struct {
	Level1ID string `uri:"level1Id" binding:"required"`
	Level2ID string `uri:"level2Id" binding:"required"`
}

type GetReasonsQuery struct {
	// rank the reasons most-used first instead of declaration order
	RankByFrequency bool `form:"rankByFrequency"`
}
