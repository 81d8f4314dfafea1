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

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/helpers"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/models"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/services"
)

// GetDowntimeCategoriesHandler serves the top level of the downtime taxonomy.
func GetDowntimeCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetDowntimeCategories())
}

// GetDowntimeSubcategoriesHandler serves the subcategories of one category.
func GetDowntimeSubcategoriesHandler(c *gin.Context) {
	var request models.GetSubcategoriesRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	subcategories, err := services.GetDowntimeSubcategories(request.Level1ID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

// GetDowntimeReasonsHandler serves the specific reasons below one subcategory,
// optionally ranked most-used first.
func GetDowntimeReasonsHandler(c *gin.Context) {
	var request models.GetReasonsRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}
	var query models.GetReasonsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	reasons, err := services.GetDowntimeReasons(request.Level1ID, request.Level2ID, query.RankByFrequency)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, reasons)
}
