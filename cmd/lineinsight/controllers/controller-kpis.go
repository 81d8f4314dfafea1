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

// GetKpisHandler lists the KPIs a machine serves.
func GetKpisHandler(c *gin.Context) {
	var request models.GetKpisRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	response, err := services.GetMachineKpis(request.MachineID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetKpiDataHandler computes one KPI for one machine.
func GetKpiDataHandler(c *gin.Context) {
	var request models.GetKpiDataRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	response, err := services.ProcessKpiRequest(request.MachineID, request.Kpi)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
