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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/helpers"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/models"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/services"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// GetAlertsHandler serves the facility's alerts, optionally filtered.
func GetAlertsHandler(c *gin.Context) {
	var query models.ListAlertsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	filter := services.AlertFilter{
		Acknowledged: query.Acknowledged,
		Type:         datamodel.AlertType(query.Type),
		Priority:     datamodel.OrderPriority(query.Priority),
		MachineID:    query.MachineID,
		Query:        query.Query,
	}
	c.JSON(http.StatusOK, services.ListAlerts(filter))
}

// GetAlertHandler serves one alert.
func GetAlertHandler(c *gin.Context) {
	var request models.GetAlertRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	alert, err := services.GetAlert(request.AlertID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// CreateAlertHandler stores a new active alert.
func CreateAlertHandler(c *gin.Context) {
	var body models.CreateAlertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	alert, err := services.CreateAlert(services.CreateAlertInput{
		Type:                   body.Type,
		Priority:               body.Priority,
		Title:                  body.Title,
		Message:                body.Message,
		MachineID:              body.MachineID,
		AssignedOperator:       body.AssignedOperator,
		DowntimeMinutes:        body.DowntimeMinutes,
		RequiresClassification: body.RequiresClassification,
	})
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// ClassifyAlertHandler attaches a downtime classification to an alert.
func ClassifyAlertHandler(c *gin.Context) {
	var request models.GetAlertRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}
	var body models.ClassificationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	alert, err := services.ClassifyAlert(request.AlertID, body.ToClassification())
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// AcknowledgeAlertHandler moves an alert to its terminal state. The body is
// optional; when present it may attach a classification in the same step.
func AcknowledgeAlertHandler(c *gin.Context) {
	var request models.GetAlertRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	var body models.AcknowledgeAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			helpers.HandleInvalidInputError(c, err)
			return
		}
	}

	var classification *datamodel.SupervisorClassification
	if body.Classification != nil {
		converted := body.Classification.ToClassification()
		classification = &converted
	}

	alert, err := services.AcknowledgeAlert(request.AlertID, classification)
	if err != nil {
		if errors.Is(err, services.ErrClassificationRequired) {
			helpers.HandleConflictError(c, err)
			return
		}
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
