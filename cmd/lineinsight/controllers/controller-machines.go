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

// GetMachinesHandler serves all production lines of the facility.
func GetMachinesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetMachines())
}

// GetMachineHandler serves one production line.
func GetMachineHandler(c *gin.Context) {
	var request models.GetMachineRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	machine, err := services.GetMachine(request.MachineID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

// GetMachineTimelineHandler serves the shift timeline of one production line.
func GetMachineTimelineHandler(c *gin.Context) {
	var request models.GetMachineRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	timeline, err := services.GetMachineTimeline(request.MachineID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// GetOrdersHandler serves all production orders of the facility.
func GetOrdersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetOrders())
}

// GetOrderHandler serves one production order.
func GetOrderHandler(c *gin.Context) {
	var request models.GetOrderRequest
	if err := c.BindUri(&request); err != nil {
		helpers.HandleInvalidInputError(c, err)
		return
	}

	order, err := services.GetOrder(request.OrderID)
	if err != nil {
		helpers.HandleModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOperatorsHandler serves all line operators of the facility.
func GetOperatorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetOperators())
}
