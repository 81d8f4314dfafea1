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
	"time"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/repository"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

var store *repository.Store
var siteConfiguration datamodel.SiteConfiguration

// now is the clock of the service layer. Tests override it for deterministic
// timestamps.
var now = time.Now

// Init wires the service layer to its facility store and site configuration.
// Must be called once before serving requests.
func Init(facilityStore *repository.Store, configuration datamodel.SiteConfiguration) {
	store = facilityStore
	siteConfiguration = configuration
}

// SiteConfiguration returns the active site configuration.
func SiteConfiguration() datamodel.SiteConfiguration {
	return siteConfiguration
}

// FacilityName returns the name of the facility this instance serves.
func FacilityName() string {
	return store.FacilityName()
}
