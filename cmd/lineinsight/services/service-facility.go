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
	"github.com/lineinsight/lineinsight/internal"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// GetFacilityMetrics returns the facility-wide rollup. The rollup is derived
// data, so a few seconds of cache staleness is fine for the dashboards that
// read it; a cache miss recomputes from live machine and alert snapshots.
func GetFacilityMetrics() datamodel.FacilityMetrics {
	key := internal.CacheKey("facilitymetrics", store.FacilityName())

	if metrics, cacheHit := internal.GetFacilityMetricsFromCache(key); cacheHit {
		return metrics
	}

	metrics := AggregateFacilityMetrics(store.GetMachines(), store.GetAlerts())
	internal.FacilityAggregationsTotal.Inc()
	internal.StoreFacilityMetricsToCache(key, metrics)
	return metrics
}
