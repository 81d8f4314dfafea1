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

package simulator

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/repository"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// Simulator feeds the facility store with random-walk telemetry so demo
// deployments look alive without a real shop floor behind them. Each tick
// nudges every machine's OEE components and production rate, and advances the
// in-progress orders.
type Simulator struct {
	store    *repository.Store
	interval time.Duration
	rng      *rand.Rand

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(store *repository.Store, interval time.Duration) *Simulator {
	return &Simulator{
		store:    store,
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the simulator loop. Call Stop to end it.
func (s *Simulator) Start() {
	go s.run()
}

// Stop ends the simulator loop and waits for the last tick to finish.
func (s *Simulator) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Simulator) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Simulator) tick(now time.Time) {
	for _, machine := range s.store.GetMachines() {
		oee := datamodel.OEEMetrics{
			Availability: s.walk(machine.OEE.Availability, 1.5),
			Performance:  s.walk(machine.OEE.Performance, 2.0),
			Quality:      s.walk(machine.OEE.Quality, 0.4),
		}
		oee.Overall = oee.Availability * oee.Performance * oee.Quality / 10000

		state := machine.Status
		rate := machine.ProductionRate.Current

		switch machine.Status {
		case datamodel.MachineStopped:
			// stopped lines occasionally restart
			if s.rng.Float64() < 0.1 {
				state = datamodel.MachineRunning
				rate = machine.ProductionRate.Target * (0.85 + 0.1*s.rng.Float64())
			}
		case datamodel.MachineRunning, datamodel.MachineSlow:
			rate += (s.rng.Float64()*2 - 1) * machine.ProductionRate.Target * 0.03
			if rate > machine.ProductionRate.Target {
				rate = machine.ProductionRate.Target
			}
			if rate < 0 {
				rate = 0
			}
			if rate < machine.ProductionRate.Target*0.8 {
				state = datamodel.MachineSlow
			} else {
				state = datamodel.MachineRunning
			}
		}

		if err := s.store.ApplyTelemetry(machine.ID, state, rate, oee, now); err != nil {
			zap.S().Warnf("Simulator cannot update machine %s: %v", machine.ID, err)
			continue
		}

		if state == datamodel.MachineRunning && machine.CurrentOrder != nil &&
			machine.CurrentOrder.Status == datamodel.OrderInProgress {
			if err := s.store.AdvanceOrderQuantity(machine.CurrentOrder.ID, s.rng.Intn(3)); err != nil {
				zap.S().Warnf("Simulator cannot advance order %s: %v", machine.CurrentOrder.ID, err)
			}
		}
	}
}

// walk nudges a percentage value by up to +-step and clamps it to [0, 100].
func (s *Simulator) walk(value float64, step float64) float64 {
	value += (s.rng.Float64()*2 - 1) * step
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
