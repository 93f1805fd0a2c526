/*
 * Zones - caller references.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package zones

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// callerRefs generates the caller references of CreateHostedZone. A
// reference combines the time, a per process counter and a random uuid.
type callerRefs struct {
	counter atomic.Uint64
	now     func() time.Time
	random  func() string
}

func newCallerRefs() *callerRefs {
	return &callerRefs{now: time.Now, random: uuid.NewString}
}

func (g *callerRefs) next() string {
	return fmt.Sprintf("%d-%d-%s", g.now().UnixNano(), g.counter.Add(1), g.random())
}
