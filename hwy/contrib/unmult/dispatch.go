// Copyright 2025 go-unmult Authors
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

package unmult

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-unmult/hwy"
	"github.com/ajroetker/go-unmult/hwy/contrib/workerpool"
)

// Name is the stable name under which the transform is exported to hosts.
const Name = "unmult"

// Kernel transforms one pixel in place.
type Kernel func(p *Pixel)

// Kernel names as reported by Dispatcher.KernelName.
const (
	KernelScalar = "scalar"
	KernelVector = "vector"
)

// KernelByName returns the kernel registered under name.
func KernelByName(name string) (Kernel, error) {
	switch name {
	case KernelScalar:
		return BaseUnmult, nil
	case KernelVector:
		return VecUnmult, nil
	default:
		return nil, fmt.Errorf("unmult: unknown kernel %q (want %q or %q)", name, KernelScalar, KernelVector)
	}
}

// Dispatcher binds one kernel for its whole lifetime. It starts unresolved;
// the first call to Resolve (or Unmult) runs the probe once and keeps the
// choice forever. Concurrent first calls are safe: all of them observe the
// same kernel.
type Dispatcher struct {
	probe func() bool
	pool  *workerpool.Pool

	once     sync.Once
	resolved atomic.Bool
	kernel   Kernel
	name     string
}

// NewDispatcher returns an unresolved dispatcher. probe reports whether the
// vector path is available; it is called at most once. A nil pool means
// workerpool.Default().
func NewDispatcher(probe func() bool, pool *workerpool.Pool) *Dispatcher {
	return &Dispatcher{probe: probe, pool: pool}
}

// Resolve runs the probe on first use and returns the bound kernel.
func (d *Dispatcher) Resolve() Kernel {
	d.once.Do(func() {
		if d.probe != nil && d.probe() {
			d.kernel, d.name = VecUnmult, KernelVector
		} else {
			d.kernel, d.name = BaseUnmult, KernelScalar
		}
		d.resolved.Store(true)
		Logger().Debug("unmult kernel resolved",
			slog.String("kernel", d.name),
			slog.String("cpu", hwy.CurrentName()))
	})
	return d.kernel
}

// Resolved reports whether the probe has run.
func (d *Dispatcher) Resolved() bool {
	return d.resolved.Load()
}

// KernelName returns the name of the bound kernel, resolving if needed.
func (d *Dispatcher) KernelName() string {
	d.Resolve()
	return d.name
}

// Unmult transforms width*height pixels in place with the bound kernel and
// returns once every pixel is done.
func (d *Dispatcher) Unmult(pixels []Pixel, width, height int) {
	pool := d.pool
	if pool == nil {
		pool = workerpool.Default()
	}
	Apply(pool, d.Resolve(), pixels, width, height)
}

// std is resolved during package initialization, before any caller can reach
// it, so Unmult never races on the probe.
var std = NewDispatcher(hwy.HasVector, nil)

func init() {
	std.Resolve()
}

// Default returns the process-wide dispatcher used by Unmult.
func Default() *Dispatcher {
	return std
}

// Unmult transforms width*height pixels in place using the kernel chosen
// for this CPU.
func Unmult(pixels []Pixel, width, height int) {
	std.Unmult(pixels, width, height)
}

// UnmultBytes is Unmult over a raw BGRA8 byte buffer.
func UnmultBytes(buf []byte, width, height int) {
	std.Unmult(AsPixels(buf), width, height)
}

// Exports returns the host registration table: the single exported
// operation keyed by Name.
func Exports() map[string]func(buf []byte, width, height int) {
	return map[string]func(buf []byte, width, height int){
		Name: UnmultBytes,
	}
}
