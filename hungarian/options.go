// SPDX-License-Identifier: MIT
package hungarian

import (
	"context"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSentinel is the "forced but expensive" cost used for padding
	// and for flagging Forced pairs.
	DefaultSentinel = 1e9

	// DefaultMaxCost is the largest accepted cell value.
	DefaultMaxCost = 1e15

	// DefaultEpsilon is the tolerance Verify applies, relative to the
	// magnitude of the quantities compared.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages ----------

const (
	panicSentinelInvalid = "hungarian: WithSentinel: sentinel must be finite and > 0"
	panicMaxCostInvalid  = "hungarian: WithMaxCost: ceiling must be > 0 and not NaN"
	panicEpsilonInvalid  = "hungarian: WithEpsilon: eps must be finite, non-negative"
	panicContextNil      = "hungarian: WithContext: nil context"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error), never on user data.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	ctx      context.Context
	sentinel float64
	maxCost  float64
	eps      float64
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{
		ctx:      context.Background(),
		sentinel: DefaultSentinel,
		maxCost:  DefaultMaxCost,
		eps:      DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults, left to right.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext bounds a solve by ctx. The context is checked before each row
// enters the matching; on cancellation the solve returns the rows matched so
// far as a Partial solution together with ctx.Err().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithSentinel sets the high-but-finite cost used to pad rectangular inputs
// and above which pairs are flagged Forced.
func WithSentinel(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(panicSentinelInvalid)
	}

	return func(o *Options) { o.sentinel = s }
}

// WithMaxCost sets the largest accepted cell value. math.Inf(1) accepts any
// finite cost at the price of precision guarantees.
func WithMaxCost(ceiling float64) Option {
	if math.IsNaN(ceiling) || ceiling <= 0 {
		panic(panicMaxCostInvalid)
	}

	return func(o *Options) { o.maxCost = ceiling }
}

// WithEpsilon sets the relative tolerance used by Verify.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}
