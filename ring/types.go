// SPDX-License-Identifier: MIT

package ring

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/oracle"
)

var (
	// ErrNilGroup indicates a nil ambient group.
	ErrNilGroup = errors.New("ring: group is nil")

	// ErrForeignElement indicates a basis index that belongs to another ring.
	ErrForeignElement = errors.New("ring: element of another ring")

	// ErrActionNotClosed indicates an action that leaves its domain.
	ErrActionNotClosed = errors.New("ring: action does not preserve the domain")

	// ErrNegativePower indicates Pow with a negative exponent.
	ErrNegativePower = errors.New("ring: negative exponent")
)

// ProductMethod selects how Mul multiplies basis elements.
//
// ProductDoubleCoset – intersections over double coset representatives.
// ProductCartesian   – orbit decomposition of the diagonal action on G/H × G/K.
type ProductMethod int

const (
	// ProductDoubleCoset computes [H]·[K] = Σ [H ∩ gKg⁻¹] over H\G/K.
	ProductDoubleCoset ProductMethod = iota

	// ProductCartesian decomposes G/H × G/K into orbits.
	ProductCartesian
)

func (m ProductMethod) String() string {
	switch m {
	case ProductDoubleCoset:
		return "double-coset"
	case ProductCartesian:
		return "cartesian"
	default:
		return "unknown"
	}
}

// Option configures a Ring.
type Option func(*options)

type options struct {
	oracle  oracle.Oracle
	logger  *zap.Logger
	product ProductMethod
}

// defaultOptions returns the configuration used when no Option is given:
//
//   - oracle:  oracle.Exhaustive{}
//   - logger:  zap.NewNop()
//   - product: ProductDoubleCoset
func defaultOptions() options {
	return options{
		oracle:  oracle.Exhaustive{},
		logger:  zap.NewNop(),
		product: ProductDoubleCoset,
	}
}

// WithOracle sets the conjugacy oracle. A nil oracle is ignored.
func WithOracle(o oracle.Oracle) Option {
	return func(opts *options) {
		if o != nil {
			opts.oracle = o
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithProduct selects the basis product used by Mul.
func WithProduct(m ProductMethod) Option {
	return func(opts *options) {
		opts.product = m
	}
}
