package svd

import "fmt"

// Config configures a Kernel.
type Config struct {
	// Strict makes conversions into the field type fail with
	// ErrInexactConversion instead of returning an approximated value.
	Strict bool
	// RequireExactSqrt rejects field types which do not compute square roots
	// within the type.
	RequireExactSqrt bool
}

func (cfg Config) normalized() Config {
	if cfg.RequireExactSqrt {
		// with in-type roots every conversion is exact
		cfg.Strict = true
	}
	return cfg
}

func (cfg Config) validate(hasExactSqrt bool) error {
	cfg = cfg.normalized()
	if cfg.RequireExactSqrt && !hasExactSqrt {
		return fmt.Errorf("%w: field type has no exact square root", ErrInvalidConfig)
	}
	return nil
}
