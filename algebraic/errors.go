package algebraic

import "github.com/cockroachdb/errors"

var (
	// ErrNegativeRadicand signals a root generator less than zero.
	ErrNegativeRadicand = errors.New("algebraic: negative radicand")
	// ErrGeneratorMismatch signals arithmetic on extension numbers with
	// different root generators.
	ErrGeneratorMismatch = errors.New("algebraic: root generators differ")
)
