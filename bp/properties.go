// SPDX-License-Identifier: MIT
package bp

import "fmt"

// PropertyStore is the generic typed property-bag collaborator spec §6
// describes: a name->typed-value store with HasProperty/ConvertPropertyTo/
// GetPropertyAs and a printable form. package internal/config ships the
// concrete implementation, config.Properties, backed by mapstructure.
type PropertyStore interface {
	// HasProperty reports whether name is present in the store.
	HasProperty(name string) bool
	// ConvertPropertyTo decodes the property under name into out in place,
	// converting between compatible representations (e.g. string "PARALL"
	// into bp.UpdateType) the way dai::PropertySet::ConvertPropertyTo does.
	ConvertPropertyTo(name string, out interface{}) error
	// GetPropertyAs decodes the property under name into out without
	// attempting any representation conversion.
	GetPropertyAs(name string, out interface{}) error
	// String renders the store for identification strings (identify()).
	String() string
}

func propertyErrorf(name string, err error) error {
	return fmt.Errorf("bp.FromProperties: property %q: %w", name, err)
}

// requiredProperties are the five configuration keys spec §4.5 enumerates.
var requiredProperties = []string{"updates", "tol", "maxiter", "verbose", "logdomain"}

// FromProperties builds the Option slice New needs from an external
// PropertyStore, failing with ErrMissingProperty if any of the five
// required keys (updates, tol, maxiter, verbose, logdomain) is absent -
// the missing-required-configuration-key precondition violation named in
// spec §7.
func FromProperties(ps PropertyStore) ([]Option, error) {
	for _, name := range requiredProperties {
		if !ps.HasProperty(name) {
			return nil, propertyErrorf(name, ErrMissingProperty)
		}
	}

	var updates UpdateType
	if err := ps.ConvertPropertyTo("updates", &updates); err != nil {
		return nil, propertyErrorf("updates", err)
	}

	var tol float64
	if err := ps.GetPropertyAs("tol", &tol); err != nil {
		return nil, propertyErrorf("tol", err)
	}
	if tol <= 0 {
		return nil, propertyErrorf("tol", ErrInvalidTol)
	}

	var maxIter int
	if err := ps.GetPropertyAs("maxiter", &maxIter); err != nil {
		return nil, propertyErrorf("maxiter", err)
	}
	if maxIter <= 0 {
		return nil, propertyErrorf("maxiter", ErrInvalidMaxIter)
	}

	var verbose int
	if err := ps.GetPropertyAs("verbose", &verbose); err != nil {
		return nil, propertyErrorf("verbose", err)
	}

	var logDomain bool
	if err := ps.GetPropertyAs("logdomain", &logDomain); err != nil {
		return nil, propertyErrorf("logdomain", err)
	}

	return []Option{
		WithUpdates(updates),
		WithTol(tol),
		WithMaxIter(maxIter),
		WithVerbose(verbose),
		WithLogDomain(logDomain),
	}, nil
}
