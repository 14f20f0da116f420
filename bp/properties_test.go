package bp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dinfer/bp"
)

// fakeStore is a minimal bp.PropertyStore backed by a plain map, standing
// in for internal/config's mapstructure-backed implementation so this
// package's tests don't depend on internal/config.
type fakeStore map[string]interface{}

func (s fakeStore) HasProperty(name string) bool { _, ok := s[name]; return ok }

func (s fakeStore) GetPropertyAs(name string, out interface{}) error {
	v, ok := s[name]
	if !ok {
		return fmt.Errorf("fakeStore: missing %q", name)
	}
	switch p := out.(type) {
	case *float64:
		*p = v.(float64)
	case *int:
		*p = v.(int)
	case *bool:
		*p = v.(bool)
	default:
		return fmt.Errorf("fakeStore: unsupported type for %q", name)
	}

	return nil
}

func (s fakeStore) ConvertPropertyTo(name string, out interface{}) error {
	v, ok := s[name]
	if !ok {
		return fmt.Errorf("fakeStore: missing %q", name)
	}
	switch p := out.(type) {
	case *bp.UpdateType:
		str := v.(string)
		switch str {
		case "PARALL":
			*p = bp.PARALL
		case "SEQFIX":
			*p = bp.SEQFIX
		case "SEQRND":
			*p = bp.SEQRND
		case "SEQMAX":
			*p = bp.SEQMAX
		default:
			return fmt.Errorf("fakeStore: unknown updates %q", str)
		}
	default:
		return fmt.Errorf("fakeStore: unsupported type for %q", name)
	}

	return nil
}

func (s fakeStore) String() string { return fmt.Sprintf("%v", map[string]interface{}(s)) }

func validStore() fakeStore {
	return fakeStore{
		"updates":   "SEQFIX",
		"tol":       1e-6,
		"maxiter":   100,
		"verbose":   0,
		"logdomain": false,
	}
}

func TestFromPropertiesBuildsOptions(t *testing.T) {
	opts, err := bp.FromProperties(validStore())
	require.NoError(t, err)
	require.Len(t, opts, 5)
}

func TestFromPropertiesFailsOnMissingKey(t *testing.T) {
	store := validStore()
	delete(store, "tol")

	_, err := bp.FromProperties(store)
	require.ErrorIs(t, err, bp.ErrMissingProperty)
}

func TestFromPropertiesRejectsNonPositiveTol(t *testing.T) {
	store := validStore()
	store["tol"] = 0.0

	_, err := bp.FromProperties(store)
	require.ErrorIs(t, err, bp.ErrInvalidTol)
}

func TestFromPropertiesRejectsNonPositiveMaxIter(t *testing.T) {
	store := validStore()
	store["maxiter"] = 0

	_, err := bp.FromProperties(store)
	require.ErrorIs(t, err, bp.ErrInvalidMaxIter)
}
