// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/dinfer/bp"
)

var updateTypeKind = reflect.TypeOf(bp.PARALL)

// updateTypeHookFunc converts a source string like "PARALL" or "SEQMAX"
// into a bp.UpdateType, mirroring operator-framework's MetaTimeHookFunc
// pattern of a targeted mapstructure.DecodeHookFunc for one non-primitive
// destination type.
func updateTypeHookFunc(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != updateTypeKind || from.Kind() != reflect.String {
		return data, nil
	}

	switch data.(string) {
	case "PARALL":
		return bp.PARALL, nil
	case "SEQFIX":
		return bp.SEQFIX, nil
	case "SEQRND":
		return bp.SEQRND, nil
	case "SEQMAX":
		return bp.SEQMAX, nil
	default:
		return nil, fmt.Errorf("config: unknown updates value %q", data.(string))
	}
}

var _ mapstructure.DecodeHookFuncType = updateTypeHookFunc
