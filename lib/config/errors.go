package config

import (
	"errors"

	"github.com/samber/oops"
)

// Error kinds returned by the config package. Every error built here wraps
// exactly one of these sentinels, so callers match with errors.Is.
var (
	ErrInvalidFormat             = errors.New("invalid capacity string")
	ErrInvalidUnit               = errors.New("invalid capacity unit")
	ErrMissingRequiredProperty   = errors.New("missing required property")
	ErrTypeMismatch              = errors.New("property value has wrong type")
	ErrConfigNotMutable          = errors.New("config is not mutable")
	ErrMissingPropertyNoFallback = errors.New("property not found and no fallback provided")
	ErrInvalidNodeMemory         = errors.New("bad node memory size")
)

// configError starts an oops builder tagged for this package.
func configError(code string) oops.OopsErrorBuilder {
	return oops.In("config").Code(code)
}

func missingRequiredProperty(key string) error {
	return configError("missing_required_property").
		With("key", key).
		Wrapf(ErrMissingRequiredProperty, "property %q is required", key)
}

func typeMismatch(key, raw, typeName string, cause error) error {
	return configError("type_mismatch").
		With("key", key).
		With("value", raw).
		With("type", typeName).
		With("cause", cause).
		Wrapf(ErrTypeMismatch, "property %q has value %q which is not a valid %s", key, raw, typeName)
}

func notMutable(hint string) error {
	return configError("config_not_mutable").
		With("key", MutableConfigKey).
		Wrapf(ErrConfigNotMutable, "consider setting %s'%s' to 'true'", hint, MutableConfigKey)
}

func missingNoFallback(key, what string) error {
	return configError("missing_no_fallback").
		With("key", key).
		Wrapf(ErrMissingPropertyNoFallback, "%s was not found in node config (%q) and no default was provided", what, key)
}
