package config

type Warner interface {
	Warnf(format string, a ...interface{})
}

// warnDeprecated warns about a deprecated key still in use.
// The value of the deprecated key is only used when newKey is unset.
func warnDeprecated(warner Warner, oldKey, newKey string) {
	warner.Warnf("environment variable %s is deprecated and only used if %s is unset, "+
		"please use %s instead", oldKey, newKey, newKey)
}
