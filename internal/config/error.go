package config

// ConfigInitError reports a configuration file that exists but cannot be
// used, such as one with no snippet directory set.
type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}

func newConfigInitError(msg string) *ConfigInitError {
	return &ConfigInitError{msg: msg}
}
