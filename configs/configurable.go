package configs

// Configurable is implemented by setting types read from config files.
// ConfigKey is the CUE path of the setting.
type Configurable interface {
	ConfigKey() string
}

// FirstOf decodes the first value at the key of setting K as V.
func FirstOf[V any, K Configurable](loader Loader) V {
	var key K
	return First[V](loader, key.ConfigKey())
}

// AllOf decodes the values at the key of setting K from every file defining it.
func AllOf[V any, K Configurable](loader Loader) []V {
	var key K
	var ret []V
	for v := range All[V](loader, key.ConfigKey()) {
		ret = append(ret, v)
	}
	return ret
}
