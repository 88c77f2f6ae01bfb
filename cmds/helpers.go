package cmds

// Var defines name taking one argument, and name+"." resetting the value to zero.
func Var[T any](name string, desc string, aliases ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Alias(aliases...).Args(argName[T]()))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset " + name))

	return &value
}

// Switch defines name setting true, and "!"+name setting false.
func Switch(name string, desc string, aliases ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc).Alias(aliases...))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset " + name))

	return &value
}

func argName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case string:
		return "STRING"
	case bool:
		return "BOOL"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "N"
	}
	return "VALUE"
}
