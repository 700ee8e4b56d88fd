package cmds

// Var defines name to set the value and name+"." to reset it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Args("value").Desc("set "+name))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn on and !name to turn off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc("enable "+name))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args("value").Desc("append to "+name))
	return &value
}
