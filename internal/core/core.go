package core

// Color represents the options for enabling or disabling color output.
type Color int

const (
	ColorUnknown Color = iota
	ColorAuto
	ColorOn
	ColorOff
)

// TraceFormat represents the output format used in trace mode.
type TraceFormat int

const (
	TraceUnknown TraceFormat = iota
	TraceText
	TraceYAML
)

// PointerTo returns a pointer to the provided value.
func PointerTo[T any](v T) *T {
	return &v
}

type KeyVal struct {
	Key, Val string
}
