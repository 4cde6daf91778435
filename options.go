package cdlist

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity        int
	invariantChecks bool
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity:        0,
		invariantChecks: false,
	}
}

// WithCapacity option preallocates room for capacity elements.
//
// The zero value configures no preallocation.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("cdlist: invalid capacity")
		}
		opts.capacity = capacity
	})
}

// WithInvariantChecks option verifies the link structure after every mutating call
// and panics on the first violation.
func WithInvariantChecks(enabled bool) Option {
	return funcOption(func(opts *listOptions) {
		opts.invariantChecks = enabled
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
