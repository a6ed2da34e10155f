package coset

// Option configures a DoubleCoset call. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	workspace *Workspace
}

func defaultOptions() options {
	return options{}
}

// WithWorkspace supplies a pre-allocated Workspace.
// The engine resets its orbit partition, partition stacks, and pruner ring
// but does not free it on exit; callers may reuse it across many
// DoubleCoset calls on the same n to amortize allocation.
func WithWorkspace(w *Workspace) Option {
	return func(o *options) { o.workspace = w }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}
