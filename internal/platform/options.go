package platform

type options struct {
	clipboard Clipboard
	prober    Prober
}

// Option customises an adapter constructor.
type Option func(*options)

// WithClipboard replaces the adapter's default clipboard.
func WithClipboard(c Clipboard) Option {
	return func(o *options) {
		o.clipboard = c
	}
}

// WithProber replaces the adapter's reachability prober.
func WithProber(p Prober) Option {
	return func(o *options) {
		o.prober = p
	}
}

func buildOptions(defaultClipboard Clipboard, opts []Option) options {
	o := options{
		clipboard: defaultClipboard,
		prober:    StaticProber(false),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
