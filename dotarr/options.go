package dotarr

// FlattenOption customises Flatten.
type FlattenOption func(*FlattenOptions)

// FlattenOptions holds the parameters of a Flatten call.
type FlattenOptions struct {
	// Prefix is prepended to every produced key.
	Prefix string

	// Separator joins parent and child keys. Defaults to Separator (".").
	Separator string

	// KeepEmpty keeps empty Maps and lists as leaves. Default true; when false
	// they are dropped from the output.
	KeepEmpty bool
}

// DefaultFlattenOptions returns FlattenOptions with no prefix, "." as the
// separator and empty containers kept.
func DefaultFlattenOptions() FlattenOptions {
	return FlattenOptions{
		Prefix:    "",
		Separator: Separator,
		KeepEmpty: true,
	}
}

// WithPrefix prepends prefix to every flattened key.
func WithPrefix(prefix string) FlattenOption {
	return func(o *FlattenOptions) {
		o.Prefix = prefix
	}
}

// WithSeparator joins keys with sep. An empty sep keeps the default.
func WithSeparator(sep string) FlattenOption {
	return func(o *FlattenOptions) {
		if sep != "" {
			o.Separator = sep
		}
	}
}

// WithoutEmpty drops empty containers instead of emitting them as leaves.
func WithoutEmpty() FlattenOption {
	return func(o *FlattenOptions) {
		o.KeepEmpty = false
	}
}
