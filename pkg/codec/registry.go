package codec

import "fmt"

// Formats lists the supported format names.
var Formats = []string{"json", "yaml", "text"}

// New returns the codec registered under name.
func New(name string, opts FormatOptions) (Codec, error) {
	switch name {
	case "json":
		return NewJSONCodec(opts), nil
	case "yaml":
		return NewYAMLCodec(opts), nil
	case "text":
		return NewTextCodec(opts), nil
	default:
		return nil, fmt.Errorf("%w %q (must be json, yaml, or text)", ErrUnknownFormat, name)
	}
}
