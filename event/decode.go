package event

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Decode copies the event's properties (type, data and copied fields) into
// out, which must be a pointer to a struct or map. Struct fields match
// property names case-insensitively or through `mapstructure` tags.
func (e *Event) Decode(out any) error {
	if err := mapstructure.Decode(e.Properties(), out); err != nil {
		return errors.Wrapf(err, "decode event %q into %T", e.Type, out)
	}
	return nil
}
