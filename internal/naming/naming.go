// Package naming validates record identifiers and derives accessor
// method names from field names.
//
// Names are restricted to lowerCamel ASCII identifiers so that every
// derived accessor name is unambiguous: field "familyName" yields the
// accessor pair "getFamilyName" / "setFamilyName".
package naming

import (
	"regexp"

	"github.com/containerd/errdefs"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

const label = `[a-z][A-Za-z0-9]*`

var identRe = regexp.MustCompile(`^` + label + `$`)

// Validate returns nil if s is usable as a record type, field, or
// method name.
func Validate(s string) error {
	if !identRe.MatchString(s) {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "name %q must match %v", s, identRe)
	}
	return nil
}

// Getter returns the getter method name for a field.
func Getter(field string) string {
	return "get" + strcase.ToCamel(field)
}

// Setter returns the setter method name for a field.
func Setter(field string) string {
	return "set" + strcase.ToCamel(field)
}
