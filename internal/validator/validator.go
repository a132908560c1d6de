package validator

import (
	"fmt"

	"github.com/zyclope0/supernovafit-sub004/internal/xerrors"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

func Validate(v Validator) *xerrors.Error {
	if err := v.Validate(); err != nil {
		return xerrors.Validation(err)
	}
	return nil
}

// ValidateAll checks every element and namespaces its fields as "<name>[i].".
func ValidateAll[T Validator](name string, items []T) *xerrors.Error {
	var errs []*xerrors.Error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errs = append(errs, xerrors.Validation(err, xerrors.WithFieldPrefix(fmt.Sprintf("%s[%d].", name, i))))
		}
	}
	return xerrors.Merge(errs...)
}
