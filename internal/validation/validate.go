// Package validation guards the request boundary. The builder itself is
// total over well-formed input, so everything that can actually be wrong
// with a splice config gets rejected here, before Build is called.
package validation

import (
	"strings"

	"splicegen/domain/splice"
	"splicegen/internal/errors"
)

// ValidateConfig rejects configs the builder's contract excludes:
// negative port counts, non-positive fiber counts, unnamed cables, and
// non-positive sheet numbers.
func ValidateConfig(cfg splice.Config) error {
	if cfg.Ports < 0 {
		return errors.ValidationError("port count must not be negative")
	}
	if strings.TrimSpace(cfg.MainCableName) == "" {
		return errors.ValidationError("main cable name is required")
	}
	for i, cable := range cfg.Cables {
		if strings.TrimSpace(cable.Name) == "" {
			return errors.ValidationErrorf("cable %d: name is required", i+1)
		}
		if cable.FiberCount <= 0 {
			return errors.ValidationErrorf("cable %q: fiber count must be positive", cable.Name)
		}
	}
	for i, record := range cfg.Addresses {
		if record.Sheet != nil && *record.Sheet <= 0 {
			return errors.ValidationErrorf("address %d: sheet number must be positive", i+1)
		}
	}
	return nil
}
