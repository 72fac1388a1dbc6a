package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"opsconsole/internal/pkg/errs"
)

// orderNumberPattern matches the human-facing order number format
// ORD-<year>-<4 digits>.
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{4}$`)

// GenerateOrderNumber produces a human-readable order number of the form
// ORD-<year>-<4-digit suffix>, e.g. ORD-2026-4821. The suffix is random, so
// uniqueness is advisory only; CreateOrderCommandHandler checks the generated
// number against existing orders and regenerates on collision.
func GenerateOrderNumber(now time.Time) string {
	suffix := 1000 + rand.IntN(9000)
	return fmt.Sprintf("ORD-%d-%d", now.Year(), suffix)
}

// ValidateOrderNumber checks that a value matches the ORD-<year>-<4-digit>
// format, used when restoring orders from persistence.
func ValidateOrderNumber(number string) error {
	if !orderNumberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match ORD-<year>-<suffix>", number))
	}
	return nil
}
