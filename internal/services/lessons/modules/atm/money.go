package atm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
)

// maxDollars bounds accepted amounts so the cents conversion cannot
// overflow int64.
const maxDollars = (math.MaxInt64 - 99) / 100

// parseCents converts a decimal dollar amount like "50" or "12.75" into
// cents. Balances stay in int64 cents so withdrawal arithmetic is exact.
func parseCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	malformed := apperrors.E(apperrors.KindMalformed,
		fmt.Sprintf("amount %q is not a dollar amount", raw))

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" {
		return 0, malformed
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 || dollars > maxDollars {
		return 0, malformed
	}
	cents := dollars * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, malformed
		}
		fracCents, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || fracCents < 0 {
			return 0, malformed
		}
		if len(frac) == 1 {
			fracCents *= 10
		}
		cents += fracCents
	}
	return cents, nil
}

// formatCents renders cents as a dollar string like "$1000.00".
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
