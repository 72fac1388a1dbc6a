package kernel

import (
	"fmt"
	"strings"

	"opsconsole/internal/pkg/errs"

	"github.com/google/uuid"
)

// TokenPrefix names the entity family a TokenID belongs to.
// The prefix appears verbatim before the underscore in the identifier,
// e.g. "ord" in "ord_1a2b3c4d5".
type TokenPrefix string

const (
	// OrderPrefix identifies order aggregates.
	OrderPrefix TokenPrefix = "ord"
	// ItemPrefix identifies line items within an order.
	ItemPrefix TokenPrefix = "item"
	// ConversationPrefix identifies assistant conversations.
	ConversationPrefix TokenPrefix = "conv"
	// MessagePrefix identifies messages within a conversation.
	MessagePrefix TokenPrefix = "msg"
)

// tokenSuffixLength is the number of hex characters drawn from a fresh UUID.
const tokenSuffixLength = 9

// ErrTokenIDIsNotConstructed indicates a TokenID was not created through
// NewTokenID or TokenIDFromString. Returned when validating a zero value.
var ErrTokenIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TokenID must be created via NewTokenID or TokenIDFromString")

// TokenID is a value object for opaque, human-recognizable identifiers of the
// form "<prefix>_<hex suffix>", such as "ord_1a2b3c4d5" or "conv_0f9e8d7c6".
// The prefix makes the entity family readable in logs and API payloads while
// the suffix carries the entropy.
//
// The zero value of TokenID is invalid; use the constructors.
type TokenID struct {
	value  string
	prefix TokenPrefix
}

// NewTokenID generates a fresh TokenID for the given prefix.
// The suffix is drawn from a random UUID with dashes stripped.
func NewTokenID(prefix TokenPrefix) TokenID {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TokenID{
		value:  fmt.Sprintf("%s_%s", prefix, raw[:tokenSuffixLength]),
		prefix: prefix,
	}
}

// TokenIDFromString reconstructs a TokenID from its string form.
// The string must start with the expected prefix followed by an underscore
// and a non-empty suffix.
func TokenIDFromString(prefix TokenPrefix, s string) (TokenID, error) {
	head := string(prefix) + "_"
	if !strings.HasPrefix(s, head) || len(s) == len(head) {
		return TokenID{}, errs.NewValueIsInvalidErrorWithCause("token id",
			fmt.Errorf("%q does not match %s_<suffix>", s, prefix))
	}
	return TokenID{value: s, prefix: prefix}, nil
}

// String returns the full identifier, prefix included.
func (t TokenID) String() string {
	return t.value
}

// Prefix returns the entity family prefix of the identifier.
func (t TokenID) Prefix() TokenPrefix {
	return t.prefix
}

// IsEqual compares two TokenIDs for equality.
func (t TokenID) IsEqual(other TokenID) bool {
	return t.value == other.value
}

// Validate checks that the TokenID is properly constructed.
// Returns ErrTokenIDIsNotConstructed for the zero value.
func (t TokenID) Validate() error {
	if t.value == "" {
		return ErrTokenIDIsNotConstructed
	}
	return nil
}
