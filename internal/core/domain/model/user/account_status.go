package user

import (
	"fmt"

	"opsconsole/internal/pkg/errs"
)

// AccountStatus is the activation state of a user account.
// Unlike the order lifecycle there is no transition discipline here; admins
// may set any valid status directly.
type AccountStatus int

const (
	// AccountUnknown represents an invalid or undefined account status.
	AccountUnknown AccountStatus = iota

	// AccountActive is a fully usable account.
	AccountActive

	// AccountInactive is a deactivated account.
	AccountInactive

	// AccountPending is an account awaiting activation.
	AccountPending
)

func getAccountStatusStrings() map[AccountStatus]string {
	return map[AccountStatus]string{
		AccountUnknown:  "unknown",
		AccountActive:   "active",
		AccountInactive: "inactive",
		AccountPending:  "pending",
	}
}

func getValidAccountStatusStrings() map[AccountStatus]string {
	//nolint:exhaustive // AccountUnknown is intentionally excluded as it's invalid
	return map[AccountStatus]string{
		AccountActive:   "active",
		AccountInactive: "inactive",
		AccountPending:  "pending",
	}
}

// ParseAccountStatus converts an external string such as "active" into an
// AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	for status, str := range getValidAccountStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return AccountUnknown, errs.NewValueIsInvalidErrorWithCause("accountStatus",
		fmt.Errorf("%q is not a valid account status", s))
}

// Validate checks if the AccountStatus value is valid.
func (s AccountStatus) Validate() error {
	if _, ok := getValidAccountStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("accountStatus",
			fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// String returns the lowercase status name. Implements fmt.Stringer.
func (s AccountStatus) String() string {
	if str, ok := getAccountStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
