package errors

import "fmt"

// Reason values stored under MetaReason for domain validation failures.
const (
	MetaReason   = "reason"
	MetaValue    = "value"
	MetaExpected = "expected"

	ReasonInvalidResource = "INVALID_RESOURCE"
	ReasonInvalidChit     = "INVALID_CHIT"
	ReasonInvalidPortKind = "INVALID_PORT_KIND"
	ReasonInvalidLayout   = "INVALID_LAYOUT"
)

const (
	expectedResources = "wood, sheep, wheat, brick, ore or desert"
	expectedChits     = "2-6, 8-12, or 0 for no chit"
	expectedPortKinds = "all, wood, sheep, wheat, brick or ore"
)

// InvalidResource reports a resource name outside the known set.
func InvalidResource(value string) *Error {
	return InvalidArgumentf("invalid resource %q", value).
		WithMeta(MetaReason, ReasonInvalidResource).
		WithMeta(MetaValue, value).
		WithMeta(MetaExpected, expectedResources)
}

// InvalidChit reports a chit outside the dice-sum domain, or a sentinel
// used where a real chit is required (and the reverse).
func InvalidChit(value int, detail string) *Error {
	msg := fmt.Sprintf("invalid chit %d", value)
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	return InvalidArgument(msg).
		WithMeta(MetaReason, ReasonInvalidChit).
		WithMeta(MetaValue, value).
		WithMeta(MetaExpected, expectedChits)
}

// InvalidPortKind reports a port kind that is neither "all" nor a resource.
func InvalidPortKind(value string) *Error {
	return InvalidArgumentf("invalid port kind %q", value).
		WithMeta(MetaReason, ReasonInvalidPortKind).
		WithMeta(MetaValue, value).
		WithMeta(MetaExpected, expectedPortKinds)
}

// InvalidLayoutf reports a board layout that breaks the fixed tile or chit distribution.
func InvalidLayoutf(format string, args ...any) *Error {
	return InvalidArgumentf(format, args...).
		WithMeta(MetaReason, ReasonInvalidLayout)
}

// GetReason returns the reason metadata of err, or "" when there is none.
func GetReason(err error) string {
	reason, _ := GetMeta(err)[MetaReason].(string)
	return reason
}

// IsInvalidResource checks for an INVALID_RESOURCE failure
func IsInvalidResource(err error) bool {
	return IsInvalidArgument(err) && GetReason(err) == ReasonInvalidResource
}

// IsInvalidChit checks for an INVALID_CHIT failure
func IsInvalidChit(err error) bool {
	return IsInvalidArgument(err) && GetReason(err) == ReasonInvalidChit
}

// IsInvalidPortKind checks for an INVALID_PORT_KIND failure
func IsInvalidPortKind(err error) bool {
	return IsInvalidArgument(err) && GetReason(err) == ReasonInvalidPortKind
}

// IsInvalidLayout checks for an INVALID_LAYOUT failure
func IsInvalidLayout(err error) bool {
	return IsInvalidArgument(err) && GetReason(err) == ReasonInvalidLayout
}
