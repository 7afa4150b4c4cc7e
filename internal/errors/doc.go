// Package errors provides the structured error type used across catan-odds.
//
// Every error carries a Code, a user-facing message, optional metadata and
// an optional cause:
//
//	err := errors.NotFound("board not found").
//	    WithMeta("board_id", boardID)
//
// Wrapping keeps the original code so a NotFound from the repository layer
// is still a NotFound after the orchestrator adds context:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load board")
//	}
//
// # Domain Errors
//
// The probability model rejects bad input with three named kinds, all
// InvalidArgument-coded and distinguished by the "reason" metadata key:
//
//	errors.InvalidResource("granite")     // reason INVALID_RESOURCE
//	errors.InvalidChit(7, "...")          // reason INVALID_CHIT
//	errors.InvalidPortKind("harbor")      // reason INVALID_PORT_KIND
//
// Board-level violations (length, resource counts, chit multiset) use
// InvalidLayout. Check them with IsInvalidResource, IsInvalidChit,
// IsInvalidPortKind and IsInvalidLayout.
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); metadata travels as a
// google.protobuf.Struct status detail and FromGRPCError restores it.
package errors
