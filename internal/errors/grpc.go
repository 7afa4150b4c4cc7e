package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if len(customErr.Meta) > 0 {
			details, detailErr := structpb.NewStruct(metaToProtoSafe(customErr.Meta))
			if detailErr == nil {
				if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
					st = withDetails
				}
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error.
// Numeric metadata comes back as float64.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// metaToProtoSafe replaces values structpb cannot represent with their string form.
func metaToProtoSafe(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		if _, err := structpb.NewValue(v); err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = v
	}
	return out
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
