package oddsv1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Encode converts a message into its wire Struct
func Encode(msg any) (*structpb.Struct, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %T", msg)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrapf(err, "failed to encode %T", msg)
	}
	return out, nil
}

// Decode fills msg from a wire Struct. Unknown fields and mistyped values
// are InvalidArgument.
func Decode(in *structpb.Struct, msg any) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	raw, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %T", msg)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request: "+err.Error())
	}
	return nil
}
