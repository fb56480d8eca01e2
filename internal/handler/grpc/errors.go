package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-tin-keeper/internal/app"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrUnknownCountry:      codes.InvalidArgument,
	service.ErrEmptyBatch:          codes.InvalidArgument,
	service.ErrInvalidDataProvided: codes.InvalidArgument,
	service.ErrBatchTooLarge:       codes.ResourceExhausted,
}

// toStatus maps a service error to a gRPC status. Unmapped errors become
// codes.Internal without their message.
func toStatus(err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
