package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-tin-keeper/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "tin.v1.TINValidator"

// Full method names, usable with grpc.ClientConn.Invoke.
const (
	ValidateMethod      = "/" + ServiceName + "/Validate"
	ValidateBatchMethod = "/" + ServiceName + "/ValidateBatch"
	CountriesMethod     = "/" + ServiceName + "/Countries"
	VersionMethod       = "/" + ServiceName + "/Version"
)

// CountriesRequest is the empty request of Countries.
type CountriesRequest struct{}

// VersionRequest is the empty request of Version.
type VersionRequest struct{}

// TINValidatorServer is implemented by [Handler].
type TINValidatorServer interface {
	Validate(context.Context, *models.ValidationRequest) (*models.ValidationResult, error)
	ValidateBatch(context.Context, *models.BatchRequest) (*models.BatchResponse, error)
	Countries(context.Context, *CountriesRequest) (*models.CountriesResponse, error)
	Version(context.Context, *VersionRequest) (*models.VersionResponse, error)
}

// ServiceDesc describes tin.v1.TINValidator for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TINValidatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: unaryHandler(ValidateMethod, TINValidatorServer.Validate)},
		{MethodName: "ValidateBatch", Handler: unaryHandler(ValidateBatchMethod, TINValidatorServer.ValidateBatch)},
		{MethodName: "Countries", Handler: unaryHandler(CountriesMethod, TINValidatorServer.Countries)},
		{MethodName: "Version", Handler: unaryHandler(VersionMethod, TINValidatorServer.Version)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tin/v1/tin.proto",
}

// unaryHandler adapts a typed server method to grpc.MethodDesc.Handler,
// decoding the request and running the interceptor chain.
func unaryHandler[Req, Resp any](fullMethod string, call func(TINValidatorServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(TINValidatorServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TINValidatorServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
