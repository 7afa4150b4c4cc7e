// Package oddsv1alpha1 defines the catanodds.api.v1alpha1.OddsService gRPC
// contract. Requests and responses travel as google.protobuf.Struct values
// holding the JSON form of the message types in this package.
package oddsv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "catanodds.api.v1alpha1.OddsService"

// Full method names, as seen by interceptors
const (
	OddsService_GenerateBoard_FullMethodName      = "/" + ServiceName + "/GenerateBoard"
	OddsService_CreateBoard_FullMethodName        = "/" + ServiceName + "/CreateBoard"
	OddsService_GetBoard_FullMethodName           = "/" + ServiceName + "/GetBoard"
	OddsService_DeleteBoard_FullMethodName        = "/" + ServiceName + "/DeleteBoard"
	OddsService_GetSettlementOdds_FullMethodName  = "/" + ServiceName + "/GetSettlementOdds"
	OddsService_RankSettlements_FullMethodName    = "/" + ServiceName + "/RankSettlements"
	OddsService_SimulateSettlement_FullMethodName = "/" + ServiceName + "/SimulateSettlement"
)

// OddsServiceServer is the server API for OddsService
type OddsServiceServer interface {
	GenerateBoard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateBoard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBoard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBoard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSettlementOdds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RankSettlements(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SimulateSettlement(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedOddsServiceServer can be embedded to have forward compatible implementations
type UnimplementedOddsServiceServer struct{}

func (UnimplementedOddsServiceServer) GenerateBoard(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateBoard not implemented")
}
func (UnimplementedOddsServiceServer) CreateBoard(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBoard not implemented")
}
func (UnimplementedOddsServiceServer) GetBoard(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBoard not implemented")
}
func (UnimplementedOddsServiceServer) DeleteBoard(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBoard not implemented")
}
func (UnimplementedOddsServiceServer) GetSettlementOdds(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSettlementOdds not implemented")
}
func (UnimplementedOddsServiceServer) RankSettlements(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RankSettlements not implemented")
}
func (UnimplementedOddsServiceServer) SimulateSettlement(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SimulateSettlement not implemented")
}

// RegisterOddsServiceServer registers srv on s
func RegisterOddsServiceServer(s grpc.ServiceRegistrar, srv OddsServiceServer) {
	s.RegisterService(&OddsService_ServiceDesc, srv)
}

type unaryMethod func(OddsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(OddsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(OddsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// OddsService_ServiceDesc is the grpc.ServiceDesc for OddsService
var OddsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OddsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateBoard",
			Handler:    unaryHandler(OddsService_GenerateBoard_FullMethodName, OddsServiceServer.GenerateBoard),
		},
		{
			MethodName: "CreateBoard",
			Handler:    unaryHandler(OddsService_CreateBoard_FullMethodName, OddsServiceServer.CreateBoard),
		},
		{
			MethodName: "GetBoard",
			Handler:    unaryHandler(OddsService_GetBoard_FullMethodName, OddsServiceServer.GetBoard),
		},
		{
			MethodName: "DeleteBoard",
			Handler:    unaryHandler(OddsService_DeleteBoard_FullMethodName, OddsServiceServer.DeleteBoard),
		},
		{
			MethodName: "GetSettlementOdds",
			Handler:    unaryHandler(OddsService_GetSettlementOdds_FullMethodName, OddsServiceServer.GetSettlementOdds),
		},
		{
			MethodName: "RankSettlements",
			Handler:    unaryHandler(OddsService_RankSettlements_FullMethodName, OddsServiceServer.RankSettlements),
		},
		{
			MethodName: "SimulateSettlement",
			Handler:    unaryHandler(OddsService_SimulateSettlement_FullMethodName, OddsServiceServer.SimulateSettlement),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catanodds/api/v1alpha1/odds.proto",
}

// OddsServiceClient is the client API for OddsService
type OddsServiceClient interface {
	GenerateBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetSettlementOdds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RankSettlements(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SimulateSettlement(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type oddsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOddsServiceClient wraps a connection
func NewOddsServiceClient(cc grpc.ClientConnInterface) OddsServiceClient {
	return &oddsServiceClient{cc}
}

func (c *oddsServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *oddsServiceClient) GenerateBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_GenerateBoard_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) CreateBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_CreateBoard_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) GetBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_GetBoard_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) DeleteBoard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_DeleteBoard_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) GetSettlementOdds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_GetSettlementOdds_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) RankSettlements(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_RankSettlements_FullMethodName, in, opts...)
}

func (c *oddsServiceClient) SimulateSettlement(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OddsService_SimulateSettlement_FullMethodName, in, opts...)
}
