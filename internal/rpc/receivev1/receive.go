// Package receivev1 declares the receive.v1.ReceiveService gRPC contract.
// Messages are google.protobuf.Struct values keyed by the Field* constants.
package receivev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "receive.v1.ReceiveService"

	BuildQRFullMethodName    = "/" + ServiceName + "/BuildQR"
	GetProfileFullMethodName = "/" + ServiceName + "/GetProfile"
)

const (
	FieldUserID      = "user_id"
	FieldAmount      = "amount"
	FieldMemo        = "memo"
	FieldQRURL       = "qr_url"
	FieldAccountNum  = "account_num"
	FieldAccountName = "account_name"
	FieldName        = "name"
	FieldAmountLabel = "amount_label"
)

type ReceiveServiceServer interface {
	BuildQR(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterReceiveServiceServer(s grpc.ServiceRegistrar, srv ReceiveServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReceiveServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BuildQR", Handler: buildQRHandler},
		{MethodName: "GetProfile", Handler: getProfileHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receive/v1/receive.proto",
}

func buildQRHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiveServiceServer).BuildQR(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BuildQRFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReceiveServiceServer).BuildQR(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getProfileHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiveServiceServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetProfileFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReceiveServiceServer).GetProfile(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type ReceiveServiceClient interface {
	BuildQR(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type receiveServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReceiveServiceClient(cc grpc.ClientConnInterface) ReceiveServiceClient {
	return &receiveServiceClient{cc: cc}
}

func (c *receiveServiceClient) BuildQR(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BuildQRFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiveServiceClient) GetProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetProfileFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// String returns the string field key of s, or "".
func String(s *structpb.Struct, key string) string {
	if s == nil {
		return ""
	}
	return s.GetFields()[key].GetStringValue()
}
