// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: escrow.proto

package escrowpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	EscrowService_Approve_FullMethodName    = "/escrow.EscrowService/Approve"
	EscrowService_PreApprove_FullMethodName = "/escrow.EscrowService/PreApprove"
	EscrowService_Authorize_FullMethodName  = "/escrow.EscrowService/Authorize"
	EscrowService_Capture_FullMethodName    = "/escrow.EscrowService/Capture"
	EscrowService_Transfer_FullMethodName   = "/escrow.EscrowService/Transfer"
)

// EscrowServiceClient is the client API for EscrowService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// EscrowService is the external escrow/transfer capability used by the
// settlement engine. Every call blocks until the transaction is
// confirmed on chain (or fails), then returns its receipt.
type EscrowServiceClient interface {
	Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*Receipt, error)
	PreApprove(ctx context.Context, in *PreApproveRequest, opts ...grpc.CallOption) (*Receipt, error)
	Authorize(ctx context.Context, in *AuthorizeRequest, opts ...grpc.CallOption) (*Receipt, error)
	Capture(ctx context.Context, in *CaptureRequest, opts ...grpc.CallOption) (*Receipt, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error)
}

type escrowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEscrowServiceClient(cc grpc.ClientConnInterface) EscrowServiceClient {
	return &escrowServiceClient{cc}
}

func (c *escrowServiceClient) Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*Receipt, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Receipt)
	err := c.cc.Invoke(ctx, EscrowService_Approve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) PreApprove(ctx context.Context, in *PreApproveRequest, opts ...grpc.CallOption) (*Receipt, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Receipt)
	err := c.cc.Invoke(ctx, EscrowService_PreApprove_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) Authorize(ctx context.Context, in *AuthorizeRequest, opts ...grpc.CallOption) (*Receipt, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Receipt)
	err := c.cc.Invoke(ctx, EscrowService_Authorize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) Capture(ctx context.Context, in *CaptureRequest, opts ...grpc.CallOption) (*Receipt, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Receipt)
	err := c.cc.Invoke(ctx, EscrowService_Capture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Receipt, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Receipt)
	err := c.cc.Invoke(ctx, EscrowService_Transfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EscrowServiceServer is the server API for EscrowService service.
// All implementations must embed UnimplementedEscrowServiceServer
// for forward compatibility.
//
// EscrowService is the external escrow/transfer capability used by the
// settlement engine. Every call blocks until the transaction is
// confirmed on chain (or fails), then returns its receipt.
type EscrowServiceServer interface {
	Approve(context.Context, *ApproveRequest) (*Receipt, error)
	PreApprove(context.Context, *PreApproveRequest) (*Receipt, error)
	Authorize(context.Context, *AuthorizeRequest) (*Receipt, error)
	Capture(context.Context, *CaptureRequest) (*Receipt, error)
	Transfer(context.Context, *TransferRequest) (*Receipt, error)
	mustEmbedUnimplementedEscrowServiceServer()
}

// UnimplementedEscrowServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEscrowServiceServer struct{}

func (UnimplementedEscrowServiceServer) Approve(context.Context, *ApproveRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method Approve not implemented")
}
func (UnimplementedEscrowServiceServer) PreApprove(context.Context, *PreApproveRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method PreApprove not implemented")
}
func (UnimplementedEscrowServiceServer) Authorize(context.Context, *AuthorizeRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method Authorize not implemented")
}
func (UnimplementedEscrowServiceServer) Capture(context.Context, *CaptureRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method Capture not implemented")
}
func (UnimplementedEscrowServiceServer) Transfer(context.Context, *TransferRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method Transfer not implemented")
}
func (UnimplementedEscrowServiceServer) mustEmbedUnimplementedEscrowServiceServer() {}
func (UnimplementedEscrowServiceServer) testEmbeddedByValue()                       {}

// UnsafeEscrowServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EscrowServiceServer will
// result in compilation errors.
type UnsafeEscrowServiceServer interface {
	mustEmbedUnimplementedEscrowServiceServer()
}

func RegisterEscrowServiceServer(s grpc.ServiceRegistrar, srv EscrowServiceServer) {
	// If the following call panics, it indicates UnimplementedEscrowServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EscrowService_ServiceDesc, srv)
}

func _EscrowService_Approve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).Approve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EscrowService_Approve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Approve(ctx, req.(*ApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_PreApprove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).PreApprove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EscrowService_PreApprove_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).PreApprove(ctx, req.(*PreApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_Authorize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuthorizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).Authorize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EscrowService_Authorize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Authorize(ctx, req.(*AuthorizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_Capture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaptureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).Capture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EscrowService_Capture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Capture(ctx, req.(*CaptureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_Transfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).Transfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EscrowService_Transfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).Transfer(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EscrowService_ServiceDesc is the grpc.ServiceDesc for EscrowService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EscrowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "escrow.EscrowService",
	HandlerType: (*EscrowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Approve",
			Handler:    _EscrowService_Approve_Handler,
		},
		{
			MethodName: "PreApprove",
			Handler:    _EscrowService_PreApprove_Handler,
		},
		{
			MethodName: "Authorize",
			Handler:    _EscrowService_Authorize_Handler,
		},
		{
			MethodName: "Capture",
			Handler:    _EscrowService_Capture_Handler,
		},
		{
			MethodName: "Transfer",
			Handler:    _EscrowService_Transfer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "escrow.proto",
}
