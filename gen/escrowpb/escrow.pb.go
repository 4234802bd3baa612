// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: escrow.proto

package escrowpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ApproveRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Spender          string                 `protobuf:"bytes,1,opt,name=spender,proto3" json:"spender,omitempty"`
	AmountMinorUnits int64                  `protobuf:"varint,2,opt,name=amount_minor_units,json=amountMinorUnits,proto3" json:"amount_minor_units,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ApproveRequest) Reset() {
	*x = ApproveRequest{}
	mi := &file_escrow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveRequest) ProtoMessage() {}

func (x *ApproveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveRequest.ProtoReflect.Descriptor instead.
func (*ApproveRequest) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{0}
}

func (x *ApproveRequest) GetSpender() string {
	if x != nil {
		return x.Spender
	}
	return ""
}

func (x *ApproveRequest) GetAmountMinorUnits() int64 {
	if x != nil {
		return x.AmountMinorUnits
	}
	return 0
}

type PreApproveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PaymentInfo   string                 `protobuf:"bytes,1,opt,name=payment_info,json=paymentInfo,proto3" json:"payment_info,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreApproveRequest) Reset() {
	*x = PreApproveRequest{}
	mi := &file_escrow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreApproveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreApproveRequest) ProtoMessage() {}

func (x *PreApproveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreApproveRequest.ProtoReflect.Descriptor instead.
func (*PreApproveRequest) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{1}
}

func (x *PreApproveRequest) GetPaymentInfo() string {
	if x != nil {
		return x.PaymentInfo
	}
	return ""
}

type AuthorizeRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	PaymentInfo      string                 `protobuf:"bytes,1,opt,name=payment_info,json=paymentInfo,proto3" json:"payment_info,omitempty"`
	AmountMinorUnits int64                  `protobuf:"varint,2,opt,name=amount_minor_units,json=amountMinorUnits,proto3" json:"amount_minor_units,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AuthorizeRequest) Reset() {
	*x = AuthorizeRequest{}
	mi := &file_escrow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthorizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthorizeRequest) ProtoMessage() {}

func (x *AuthorizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthorizeRequest.ProtoReflect.Descriptor instead.
func (*AuthorizeRequest) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{2}
}

func (x *AuthorizeRequest) GetPaymentInfo() string {
	if x != nil {
		return x.PaymentInfo
	}
	return ""
}

func (x *AuthorizeRequest) GetAmountMinorUnits() int64 {
	if x != nil {
		return x.AmountMinorUnits
	}
	return 0
}

type CaptureRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	PaymentInfo      string                 `protobuf:"bytes,1,opt,name=payment_info,json=paymentInfo,proto3" json:"payment_info,omitempty"`
	AmountMinorUnits int64                  `protobuf:"varint,2,opt,name=amount_minor_units,json=amountMinorUnits,proto3" json:"amount_minor_units,omitempty"`
	FeeInfo          string                 `protobuf:"bytes,3,opt,name=fee_info,json=feeInfo,proto3" json:"fee_info,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CaptureRequest) Reset() {
	*x = CaptureRequest{}
	mi := &file_escrow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptureRequest) ProtoMessage() {}

func (x *CaptureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptureRequest.ProtoReflect.Descriptor instead.
func (*CaptureRequest) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{3}
}

func (x *CaptureRequest) GetPaymentInfo() string {
	if x != nil {
		return x.PaymentInfo
	}
	return ""
}

func (x *CaptureRequest) GetAmountMinorUnits() int64 {
	if x != nil {
		return x.AmountMinorUnits
	}
	return 0
}

func (x *CaptureRequest) GetFeeInfo() string {
	if x != nil {
		return x.FeeInfo
	}
	return ""
}

type TransferRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	To               string                 `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	AmountMinorUnits int64                  `protobuf:"varint,2,opt,name=amount_minor_units,json=amountMinorUnits,proto3" json:"amount_minor_units,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *TransferRequest) Reset() {
	*x = TransferRequest{}
	mi := &file_escrow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransferRequest) ProtoMessage() {}

func (x *TransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransferRequest.ProtoReflect.Descriptor instead.
func (*TransferRequest) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{4}
}

func (x *TransferRequest) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *TransferRequest) GetAmountMinorUnits() int64 {
	if x != nil {
		return x.AmountMinorUnits
	}
	return 0
}

type Receipt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Confirmed     bool                   `protobuf:"varint,2,opt,name=confirmed,proto3" json:"confirmed,omitempty"`
	Detail        string                 `protobuf:"bytes,3,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_escrow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_escrow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_escrow_proto_rawDescGZIP(), []int{5}
}

func (x *Receipt) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *Receipt) GetConfirmed() bool {
	if x != nil {
		return x.Confirmed
	}
	return false
}

func (x *Receipt) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

var File_escrow_proto protoreflect.FileDescriptor

const file_escrow_proto_rawDesc = "" +
	"\n" +
	"\fescrow.proto\x12\x06escrow\"X\n" +
	"\x0eApproveRequest\x12\x18\n" +
	"\aspender\x18\x01 \x01(\tR\aspender\x12,\n" +
	"\x12amount_minor_units\x18\x02 \x01(\x03R\x10amountMinorUnits\"6\n" +
	"\x11PreApproveRequest\x12!\n" +
	"\fpayment_info\x18\x01 \x01(\tR\vpaymentInfo\"c\n" +
	"\x10AuthorizeRequest\x12!\n" +
	"\fpayment_info\x18\x01 \x01(\tR\vpaymentInfo\x12,\n" +
	"\x12amount_minor_units\x18\x02 \x01(\x03R\x10amountMinorUnits\"|\n" +
	"\x0eCaptureRequest\x12!\n" +
	"\fpayment_info\x18\x01 \x01(\tR\vpaymentInfo\x12,\n" +
	"\x12amount_minor_units\x18\x02 \x01(\x03R\x10amountMinorUnits\x12\x19\n" +
	"\bfee_info\x18\x03 \x01(\tR\afeeInfo\"O\n" +
	"\x0fTransferRequest\x12\x0e\n" +
	"\x02to\x18\x01 \x01(\tR\x02to\x12,\n" +
	"\x12amount_minor_units\x18\x02 \x01(\x03R\x10amountMinorUnits\"f\n" +
	"\aReceipt\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\x12\x1c\n" +
	"\tconfirmed\x18\x02 \x01(\bR\tconfirmed\x12\x16\n" +
	"\x06detail\x18\x03 \x01(\tR\x06detail2\x9f\x02\n" +
	"\rEscrowService\x122\n" +
	"\aApprove\x12\x16.escrow.ApproveRequest\x1a\x0f.escrow.Receipt\x128\n" +
	"\n" +
	"PreApprove\x12\x19.escrow.PreApproveRequest\x1a\x0f.escrow.Receipt\x126\n" +
	"\tAuthorize\x12\x18.escrow.AuthorizeRequest\x1a\x0f.escrow.Receipt\x122\n" +
	"\aCapture\x12\x16.escrow.CaptureRequest\x1a\x0f.escrow.Receipt\x124\n" +
	"\bTransfer\x12\x17.escrow.TransferRequest\x1a\x0f.escrow.ReceiptB6Z4github.com/ChaosChain/fin-studio-sub002/gen/escrowpbb\x06proto3"

var (
	file_escrow_proto_rawDescOnce sync.Once
	file_escrow_proto_rawDescData []byte
)

func file_escrow_proto_rawDescGZIP() []byte {
	file_escrow_proto_rawDescOnce.Do(func() {
		file_escrow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_escrow_proto_rawDesc), len(file_escrow_proto_rawDesc)))
	})
	return file_escrow_proto_rawDescData
}

var file_escrow_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_escrow_proto_goTypes = []any{
	(*ApproveRequest)(nil),    // 0: escrow.ApproveRequest
	(*PreApproveRequest)(nil), // 1: escrow.PreApproveRequest
	(*AuthorizeRequest)(nil),  // 2: escrow.AuthorizeRequest
	(*CaptureRequest)(nil),    // 3: escrow.CaptureRequest
	(*TransferRequest)(nil),   // 4: escrow.TransferRequest
	(*Receipt)(nil),           // 5: escrow.Receipt
}
var file_escrow_proto_depIdxs = []int32{
	0, // 0: escrow.EscrowService.Approve:input_type -> escrow.ApproveRequest
	1, // 1: escrow.EscrowService.PreApprove:input_type -> escrow.PreApproveRequest
	2, // 2: escrow.EscrowService.Authorize:input_type -> escrow.AuthorizeRequest
	3, // 3: escrow.EscrowService.Capture:input_type -> escrow.CaptureRequest
	4, // 4: escrow.EscrowService.Transfer:input_type -> escrow.TransferRequest
	5, // 5: escrow.EscrowService.Approve:output_type -> escrow.Receipt
	5, // 6: escrow.EscrowService.PreApprove:output_type -> escrow.Receipt
	5, // 7: escrow.EscrowService.Authorize:output_type -> escrow.Receipt
	5, // 8: escrow.EscrowService.Capture:output_type -> escrow.Receipt
	5, // 9: escrow.EscrowService.Transfer:output_type -> escrow.Receipt
	5, // [5:10] is the sub-list for method output_type
	0, // [0:5] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_escrow_proto_init() }
func file_escrow_proto_init() {
	if File_escrow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_escrow_proto_rawDesc), len(file_escrow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_escrow_proto_goTypes,
		DependencyIndexes: file_escrow_proto_depIdxs,
		MessageInfos:      file_escrow_proto_msgTypes,
	}.Build()
	File_escrow_proto = out.File
	file_escrow_proto_goTypes = nil
	file_escrow_proto_depIdxs = nil
}
