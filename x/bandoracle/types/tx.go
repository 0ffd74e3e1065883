package types

import (
	"bytes"
	"compress/gzip"
	"context"

	"github.com/gogo/protobuf/proto"
	descpb "github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
)

// MsgSetChannel binds the oracle channel used for outbound requests.
type MsgSetChannel struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty" yaml:"owner"`
	Channel string `protobuf:"bytes,2,opt,name=channel,proto3" json:"channel,omitempty" yaml:"channel"`
}

func (m *MsgSetChannel) Reset()         { *m = MsgSetChannel{} }
func (m *MsgSetChannel) String() string { return proto.CompactTextString(m) }
func (*MsgSetChannel) ProtoMessage()    {}
func (*MsgSetChannel) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{0}
}

// MsgSetChannelResponse defines the response of MsgSetChannel.
type MsgSetChannelResponse struct{}

func (m *MsgSetChannelResponse) Reset()         { *m = MsgSetChannelResponse{} }
func (m *MsgSetChannelResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSetChannelResponse) ProtoMessage()    {}
func (*MsgSetChannelResponse) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{1}
}

// MsgRegisterRequest stores a new oracle request template.
type MsgRegisterRequest struct {
	Owner          string   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty" yaml:"owner"`
	OracleScriptID uint64   `protobuf:"varint,2,opt,name=oracle_script_id,json=oracleScriptId,proto3" json:"oracle_script_id,omitempty" yaml:"oracle_script_id"`
	Symbols        []string `protobuf:"bytes,3,rep,name=symbols,proto3" json:"symbols,omitempty" yaml:"symbols"`
	Multiplier     uint64   `protobuf:"varint,4,opt,name=multiplier,proto3" json:"multiplier,omitempty" yaml:"multiplier"`
	AskCount       uint64   `protobuf:"varint,5,opt,name=ask_count,json=askCount,proto3" json:"ask_count,omitempty" yaml:"ask_count"`
	MinCount       uint64   `protobuf:"varint,6,opt,name=min_count,json=minCount,proto3" json:"min_count,omitempty" yaml:"min_count"`
}

func (m *MsgRegisterRequest) Reset()         { *m = MsgRegisterRequest{} }
func (m *MsgRegisterRequest) String() string { return proto.CompactTextString(m) }
func (*MsgRegisterRequest) ProtoMessage()    {}
func (*MsgRegisterRequest) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{2}
}

// MsgRegisterRequestResponse carries the id assigned to the new request.
type MsgRegisterRequestResponse struct {
	RequestID string `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty" yaml:"request_id"`
}

func (m *MsgRegisterRequestResponse) Reset()         { *m = MsgRegisterRequestResponse{} }
func (m *MsgRegisterRequestResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRegisterRequestResponse) ProtoMessage()    {}
func (*MsgRegisterRequestResponse) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{3}
}

// MsgSendRequest relays a registered request to BandChain.
type MsgSendRequest struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty" yaml:"sender"`
	RequestID string `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty" yaml:"request_id"`
}

func (m *MsgSendRequest) Reset()         { *m = MsgSendRequest{} }
func (m *MsgSendRequest) String() string { return proto.CompactTextString(m) }
func (*MsgSendRequest) ProtoMessage()    {}
func (*MsgSendRequest) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{4}
}

// MsgSendRequestResponse carries the packet sequence of the sent request.
type MsgSendRequestResponse struct {
	Sequence uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty" yaml:"sequence"`
}

func (m *MsgSendRequestResponse) Reset()         { *m = MsgSendRequestResponse{} }
func (m *MsgSendRequestResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSendRequestResponse) ProtoMessage()    {}
func (*MsgSendRequestResponse) Descriptor() ([]byte, []int) {
	return fileDescriptorTx, []int{5}
}

// MsgServer is the server API for the module msgs.
type MsgServer interface {
	SetChannel(context.Context, *MsgSetChannel) (*MsgSetChannelResponse, error)
	RegisterRequest(context.Context, *MsgRegisterRequest) (*MsgRegisterRequestResponse, error)
	SendRequest(context.Context, *MsgSendRequest) (*MsgSendRequestResponse, error)
}

const (
	protoPackage = "guru.bandoracle.v1"
	protoFile    = "guru/bandoracle/v1/tx.proto"
)

// fileDescriptorTx is the gzipped descriptor of the messages above. The tx
// decoder walks it to reject unknown fields.
var fileDescriptorTx = mustGzipDescriptor(&descpb.FileDescriptorProto{
	Name:    proto.String(protoFile),
	Package: proto.String(protoPackage),
	Syntax:  proto.String("proto3"),
	MessageType: []*descpb.DescriptorProto{
		messageDescriptor("MsgSetChannel",
			stringField("owner", "owner", 1),
			stringField("channel", "channel", 2),
		),
		messageDescriptor("MsgSetChannelResponse"),
		messageDescriptor("MsgRegisterRequest",
			stringField("owner", "owner", 1),
			uint64Field("oracle_script_id", "oracleScriptId", 2),
			repeated(stringField("symbols", "symbols", 3)),
			uint64Field("multiplier", "multiplier", 4),
			uint64Field("ask_count", "askCount", 5),
			uint64Field("min_count", "minCount", 6),
		),
		messageDescriptor("MsgRegisterRequestResponse",
			stringField("request_id", "requestId", 1),
		),
		messageDescriptor("MsgSendRequest",
			stringField("sender", "sender", 1),
			stringField("request_id", "requestId", 2),
		),
		messageDescriptor("MsgSendRequestResponse",
			uint64Field("sequence", "sequence", 1),
		),
	},
})

func init() {
	proto.RegisterFile(protoFile, fileDescriptorTx)
	proto.RegisterType((*MsgSetChannel)(nil), protoPackage+".MsgSetChannel")
	proto.RegisterType((*MsgSetChannelResponse)(nil), protoPackage+".MsgSetChannelResponse")
	proto.RegisterType((*MsgRegisterRequest)(nil), protoPackage+".MsgRegisterRequest")
	proto.RegisterType((*MsgRegisterRequestResponse)(nil), protoPackage+".MsgRegisterRequestResponse")
	proto.RegisterType((*MsgSendRequest)(nil), protoPackage+".MsgSendRequest")
	proto.RegisterType((*MsgSendRequestResponse)(nil), protoPackage+".MsgSendRequestResponse")
}

func messageDescriptor(name string, fields ...*descpb.FieldDescriptorProto) *descpb.DescriptorProto {
	return &descpb.DescriptorProto{
		Name:  proto.String(name),
		Field: fields,
	}
}

func stringField(name, jsonName string, number int32) *descpb.FieldDescriptorProto {
	return &descpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(number),
		Label:    descpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func uint64Field(name, jsonName string, number int32) *descpb.FieldDescriptorProto {
	return &descpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(number),
		Label:    descpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descpb.FieldDescriptorProto_TYPE_UINT64.Enum(),
	}
}

func repeated(field *descpb.FieldDescriptorProto) *descpb.FieldDescriptorProto {
	field.Label = descpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return field
}

func mustGzipDescriptor(fd *descpb.FileDescriptorProto) []byte {
	bz, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
