// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: investigation/v1/investigation.proto

package investigationv1

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

type DocumentUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentUpload) Reset() {
	*x = DocumentUpload{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentUpload) ProtoMessage() {}

func (x *DocumentUpload) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentUpload.ProtoReflect.Descriptor instead.
func (*DocumentUpload) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{0}
}

func (x *DocumentUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DocumentUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadBatchRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Either an existing folder id, or a folder name (with an optional
	// owning-organization id) that the server resolves or creates.
	FolderId       string            `protobuf:"bytes,1,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	Documents      []*DocumentUpload `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	FolderName     string            `protobuf:"bytes,3,opt,name=folder_name,json=folderName,proto3" json:"folder_name,omitempty"`
	OrganizationId string            `protobuf:"bytes,4,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadBatchRequest) Reset() {
	*x = UploadBatchRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBatchRequest) ProtoMessage() {}

func (x *UploadBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBatchRequest.ProtoReflect.Descriptor instead.
func (*UploadBatchRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{1}
}

func (x *UploadBatchRequest) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

func (x *UploadBatchRequest) GetDocuments() []*DocumentUpload {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *UploadBatchRequest) GetFolderName() string {
	if x != nil {
		return x.FolderName
	}
	return ""
}

func (x *UploadBatchRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

type UploadAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadAck) Reset() {
	*x = UploadAck{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadAck) ProtoMessage() {}

func (x *UploadAck) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadAck.ProtoReflect.Descriptor instead.
func (*UploadAck) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{2}
}

func (x *UploadAck) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UploadAck) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadAck) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadAck) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type UploadBatchResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Results      []*UploadAck           `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	Accepted     int32                  `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Deduplicated int32                  `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Rejected     int32                  `protobuf:"varint,4,opt,name=rejected,proto3" json:"rejected,omitempty"`
	// the folder the batch landed in, useful when it was created by name
	FolderId      string `protobuf:"bytes,5,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadBatchResponse) Reset() {
	*x = UploadBatchResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadBatchResponse) ProtoMessage() {}

func (x *UploadBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadBatchResponse.ProtoReflect.Descriptor instead.
func (*UploadBatchResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{3}
}

func (x *UploadBatchResponse) GetResults() []*UploadAck {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *UploadBatchResponse) GetAccepted() int32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *UploadBatchResponse) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *UploadBatchResponse) GetRejected() int32 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *UploadBatchResponse) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FolderId      string                 `protobuf:"bytes,2,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	DocType       string                 `protobuf:"bytes,4,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	State         string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	PairId        string                 `protobuf:"bytes,6,opt,name=pair_id,json=pairId,proto3" json:"pair_id,omitempty"`
	CaseId        string                 `protobuf:"bytes,7,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	ErrorDetail   string                 `protobuf:"bytes,8,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	RetryCount    int32                  `protobuf:"varint,9,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Document) GetPairId() string {
	if x != nil {
		return x.PairId
	}
	return ""
}

func (x *Document) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *Document) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

func (x *Document) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FolderId      string                 `protobuf:"bytes,1,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

func (x *ListDocumentsRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetCaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCaseRequest) Reset() {
	*x = GetCaseRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCaseRequest) ProtoMessage() {}

func (x *GetCaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCaseRequest.ProtoReflect.Descriptor instead.
func (*GetCaseRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{9}
}

func (x *GetCaseRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type Vehicle struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plate         string                 `protobuf:"bytes,1,opt,name=plate,proto3" json:"plate,omitempty"`
	Make          string                 `protobuf:"bytes,2,opt,name=make,proto3" json:"make,omitempty"`
	Model         string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	Year          int32                  `protobuf:"varint,4,opt,name=year,proto3" json:"year,omitempty"`
	Color         string                 `protobuf:"bytes,5,opt,name=color,proto3" json:"color,omitempty"`
	Vin           string                 `protobuf:"bytes,6,opt,name=vin,proto3" json:"vin,omitempty"`
	EngineNumber  string                 `protobuf:"bytes,7,opt,name=engine_number,json=engineNumber,proto3" json:"engine_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vehicle) Reset() {
	*x = Vehicle{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vehicle) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vehicle) ProtoMessage() {}

func (x *Vehicle) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vehicle.ProtoReflect.Descriptor instead.
func (*Vehicle) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{10}
}

func (x *Vehicle) GetPlate() string {
	if x != nil {
		return x.Plate
	}
	return ""
}

func (x *Vehicle) GetMake() string {
	if x != nil {
		return x.Make
	}
	return ""
}

func (x *Vehicle) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Vehicle) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Vehicle) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *Vehicle) GetVin() string {
	if x != nil {
		return x.Vin
	}
	return ""
}

func (x *Vehicle) GetEngineNumber() string {
	if x != nil {
		return x.EngineNumber
	}
	return ""
}

type Owner struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NationalId    string                 `protobuf:"bytes,1,opt,name=national_id,json=nationalId,proto3" json:"national_id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Owner) Reset() {
	*x = Owner{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Owner) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Owner) ProtoMessage() {}

func (x *Owner) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Owner.ProtoReflect.Descriptor instead.
func (*Owner) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{11}
}

func (x *Owner) GetNationalId() string {
	if x != nil {
		return x.NationalId
	}
	return ""
}

func (x *Owner) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Owner) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type Address struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Street        string                 `protobuf:"bytes,1,opt,name=street,proto3" json:"street,omitempty"`
	Locality      string                 `protobuf:"bytes,2,opt,name=locality,proto3" json:"locality,omitempty"`
	Region        string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Address) Reset() {
	*x = Address{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Address) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Address) ProtoMessage() {}

func (x *Address) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Address.ProtoReflect.Descriptor instead.
func (*Address) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{12}
}

func (x *Address) GetStreet() string {
	if x != nil {
		return x.Street
	}
	return ""
}

func (x *Address) GetLocality() string {
	if x != nil {
		return x.Locality
	}
	return ""
}

func (x *Address) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Address) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type Case struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FolderId      string                 `protobuf:"bytes,2,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	CaseNumber    string                 `protobuf:"bytes,3,opt,name=case_number,json=caseNumber,proto3" json:"case_number,omitempty"`
	LegalContext  string                 `protobuf:"bytes,4,opt,name=legal_context,json=legalContext,proto3" json:"legal_context,omitempty"`
	Warnings      []string               `protobuf:"bytes,5,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Vehicle       *Vehicle               `protobuf:"bytes,6,opt,name=vehicle,proto3" json:"vehicle,omitempty"`
	Owners        []*Owner               `protobuf:"bytes,7,rep,name=owners,proto3" json:"owners,omitempty"`
	Addresses     []*Address             `protobuf:"bytes,8,rep,name=addresses,proto3" json:"addresses,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Case) Reset() {
	*x = Case{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Case) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Case) ProtoMessage() {}

func (x *Case) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Case.ProtoReflect.Descriptor instead.
func (*Case) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{13}
}

func (x *Case) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Case) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

func (x *Case) GetCaseNumber() string {
	if x != nil {
		return x.CaseNumber
	}
	return ""
}

func (x *Case) GetLegalContext() string {
	if x != nil {
		return x.LegalContext
	}
	return ""
}

func (x *Case) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *Case) GetVehicle() *Vehicle {
	if x != nil {
		return x.Vehicle
	}
	return nil
}

func (x *Case) GetOwners() []*Owner {
	if x != nil {
		return x.Owners
	}
	return nil
}

func (x *Case) GetAddresses() []*Address {
	if x != nil {
		return x.Addresses
	}
	return nil
}

func (x *Case) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Case) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetCaseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Case          *Case                  `protobuf:"bytes,1,opt,name=case,proto3" json:"case,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCaseResponse) Reset() {
	*x = GetCaseResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCaseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCaseResponse) ProtoMessage() {}

func (x *GetCaseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCaseResponse.ProtoReflect.Descriptor instead.
func (*GetCaseResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{14}
}

func (x *GetCaseResponse) GetCase() *Case {
	if x != nil {
		return x.Case
	}
	return nil
}

type ListCasesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FolderId      string                 `protobuf:"bytes,1,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCasesRequest) Reset() {
	*x = ListCasesRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCasesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCasesRequest) ProtoMessage() {}

func (x *ListCasesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCasesRequest.ProtoReflect.Descriptor instead.
func (*ListCasesRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{15}
}

func (x *ListCasesRequest) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

type ListCasesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cases         []*Case                `protobuf:"bytes,1,rep,name=cases,proto3" json:"cases,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCasesResponse) Reset() {
	*x = ListCasesResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCasesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCasesResponse) ProtoMessage() {}

func (x *ListCasesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCasesResponse.ProtoReflect.Descriptor instead.
func (*ListCasesResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{16}
}

func (x *ListCasesResponse) GetCases() []*Case {
	if x != nil {
		return x.Cases
	}
	return nil
}

type ExportCasesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FolderId      string                 `protobuf:"bytes,1,opt,name=folder_id,json=folderId,proto3" json:"folder_id,omitempty"`
	OutputPath    string                 `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCasesRequest) Reset() {
	*x = ExportCasesRequest{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCasesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCasesRequest) ProtoMessage() {}

func (x *ExportCasesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCasesRequest.ProtoReflect.Descriptor instead.
func (*ExportCasesRequest) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{17}
}

func (x *ExportCasesRequest) GetFolderId() string {
	if x != nil {
		return x.FolderId
	}
	return ""
}

func (x *ExportCasesRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportCasesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	CaseCount     int32                  `protobuf:"varint,2,opt,name=case_count,json=caseCount,proto3" json:"case_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCasesResponse) Reset() {
	*x = ExportCasesResponse{}
	mi := &file_investigation_v1_investigation_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCasesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCasesResponse) ProtoMessage() {}

func (x *ExportCasesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_investigation_v1_investigation_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCasesResponse.ProtoReflect.Descriptor instead.
func (*ExportCasesResponse) Descriptor() ([]byte, []int) {
	return file_investigation_v1_investigation_proto_rawDescGZIP(), []int{18}
}

func (x *ExportCasesResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *ExportCasesResponse) GetCaseCount() int32 {
	if x != nil {
		return x.CaseCount
	}
	return 0
}

var File_investigation_v1_investigation_proto protoreflect.FileDescriptor

const file_investigation_v1_investigation_proto_rawDesc = "" +
	"\n" +
	"$investigation/v1/investigation.proto\x12\x10investigation.v1\"F\n" +
	"\x0eDocumentUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\xbb\x01\n" +
	"\x12UploadBatchRequest\x12\x1b\n" +
	"\tfolder_id\x18\x01 \x01(\tR\bfolderId\x12>\n" +
	"\tdocuments\x18\x02 \x03(\v2 .investigation.v1.DocumentUploadR\tdocuments\x12\x1f\n" +
	"\vfolder_name\x18\x03 \x01(\tR\n" +
	"folderName\x12'\n" +
	"\x0forganization_id\x18\x04 \x01(\tR\x0eorganizationId\"\x82\x01\n" +
	"\tUploadAck\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\xc5\x01\n" +
	"\x13UploadBatchResponse\x125\n" +
	"\aresults\x18\x01 \x03(\v2\x1b.investigation.v1.UploadAckR\aresults\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\x05R\baccepted\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\x05R\fdeduplicated\x12\x1a\n" +
	"\brejected\x18\x04 \x01(\x05R\brejected\x12\x1b\n" +
	"\tfolder_id\x18\x05 \x01(\tR\bfolderId\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xb8\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfolder_id\x18\x02 \x01(\tR\bfolderId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bdoc_type\x18\x04 \x01(\tR\adocType\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\x12\x17\n" +
	"\apair_id\x18\x06 \x01(\tR\x06pairId\x12\x17\n" +
	"\acase_id\x18\a \x01(\tR\x06caseId\x12!\n" +
	"\ferror_detail\x18\b \x01(\tR\verrorDetail\x12\x1f\n" +
	"\vretry_count\x18\t \x01(\x05R\n" +
	"retryCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"M\n" +
	"\x13GetDocumentResponse\x126\n" +
	"\bdocument\x18\x01 \x01(\v2\x1a.investigation.v1.DocumentR\bdocument\"I\n" +
	"\x14ListDocumentsRequest\x12\x1b\n" +
	"\tfolder_id\x18\x01 \x01(\tR\bfolderId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\"Q\n" +
	"\x15ListDocumentsResponse\x128\n" +
	"\tdocuments\x18\x01 \x03(\v2\x1a.investigation.v1.DocumentR\tdocuments\")\n" +
	"\x0eGetCaseRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\"\xaa\x01\n" +
	"\aVehicle\x12\x14\n" +
	"\x05plate\x18\x01 \x01(\tR\x05plate\x12\x12\n" +
	"\x04make\x18\x02 \x01(\tR\x04make\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12\x12\n" +
	"\x04year\x18\x04 \x01(\x05R\x04year\x12\x14\n" +
	"\x05color\x18\x05 \x01(\tR\x05color\x12\x10\n" +
	"\x03vin\x18\x06 \x01(\tR\x03vin\x12#\n" +
	"\rengine_number\x18\a \x01(\tR\fengineNumber\"]\n" +
	"\x05Owner\x12\x1f\n" +
	"\vnational_id\x18\x01 \x01(\tR\n" +
	"nationalId\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"m\n" +
	"\aAddress\x12\x16\n" +
	"\x06street\x18\x01 \x01(\tR\x06street\x12\x1a\n" +
	"\blocality\x18\x02 \x01(\tR\blocality\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\"\xf2\x02\n" +
	"\x04Case\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfolder_id\x18\x02 \x01(\tR\bfolderId\x12\x1f\n" +
	"\vcase_number\x18\x03 \x01(\tR\n" +
	"caseNumber\x12#\n" +
	"\rlegal_context\x18\x04 \x01(\tR\flegalContext\x12\x1a\n" +
	"\bwarnings\x18\x05 \x03(\tR\bwarnings\x123\n" +
	"\avehicle\x18\x06 \x01(\v2\x19.investigation.v1.VehicleR\avehicle\x12/\n" +
	"\x06owners\x18\a \x03(\v2\x17.investigation.v1.OwnerR\x06owners\x127\n" +
	"\taddresses\x18\b \x03(\v2\x19.investigation.v1.AddressR\taddresses\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"=\n" +
	"\x0fGetCaseResponse\x12*\n" +
	"\x04case\x18\x01 \x01(\v2\x16.investigation.v1.CaseR\x04case\"/\n" +
	"\x10ListCasesRequest\x12\x1b\n" +
	"\tfolder_id\x18\x01 \x01(\tR\bfolderId\"A\n" +
	"\x11ListCasesResponse\x12,\n" +
	"\x05cases\x18\x01 \x03(\v2\x16.investigation.v1.CaseR\x05cases\"R\n" +
	"\x12ExportCasesRequest\x12\x1b\n" +
	"\tfolder_id\x18\x01 \x01(\tR\bfolderId\x12\x1f\n" +
	"\voutput_path\x18\x02 \x01(\tR\n" +
	"outputPath\"U\n" +
	"\x13ExportCasesResponse\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\x12\x1d\n" +
	"\n" +
	"case_count\x18\x02 \x01(\x05R\tcaseCount2\xac\x02\n" +
	"\x10IngestionService\x12Z\n" +
	"\vUploadBatch\x12$.investigation.v1.UploadBatchRequest\x1a%.investigation.v1.UploadBatchResponse\x12Z\n" +
	"\vGetDocument\x12$.investigation.v1.GetDocumentRequest\x1a%.investigation.v1.GetDocumentResponse\x12`\n" +
	"\rListDocuments\x12&.investigation.v1.ListDocumentsRequest\x1a'.investigation.v1.ListDocumentsResponse2\x90\x02\n" +
	"\fCasesService\x12N\n" +
	"\aGetCase\x12 .investigation.v1.GetCaseRequest\x1a!.investigation.v1.GetCaseResponse\x12T\n" +
	"\tListCases\x12\".investigation.v1.ListCasesRequest\x1a#.investigation.v1.ListCasesResponse\x12Z\n" +
	"\vExportCases\x12$.investigation.v1.ExportCasesRequest\x1a%.investigation.v1.ExportCasesResponseBdZbgithub.com/patriciodunstan/back-investigacion-vehiculos/gen/proto/investigation/v1;investigationv1b\x06proto3"

var (
	file_investigation_v1_investigation_proto_rawDescOnce sync.Once
	file_investigation_v1_investigation_proto_rawDescData []byte
)

func file_investigation_v1_investigation_proto_rawDescGZIP() []byte {
	file_investigation_v1_investigation_proto_rawDescOnce.Do(func() {
		file_investigation_v1_investigation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_investigation_v1_investigation_proto_rawDesc), len(file_investigation_v1_investigation_proto_rawDesc)))
	})
	return file_investigation_v1_investigation_proto_rawDescData
}

var file_investigation_v1_investigation_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_investigation_v1_investigation_proto_goTypes = []any{
	(*DocumentUpload)(nil),        // 0: investigation.v1.DocumentUpload
	(*UploadBatchRequest)(nil),    // 1: investigation.v1.UploadBatchRequest
	(*UploadAck)(nil),             // 2: investigation.v1.UploadAck
	(*UploadBatchResponse)(nil),   // 3: investigation.v1.UploadBatchResponse
	(*GetDocumentRequest)(nil),    // 4: investigation.v1.GetDocumentRequest
	(*Document)(nil),              // 5: investigation.v1.Document
	(*GetDocumentResponse)(nil),   // 6: investigation.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),  // 7: investigation.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil), // 8: investigation.v1.ListDocumentsResponse
	(*GetCaseRequest)(nil),        // 9: investigation.v1.GetCaseRequest
	(*Vehicle)(nil),               // 10: investigation.v1.Vehicle
	(*Owner)(nil),                 // 11: investigation.v1.Owner
	(*Address)(nil),               // 12: investigation.v1.Address
	(*Case)(nil),                  // 13: investigation.v1.Case
	(*GetCaseResponse)(nil),       // 14: investigation.v1.GetCaseResponse
	(*ListCasesRequest)(nil),      // 15: investigation.v1.ListCasesRequest
	(*ListCasesResponse)(nil),     // 16: investigation.v1.ListCasesResponse
	(*ExportCasesRequest)(nil),    // 17: investigation.v1.ExportCasesRequest
	(*ExportCasesResponse)(nil),   // 18: investigation.v1.ExportCasesResponse
}
var file_investigation_v1_investigation_proto_depIdxs = []int32{
	0,  // 0: investigation.v1.UploadBatchRequest.documents:type_name -> investigation.v1.DocumentUpload
	2,  // 1: investigation.v1.UploadBatchResponse.results:type_name -> investigation.v1.UploadAck
	5,  // 2: investigation.v1.GetDocumentResponse.document:type_name -> investigation.v1.Document
	5,  // 3: investigation.v1.ListDocumentsResponse.documents:type_name -> investigation.v1.Document
	10, // 4: investigation.v1.Case.vehicle:type_name -> investigation.v1.Vehicle
	11, // 5: investigation.v1.Case.owners:type_name -> investigation.v1.Owner
	12, // 6: investigation.v1.Case.addresses:type_name -> investigation.v1.Address
	13, // 7: investigation.v1.GetCaseResponse.case:type_name -> investigation.v1.Case
	13, // 8: investigation.v1.ListCasesResponse.cases:type_name -> investigation.v1.Case
	1,  // 9: investigation.v1.IngestionService.UploadBatch:input_type -> investigation.v1.UploadBatchRequest
	4,  // 10: investigation.v1.IngestionService.GetDocument:input_type -> investigation.v1.GetDocumentRequest
	7,  // 11: investigation.v1.IngestionService.ListDocuments:input_type -> investigation.v1.ListDocumentsRequest
	9,  // 12: investigation.v1.CasesService.GetCase:input_type -> investigation.v1.GetCaseRequest
	15, // 13: investigation.v1.CasesService.ListCases:input_type -> investigation.v1.ListCasesRequest
	17, // 14: investigation.v1.CasesService.ExportCases:input_type -> investigation.v1.ExportCasesRequest
	3,  // 15: investigation.v1.IngestionService.UploadBatch:output_type -> investigation.v1.UploadBatchResponse
	6,  // 16: investigation.v1.IngestionService.GetDocument:output_type -> investigation.v1.GetDocumentResponse
	8,  // 17: investigation.v1.IngestionService.ListDocuments:output_type -> investigation.v1.ListDocumentsResponse
	14, // 18: investigation.v1.CasesService.GetCase:output_type -> investigation.v1.GetCaseResponse
	16, // 19: investigation.v1.CasesService.ListCases:output_type -> investigation.v1.ListCasesResponse
	18, // 20: investigation.v1.CasesService.ExportCases:output_type -> investigation.v1.ExportCasesResponse
	15, // [15:21] is the sub-list for method output_type
	9,  // [9:15] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_investigation_v1_investigation_proto_init() }
func file_investigation_v1_investigation_proto_init() {
	if File_investigation_v1_investigation_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_investigation_v1_investigation_proto_rawDesc), len(file_investigation_v1_investigation_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_investigation_v1_investigation_proto_goTypes,
		DependencyIndexes: file_investigation_v1_investigation_proto_depIdxs,
		MessageInfos:      file_investigation_v1_investigation_proto_msgTypes,
	}.Build()
	File_investigation_v1_investigation_proto = out.File
	file_investigation_v1_investigation_proto_goTypes = nil
	file_investigation_v1_investigation_proto_depIdxs = nil
}
