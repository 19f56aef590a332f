package catalog

import (
	"encoding/binary"

	"github.com/2x3systems/orca/orca"
	"github.com/gogo/protobuf/proto"
)

// CatalogState is the catalog header, stored under gCatalogStateKey.
type CatalogState struct {
	MajorVers  int32    `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers  int32    `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	NumEntries []uint64 `protobuf:"varint,3,rep,packed,name=NumEntries,proto3" json:"NumEntries,omitempty"` // indexed by graphlet size
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}

// SignatureEntry is one stored signature matrix.
// NumNodes and NumEdges guard against digest collisions.
type SignatureEntry struct {
	Size     int32   `protobuf:"varint,1,opt,name=Size,proto3" json:"Size,omitempty"`
	NumNodes int32   `protobuf:"varint,2,opt,name=NumNodes,proto3" json:"NumNodes,omitempty"`
	NumEdges int32   `protobuf:"varint,3,opt,name=NumEdges,proto3" json:"NumEdges,omitempty"`
	Counts   []int64 `protobuf:"varint,4,rep,packed,name=Counts,proto3" json:"Counts,omitempty"`
}

func (m *SignatureEntry) Reset()         { *m = SignatureEntry{} }
func (m *SignatureEntry) String() string { return proto.CompactTextString(m) }
func (*SignatureEntry) ProtoMessage()    {}

func (m *SignatureEntry) Matrix() (*orca.SignatureMatrix, error) {
	return orca.NewSignatureMatrixFromCounts(int(m.NumNodes), orca.GraphletSize(m.Size), m.Counts)
}

// entryKey is the badger key of a SignatureEntry: prefix, graphlet size, big-endian graph digest.
type entryKey [10]byte

const kEntryPrefix = 0x01

func formEntryKey(size orca.GraphletSize, digest uint64) entryKey {
	var key entryKey
	key[0] = kEntryPrefix
	key[1] = byte(size)
	binary.BigEndian.PutUint64(key[2:], digest)
	return key
}
