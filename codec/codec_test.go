package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tycoonlabs/worldmap/codec"
	"github.com/tycoonlabs/worldmap/core"
	"github.com/tycoonlabs/worldmap/route"
)

// CodecSuite groups serialization tests around one populated map.
type CodecSuite struct {
	suite.Suite
	m *core.WorldMap
}

func (s *CodecSuite) SetupTest() {
	s.m = core.NewWorldMap(core.WithMapID("province-7"))

	depot := s.m.NewNodeAt(0, 0, core.WithNodeName("Depot"), core.WithNodeKind("hub"))
	mine := s.m.NewNodeAt(30, 40, core.WithNodeKind("resource"))
	town := s.m.NewNodeAt(-12.5, 7.25)
	town.SetProperty("population", core.Num(850))
	town.SetProperty("flags", core.Nested(core.PropertyMap{"coastal": core.Bool(true)}))

	ore, err := s.m.Connect(mine.ID, depot.ID, core.WithThroughput(12), core.WithOneWay())
	s.Require().NoError(err)
	s.Require().NoError(ore.AddFlow(4.5))
	_, err = s.m.Connect(depot.ID, town.ID, core.WithEdgeProps(core.PropertyMap{
		"surface": core.Str("gravel"),
	}))
	s.Require().NoError(err)
}

// TestRoundTrip: all fields, counters and reachability survive
// marshal/unmarshal exactly.
func (s *CodecSuite) TestRoundTrip() {
	data, err := codec.Marshal(s.m)
	s.Require().NoError(err)

	back, err := codec.Unmarshal(data)
	s.Require().NoError(err)

	s.Equal(s.m.ID(), back.ID())
	s.Equal(s.m.NodeIDs(), back.NodeIDs())
	s.Equal(s.m.NodeCount(), back.NodeCount())
	s.Equal(s.m.EdgeCount(), back.EdgeCount())

	for _, orig := range s.m.Nodes() {
		got, err := back.GetNode(orig.ID)
		s.Require().NoError(err, orig.ID)
		s.Equal(orig.X, got.X)
		s.Equal(orig.Y, got.Y)
		s.Equal(orig.Name, got.Name)
		s.Equal(orig.Kind, got.Kind)
		s.True(orig.Props.Equal(got.Props), "props of %s", orig.ID)
		s.Equal(orig.ConnectedEdges(), got.ConnectedEdges())
	}
	for _, orig := range s.m.Edges() {
		got, err := back.GetEdge(orig.ID)
		s.Require().NoError(err, orig.ID)
		s.Equal(orig.From, got.From)
		s.Equal(orig.To, got.To)
		s.Equal(orig.Throughput, got.Throughput)
		s.Equal(orig.Bidirectional, got.Bidirectional)
		s.Equal(orig.CurrentFlow, got.CurrentFlow)
		s.True(orig.Props.Equal(got.Props), "props of %s", orig.ID)
	}

	// Counter continuity: the reconstructed map resumes the sequence.
	s.Equal(s.m.GenerateNodeID(), back.GenerateNodeID())
	s.Equal(s.m.GenerateEdgeID(), back.GenerateEdgeID())

	// Reachability is preserved, directionality included.
	origPath, err := route.FindPath(s.m, "node_1", "node_2")
	s.Require().NoError(err)
	backPath, err := route.FindPath(back, "node_1", "node_2")
	s.Require().NoError(err)
	s.Equal(origPath, backPath)
	_, err = route.FindPath(back, "node_0", "node_1")
	s.True(errors.Is(err, route.ErrNoRoute), "one-way ore route must stay one-way")
	s.Equal(s.m.NeighborIDs("node_0"), back.NeighborIDs("node_0"))
}

// TestEncodeNil rejects a nil map.
func (s *CodecSuite) TestEncodeNil() {
	_, err := codec.Encode(nil)
	s.True(errors.Is(err, codec.ErrNilMap))
}

// TestDecodeDanglingEdge: an edge against a missing node is inconsistent.
func (s *CodecSuite) TestDecodeDanglingEdge() {
	rec, err := codec.Encode(s.m)
	s.Require().NoError(err)
	er := rec.Edges["edge_0"]
	er.To = "ghost"
	rec.Edges["edge_0"] = er

	_, err = codec.Decode(rec)
	s.True(errors.Is(err, codec.ErrDanglingEdge), "got %v", err)
}

// TestDecodeFlowOutOfRange: flow beyond throughput is rejected.
func (s *CodecSuite) TestDecodeFlowOutOfRange() {
	rec, err := codec.Encode(s.m)
	s.Require().NoError(err)
	er := rec.Edges["edge_1"]
	er.CurrentFlow = er.Throughput + 1
	rec.Edges["edge_1"] = er

	_, err = codec.Decode(rec)
	s.True(errors.Is(err, codec.ErrFlowOutOfRange), "got %v", err)
}

// TestDecodeKeyMismatch: catalog key and embedded ID must agree.
func (s *CodecSuite) TestDecodeKeyMismatch() {
	rec, err := codec.Encode(s.m)
	s.Require().NoError(err)
	nr := rec.Nodes["node_0"]
	nr.ID = "node_99"
	rec.Nodes["node_0"] = nr

	_, err = codec.Decode(rec)
	s.True(errors.Is(err, codec.ErrMalformedRecord), "got %v", err)
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

// TestUnmarshal_BadJSON reports undecodable bytes as malformed.
func TestUnmarshal_BadJSON(t *testing.T) {
	for _, raw := range []string{`{`, `[]`, `{"nodes": 3}`} {
		_, err := codec.Unmarshal([]byte(raw))
		require.Error(t, err, raw)
		require.True(t, errors.Is(err, codec.ErrMalformedRecord), "input %s: got %v", raw, err)
	}
}

// TestDecode_NilRecord reports a nil record as malformed.
func TestDecode_NilRecord(t *testing.T) {
	_, err := codec.Decode(nil)
	require.True(t, errors.Is(err, codec.ErrMalformedRecord))
}
