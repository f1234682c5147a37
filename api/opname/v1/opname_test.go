package opnamev1

import (
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptorMatchesServiceDescs(t *testing.T) {
	services := File_opname_v1_opname_proto.Services()
	for _, desc := range []grpc.ServiceDesc{OpnameService_ServiceDesc, InventoryService_ServiceDesc} {
		sd := services.ByName(protoreflect.FullName(desc.ServiceName).Name())
		if sd == nil || string(sd.FullName()) != desc.ServiceName {
			t.Errorf("service %s missing from descriptor", desc.ServiceName)
			continue
		}
		if sd.Methods().Len() != len(desc.Methods) {
			t.Errorf("%s: descriptor has %d methods, service desc %d", desc.ServiceName, sd.Methods().Len(), len(desc.Methods))
		}
		for _, m := range desc.Methods {
			if sd.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
				t.Errorf("%s: method %s missing from descriptor", desc.ServiceName, m.MethodName)
			}
		}
	}
}

func TestSessionWireRoundTrip(t *testing.T) {
	closedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	in := &FinalizeSessionResponse{
		Session: &Session{
			Id:         "11111111-1111-1111-1111-111111111111",
			Title:      "Q1 Audit",
			Status:     "COMPLETED",
			TotalItems: 3,
			CreatedAt:  timestamppb.New(closedAt.Add(-26 * time.Hour)),
			ClosedAt:   timestamppb.New(closedAt),
		},
		Adjustments:  []*Adjustment{{MaterialNo: "MAT-2", Sloc: "WH1", SystemQty: "20", PhysicalQty: "25"}},
		MatchedLines: 2,
	}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &FinalizeSessionResponse{}
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n in: %v\nout: %v", in, out)
	}
	if !out.GetSession().GetClosedAt().AsTime().Equal(closedAt) {
		t.Fatalf("closed_at = %v, want %v", out.GetSession().GetClosedAt().AsTime(), closedAt)
	}
}
