package escrow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/ChaosChain/fin-studio-sub002/gen/escrowpb"
)

// #region mock

type mockEscrowService struct {
	pb.EscrowServiceClient

	receipt *pb.Receipt
	err     error

	lastTransfer *pb.TransferRequest
}

func (m *mockEscrowService) Approve(_ context.Context, _ *pb.ApproveRequest, _ ...grpc.CallOption) (*pb.Receipt, error) {
	return m.receipt, m.err
}

func (m *mockEscrowService) PreApprove(_ context.Context, _ *pb.PreApproveRequest, _ ...grpc.CallOption) (*pb.Receipt, error) {
	return m.receipt, m.err
}

func (m *mockEscrowService) Authorize(_ context.Context, _ *pb.AuthorizeRequest, _ ...grpc.CallOption) (*pb.Receipt, error) {
	return m.receipt, m.err
}

func (m *mockEscrowService) Capture(_ context.Context, _ *pb.CaptureRequest, _ ...grpc.CallOption) (*pb.Receipt, error) {
	return m.receipt, m.err
}

func (m *mockEscrowService) Transfer(_ context.Context, req *pb.TransferRequest, _ ...grpc.CallOption) (*pb.Receipt, error) {
	m.lastTransfer = req
	return m.receipt, m.err
}

// #endregion mock

func TestTransfer_Confirmed(t *testing.T) {
	mock := &mockEscrowService{receipt: &pb.Receipt{TransactionId: "0xabc", Confirmed: true}}
	client := NewClientWithService(mock)

	txID, err := client.Transfer(context.Background(), "addr-1", 175_000)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if txID != "0xabc" {
		t.Errorf("tx id: got %s", txID)
	}
	if mock.lastTransfer.To != "addr-1" || mock.lastTransfer.AmountMinorUnits != 175_000 {
		t.Errorf("request: %+v", mock.lastTransfer)
	}
}

func TestTransfer_Unconfirmed(t *testing.T) {
	mock := &mockEscrowService{receipt: &pb.Receipt{TransactionId: "0xdead", Confirmed: false, Detail: "insufficient balance"}}
	client := NewClientWithService(mock)

	_, err := client.Transfer(context.Background(), "addr-1", 100)
	if err == nil {
		t.Fatal("unconfirmed receipt must be an error")
	}
	if !strings.Contains(err.Error(), "insufficient balance") {
		t.Errorf("error: %v", err)
	}
}

func TestTransfer_RPCError(t *testing.T) {
	mock := &mockEscrowService{err: errors.New("connection reset")}
	client := NewClientWithService(mock)

	if _, err := client.Transfer(context.Background(), "addr-1", 100); err == nil {
		t.Fatal("rpc error must propagate")
	}
}

func TestEscrowFlow(t *testing.T) {
	mock := &mockEscrowService{receipt: &pb.Receipt{TransactionId: "0x1", Confirmed: true}}
	client := NewClientWithService(mock)
	ctx := context.Background()

	if _, err := client.Approve(ctx, "custody", 1000); err != nil {
		t.Errorf("approve: %v", err)
	}
	if _, err := client.PreApprove(ctx, "task-1"); err != nil {
		t.Errorf("pre-approve: %v", err)
	}
	if _, err := client.Authorize(ctx, "task-1", 1000); err != nil {
		t.Errorf("authorize: %v", err)
	}
	if _, err := client.Capture(ctx, "task-1", 1000, "platform-fee:50"); err != nil {
		t.Errorf("capture: %v", err)
	}
}
