// Package escrow wraps the gRPC connection to the external escrow
// service. Generate the stubs with:
//
//	protoc --go_out=. --go-grpc_out=. proto/escrow.proto
package escrow

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ChaosChain/fin-studio-sub002/gen/escrowpb"
)

// #region client-struct

// Client wraps the gRPC connection to the escrow service. It satisfies
// the settlement engine's Transport interface: each method is an awaited
// remote call returning a transaction id once the receipt confirms.
type Client struct {
	conn   *grpc.ClientConn
	client pb.EscrowServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the escrow gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewEscrowServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.EscrowServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region approve

// Approve grants the spender an allowance over the settlement amount.
func (c *Client) Approve(ctx context.Context, spender string, amount int64) (string, error) {
	resp, err := c.client.Approve(ctx, &pb.ApproveRequest{
		Spender:          spender,
		AmountMinorUnits: amount,
	})
	if err != nil {
		return "", fmt.Errorf("approve rpc: %w", err)
	}
	return confirmed(resp)
}

// #endregion approve

// #region pre-approve

// PreApprove registers payment info with the escrow ahead of transfers.
func (c *Client) PreApprove(ctx context.Context, paymentInfo string) (string, error) {
	resp, err := c.client.PreApprove(ctx, &pb.PreApproveRequest{
		PaymentInfo: paymentInfo,
	})
	if err != nil {
		return "", fmt.Errorf("pre-approve rpc: %w", err)
	}
	return confirmed(resp)
}

// #endregion pre-approve

// #region authorize

// Authorize places the amount on hold in escrow custody.
func (c *Client) Authorize(ctx context.Context, paymentInfo string, amount int64) (string, error) {
	resp, err := c.client.Authorize(ctx, &pb.AuthorizeRequest{
		PaymentInfo:      paymentInfo,
		AmountMinorUnits: amount,
	})
	if err != nil {
		return "", fmt.Errorf("authorize rpc: %w", err)
	}
	return confirmed(resp)
}

// #endregion authorize

// #region capture

// Capture settles a previously authorized hold, net of the fee info.
func (c *Client) Capture(ctx context.Context, paymentInfo string, amount int64, feeInfo string) (string, error) {
	resp, err := c.client.Capture(ctx, &pb.CaptureRequest{
		PaymentInfo:      paymentInfo,
		AmountMinorUnits: amount,
		FeeInfo:          feeInfo,
	})
	if err != nil {
		return "", fmt.Errorf("capture rpc: %w", err)
	}
	return confirmed(resp)
}

// #endregion capture

// #region transfer

// Transfer moves the amount to the recipient and waits for confirmation.
func (c *Client) Transfer(ctx context.Context, to string, amount int64) (string, error) {
	resp, err := c.client.Transfer(ctx, &pb.TransferRequest{
		To:               to,
		AmountMinorUnits: amount,
	})
	if err != nil {
		return "", fmt.Errorf("transfer rpc: %w", err)
	}
	return confirmed(resp)
}

// #endregion transfer

// #region receipt

func confirmed(r *pb.Receipt) (string, error) {
	if !r.Confirmed {
		return "", fmt.Errorf("transaction %s not confirmed: %s", r.TransactionId, r.Detail)
	}
	return r.TransactionId, nil
}

// #endregion receipt
