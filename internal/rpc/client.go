package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region client-struct
// Client calls a remote aoc.Solver service.
type Client struct {
	conn *grpc.ClientConn
	cc   grpc.ClientConnInterface
}

// #endregion client-struct

// #region constructor
// NewClient connects to the solver service at addr.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, cc: conn}, nil
}

// NewClientWithConn creates a Client over an existing connection. Close
// leaves cc open.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region solve
// Solve asks the server for the answer of req.Day/req.Part over req.Input.
func (c *Client) Solve(ctx context.Context, req SolveRequest) (SolveResult, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, solveMethod, encodeRequest(req), out); err != nil {
		return SolveResult{}, fmt.Errorf("solve rpc: %w", err)
	}
	res, err := decodeResult(out)
	if err != nil {
		return SolveResult{}, fmt.Errorf("decode solve response: %w", err)
	}
	return res, nil
}

// #endregion solve
