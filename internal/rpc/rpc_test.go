package rpc

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/astutecat/aoc-2024/internal/calendar"
	"github.com/astutecat/aoc-2024/internal/harness"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

const dayOneExample = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"

// #region helpers
func dial(t *testing.T, lis *bufconn.Listener) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func startServer(t *testing.T, exec Executor) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	Register(s, NewServer(exec, zap.NewNop()))
	go s.Serve(lis)
	t.Cleanup(s.Stop)
	return NewClientWithConn(dial(t, lis))
}

func runnerServer(t *testing.T) *Client {
	return startServer(t, harness.NewRunner(calendar.Default(), harness.Config{}))
}

type fixedExecutor struct {
	res harness.Result
}

func (f fixedExecutor) RunInput(_ context.Context, day, part int, _ []byte, _ string) (harness.Result, error) {
	res := f.res
	res.Day, res.Part = day, part
	return res, nil
}

// #endregion helpers

// #region solve-tests
func TestSolve_Example(t *testing.T) {
	c := runnerServer(t)

	res, err := c.Solve(context.Background(), SolveRequest{Day: 1, Part: 1, Input: dayOneExample})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
	assert.Equal(t, 1, res.Part)
	assert.Equal(t, pipeline.Solved(11), res.Answer)
	assert.Equal(t, harness.Digest([]byte(dayOneExample)), res.Digest)
	assert.False(t, res.Cached)
}

func TestSolve_Unsolved(t *testing.T) {
	c := runnerServer(t)

	res, err := c.Solve(context.Background(), SolveRequest{Day: 4, Part: 2, Input: "XMAS\n"})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Unsolved, res.Answer)
}

func TestSolve_ErrorCodes(t *testing.T) {
	c := runnerServer(t)

	tests := []struct {
		name string
		req  SolveRequest
		want codes.Code
	}{
		{"parse error", SolveRequest{Day: 1, Part: 1, Input: "1 x\n"}, codes.InvalidArgument},
		{"unknown day", SolveRequest{Day: 9, Part: 1, Input: "x"}, codes.NotFound},
		{"unknown part", SolveRequest{Day: 1, Part: 3, Input: dayOneExample}, codes.NotFound},
		{"single pair", SolveRequest{Day: 1, Part: 1, Input: "1 2\n"}, codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Solve(context.Background(), tt.req)
			assert.Equal(t, tt.want, status.Code(err), "err: %v", err)
		})
	}
}

func TestSolve_MalformedRequest(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	Register(s, NewServer(harness.NewRunner(calendar.Default(), harness.Config{}), zap.NewNop()))
	go s.Serve(lis)
	t.Cleanup(s.Stop)
	conn := dial(t, lis)

	in := &structpb.Struct{Fields: map[string]*structpb.Value{
		"day":   structpb.NewNumberValue(1.5),
		"part":  structpb.NewNumberValue(1),
		"input": structpb.NewStringValue(dayOneExample),
	}}
	err := conn.Invoke(context.Background(), solveMethod, in, new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	delete(in.Fields, "day")
	err = conn.Invoke(context.Background(), solveMethod, in, new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSolve_PreservesInt64(t *testing.T) {
	c := startServer(t, fixedExecutor{res: harness.Result{
		Answer:   pipeline.Solved(math.MaxInt64),
		Duration: 1500 * time.Microsecond,
		Cached:   true,
		RunID:    "run-1",
	}})

	res, err := c.Solve(context.Background(), SolveRequest{Day: 2, Part: 2})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Solved(math.MaxInt64), res.Answer)
	assert.Equal(t, 1500*time.Microsecond, res.Duration)
	assert.True(t, res.Cached)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, 2, res.Day)
}

// #endregion solve-tests

// #region serve-tests
func TestServeListener_StopsOnCancel(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- ServeListener(ctx, lis, harness.NewRunner(calendar.Default(), harness.Config{}), zap.NewNop())
	}()

	c := NewClientWithConn(dial(t, lis))
	res, err := c.Solve(context.Background(), SolveRequest{Day: 1, Part: 2, Input: dayOneExample})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Solved(31), res.Answer)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestClient_CloseWithoutOwnConn(t *testing.T) {
	c := NewClientWithConn(nil)
	assert.NoError(t, c.Close())
}

// #endregion serve-tests
