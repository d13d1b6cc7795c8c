package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/astutecat/aoc-2024/internal/harness"
	"github.com/astutecat/aoc-2024/internal/parse"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// #region service-desc
// SolverServer is the server API for the aoc.Solver service.
type SolverServer interface {
	Solve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes aoc.Solver for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Solve", Handler: solveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aoc/solver.proto",
}

func solveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SolverServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: solveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SolverServer).Solve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Register adds srv to s.
func Register(s grpc.ServiceRegistrar, srv SolverServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// #endregion service-desc

// #region server
// Executor solves raw input. *harness.Runner implements it.
type Executor interface {
	RunInput(ctx context.Context, day, part int, input []byte, source string) (harness.Result, error)
}

// Server implements SolverServer over an Executor.
type Server struct {
	exec Executor
	log  *zap.Logger
}

// NewServer returns a Server that solves requests with exec.
func NewServer(exec Executor, log *zap.Logger) *Server {
	return &Server{exec: exec, log: log}
}

// Solve decodes a request, runs it and encodes the result.
func (s *Server) Solve(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.exec.RunInput(ctx, req.Day, req.Part, []byte(req.Input), "rpc")
	if err != nil {
		s.log.Debug("solve rpc failed", zap.Int("day", req.Day), zap.Int("part", req.Part), zap.Error(err))
		return nil, toStatus(err)
	}
	return encodeResult(SolveResult{
		Day:      res.Day,
		Part:     res.Part,
		Answer:   res.Answer,
		Digest:   res.Digest,
		Duration: res.Duration,
		Cached:   res.Cached,
		RunID:    res.RunID,
	}), nil
}

func toStatus(err error) error {
	var pe *parse.ParseError
	switch {
	case errors.As(err, &pe):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, pipeline.ErrUnknownDay), errors.Is(err, pipeline.ErrUnknownPart):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// #endregion server

// #region serve
// Serve listens on addr and serves exec until ctx is done.
func Serve(ctx context.Context, addr string, exec Executor, log *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return ServeListener(ctx, lis, exec, log)
}

// ServeListener serves on lis until ctx is done, then stops gracefully.
func ServeListener(ctx context.Context, lis net.Listener, exec Executor, log *zap.Logger) error {
	s := grpc.NewServer()
	Register(s, NewServer(exec, log))

	errc := make(chan error, 1)
	go func() { errc <- s.Serve(lis) }()
	log.Info("rpc server listening", zap.String("addr", lis.Addr().String()))

	select {
	case <-ctx.Done():
		s.GracefulStop()
		<-errc
		log.Info("rpc server stopped")
		return nil
	case err := <-errc:
		return fmt.Errorf("rpc serve: %w", err)
	}
}

// #endregion serve
