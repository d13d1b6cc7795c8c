package rpc

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "aoc.Solver"

const solveMethod = "/" + ServiceName + "/Solve"

// #region types
// SolveRequest asks the server to solve one day/part over Input.
type SolveRequest struct {
	Day   int
	Part  int
	Input string
}

// SolveResult is the server's answer to a SolveRequest.
type SolveResult struct {
	Day      int
	Part     int
	Answer   pipeline.Answer
	Digest   string
	Duration time.Duration
	Cached   bool
	RunID    string
}

// #endregion types

// #region encode
// Requests and responses travel as structpb.Struct. Answer values are sent
// as decimal strings since Struct numbers are float64.

func encodeRequest(req SolveRequest) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"day":   structpb.NewNumberValue(float64(req.Day)),
		"part":  structpb.NewNumberValue(float64(req.Part)),
		"input": structpb.NewStringValue(req.Input),
	}}
}

func decodeRequest(s *structpb.Struct) (SolveRequest, error) {
	day, err := intField(s, "day")
	if err != nil {
		return SolveRequest{}, err
	}
	part, err := intField(s, "part")
	if err != nil {
		return SolveRequest{}, err
	}
	return SolveRequest{Day: day, Part: part, Input: s.GetFields()["input"].GetStringValue()}, nil
}

func encodeResult(res SolveResult) *structpb.Struct {
	value := ""
	if res.Answer.Solved {
		value = strconv.FormatInt(res.Answer.Value, 10)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"day":         structpb.NewNumberValue(float64(res.Day)),
		"part":        structpb.NewNumberValue(float64(res.Part)),
		"solved":      structpb.NewBoolValue(res.Answer.Solved),
		"value":       structpb.NewStringValue(value),
		"digest":      structpb.NewStringValue(res.Digest),
		"duration_ns": structpb.NewStringValue(strconv.FormatInt(int64(res.Duration), 10)),
		"cached":      structpb.NewBoolValue(res.Cached),
		"run_id":      structpb.NewStringValue(res.RunID),
	}}
}

func decodeResult(s *structpb.Struct) (SolveResult, error) {
	f := s.GetFields()
	day, err := intField(s, "day")
	if err != nil {
		return SolveResult{}, err
	}
	part, err := intField(s, "part")
	if err != nil {
		return SolveResult{}, err
	}
	res := SolveResult{
		Day:    day,
		Part:   part,
		Digest: f["digest"].GetStringValue(),
		Cached: f["cached"].GetBoolValue(),
		RunID:  f["run_id"].GetStringValue(),
	}
	if f["solved"].GetBoolValue() {
		v, err := strconv.ParseInt(f["value"].GetStringValue(), 10, 64)
		if err != nil {
			return SolveResult{}, fmt.Errorf("field value: %w", err)
		}
		res.Answer = pipeline.Solved(v)
	}
	if d := f["duration_ns"].GetStringValue(); d != "" {
		ns, err := strconv.ParseInt(d, 10, 64)
		if err != nil {
			return SolveResult{}, fmt.Errorf("field duration_ns: %w", err)
		}
		res.Duration = time.Duration(ns)
	}
	return res, nil
}

func intField(s *structpb.Struct, name string) (int, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("missing field %s", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %s is not a number", name)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, fmt.Errorf("field %s: %v is not an integer", name, n.NumberValue)
	}
	return int(n.NumberValue), nil
}

// #endregion encode
