package calendar

import (
	"github.com/astutecat/aoc-2024/internal/day01"
	"github.com/astutecat/aoc-2024/internal/day02"
	"github.com/astutecat/aoc-2024/internal/day03"
	"github.com/astutecat/aoc-2024/internal/day04"
	"github.com/astutecat/aoc-2024/internal/pipeline"
)

// Default returns a registry holding all days.
func Default() *pipeline.Registry {
	return pipeline.NewRegistry(
		day01.New(),
		day02.New(),
		day03.New(),
		day04.New(),
	)
}
