package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/harness"
	"github.com/astutecat/aoc-2024/internal/rpc"
)

// #region remote-cmd
func (a *app) remoteCmd() *cobra.Command {
	var (
		addr      string
		inputPath string
		example   bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "remote <day> <part>",
		Short: "Solve one part on a running aoc server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			part, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid part %q", args[1])
			}
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.RPC.Addr
			}

			var input []byte
			if inputPath != "" {
				input, err = os.ReadFile(inputPath)
			} else {
				input, err = harness.LoadInput(a.cfg.DataDir, day, part, sourceOf(example))
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			c, err := rpc.NewClient(addr)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			res, err := c.Solve(ctx, rpc.SolveRequest{Day: day, Part: part, Input: string(input)})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), harness.Result{
				Day:      res.Day,
				Part:     res.Part,
				Answer:   res.Answer,
				Duration: res.Duration,
				Cached:   res.Cached,
			})
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", "", "server address (default rpc.addr from config)")
	f.StringVarP(&inputPath, "input", "i", "", "read input from this file")
	f.BoolVarP(&example, "example", "e", false, "send the example input")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

// #endregion remote-cmd
