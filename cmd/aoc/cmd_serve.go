package main

import (
	"github.com/spf13/cobra"

	"github.com/astutecat/aoc-2024/internal/rpc"
)

// #region serve-cmd
func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.RPC.Addr
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return rpc.Serve(cmd.Context(), addr, a.runner(st, a.cfg.Cache), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default rpc.addr from config)")
	return cmd
}

// #endregion serve-cmd
