package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gravityprotocol/gravity-adapter/app"
	"github.com/gravityprotocol/gravity-adapter/logger"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

func simulateCmd() *cobra.Command {
	var (
		oracles  int
		inbound  float64
		outbound float64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run an IB port round trip on an in-process runtime",
		Long: "Deploys gravity, a nebula and an IB port, mints an inbound transfer through a nebula pulse, " +
			"then unwraps part of it and confirms the request.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if oracles < 1 || oracles > commontypes.MaxSigners {
				return fmt.Errorf("oracles must be between 1 and %d", commontypes.MaxSigners)
			}
			if outbound > inbound {
				return fmt.Errorf("outbound %v exceeds inbound %v", outbound, inbound)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			zl := logger.Init(cmd.ErrOrStderr(), "gravityctl", cfg)

			gravityApp, err := app.NewGravityApp(logger.NewAppLogger(zl), cfg)
			if err != nil {
				return err
			}
			sim := app.NewBridgeSimulation(gravityApp, oracles, inbound, outbound)
			if err := sim.Run(cmd.Context()); err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Step", "Balance", "Supply", "Pending")
			for _, step := range sim.Steps {
				_ = table.Append([]string{
					step.Name,
					formatAmount(step.Balance, sim.Decimals),
					formatAmount(step.Supply, sim.Decimals),
					strconv.Itoa(step.Pending),
				})
			}
			return table.Render()
		},
	}
	cmd.Flags().IntVar(&oracles, "oracles", 3, "number of nebula and port oracles")
	cmd.Flags().Float64Var(&inbound, "inbound", 2.5, "ui amount minted by the inbound transfer")
	cmd.Flags().Float64Var(&outbound, "outbound", 1, "ui amount unwrapped back")
	return cmd
}

func formatAmount(amount uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).String()
}
