package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/gravityprotocol/gravity-adapter/app"
	"github.com/gravityprotocol/gravity-adapter/config"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

var (
	Version = "dev"
	Commit  = ""
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		encodeCmd(),
		inspectCmd(),
		pdaCmd(),
		newIDCmd(),
		feeCmd(),
		simulateCmd(),
		versionCmd(),
	)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return config.Config{}, err
	}
	if home != "" {
		return config.Load(home)
	}
	cfg, err := config.LoadDefaultConfig()
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func pdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pda [gravity|ibport|luport] [program-id]",
		Short: "Derive the program address a port or nebula signs with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(args[0])
			if err != nil {
				return err
			}
			programID, err := solana.PublicKeyFromBase58(args[1])
			if err != nil {
				return fmt.Errorf("program id: %w", err)
			}
			key, bump, err := commontypes.FindProgramAddress(seed, programID)
			if err != nil {
				return err
			}
			cmd.Printf("%s %d\n", key, bump)
			return nil
		},
	}
}

func parseSeed(s string) (commontypes.PDASeed, error) {
	for _, seed := range []commontypes.PDASeed{commontypes.IBPortSeed, commontypes.LUPortSeed, commontypes.GravitySeed} {
		if seed.String() == s {
			return seed, nil
		}
	}
	return 0, fmt.Errorf("unknown seed %q", s)
}

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-id",
		Short: "Generate a swap or subscription id",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			id := commontypes.NewID()
			cmd.Printf("hex:    %s\n", hex.EncodeToString(id[:]))
			cmd.Printf("base58: %s\n", base58.Encode(id[:]))
		},
	}
}

func feeCmd() *cobra.Command {
	var decimals uint8
	cmd := &cobra.Command{
		Use:   "fee [ui-amount]",
		Short: "Split an amount into the transferred part and the operational fee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			amount, err := commontypes.UIAmountToAmount(ui, decimals)
			if err != nil {
				return err
			}
			after, fee := commontypes.ApplyFeeLamports(amount, decimals)
			cmd.Printf("amount: %d\n", amount)
			cmd.Printf("after:  %d (%s)\n", after, formatAmount(after, decimals))
			cmd.Printf("fee:    %d (%s)\n", fee, formatAmount(fee, decimals))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&decimals, "decimals", porttypes.DefaultDecimals, "mint decimals")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gravityctl version info",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("Name:    %s\n", app.Name)
			cmd.Printf("Version: %s\n", Version)
			cmd.Printf("Commit:  %s\n", Commit)
		},
	}
}
