package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	gravitytypes "github.com/gravityprotocol/gravity-adapter/x/gravity/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [gravity|nebula|port] [file]",
		Short: "Decode a state account dump",
		Long:  "Decode raw account data read from file. Files holding hex text are decoded first.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAccountData(args[1])
			if err != nil {
				return err
			}
			var rows [][]string
			switch args[0] {
			case "gravity":
				rows, err = gravityRows(data)
			case "nebula":
				rows, err = nebulaRows(data)
			case "port":
				rows, err = portRows(data)
			default:
				return fmt.Errorf("unknown state kind %q", args[0])
			}
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Field", "Value")
			for _, row := range rows {
				_ = table.Append(row)
			}
			return table.Render()
		},
	}
}

func readAccountData(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if decoded, err := hex.DecodeString(strings.TrimSpace(string(raw))); err == nil {
		return decoded, nil
	}
	return raw, nil
}

func joinKeys(keys []solana.PublicKey) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.String()
	}
	return strings.Join(s, "\n")
}

func gravityRows(data []byte) ([][]string, error) {
	state, err := gravitytypes.LoadState(data)
	if err != nil {
		return nil, err
	}
	return [][]string{
		{"initializer", state.Initializer.String()},
		{"multisig", state.Multisig.String()},
		{"bft", strconv.Itoa(int(state.BFT))},
		{"last round", strconv.FormatUint(state.LastRound, 10)},
		{"consuls", joinKeys(state.Consuls)},
	}, nil
}

func nebulaRows(data []byte) ([][]string, error) {
	state, err := nebulatypes.LoadState(data)
	if err != nil {
		return nil, err
	}
	rows := [][]string{
		{"initializer", state.Initializer.String()},
		{"gravity", state.GravityContract.String()},
		{"multisig", state.Multisig.String()},
		{"data type", state.DataType.String()},
		{"bft", strconv.Itoa(int(state.BFT))},
		{"last round", strconv.FormatUint(state.LastRound, 10)},
		{"last pulse", strconv.FormatUint(state.LastPulseID, 10)},
		{"pending pulses", strconv.Itoa(state.Pulses.Len())},
		{"oracles", joinKeys(state.Oracles)},
	}
	for _, id := range state.Subscriptions.Keys() {
		sub, _ := state.Subscriptions.Get(id)
		rows = append(rows, []string{"subscription " + hex.EncodeToString(id[:]), sub.ContractAddress.String()})
	}
	return rows, nil
}

func portRows(data []byte) ([][]string, error) {
	state, err := porttypes.LoadState(data)
	if err != nil {
		return nil, err
	}
	rows := [][]string{
		{"initializer", state.Initializer.String()},
		{"nebula", state.Nebula.String()},
		{"token program", state.TokenAddress.String()},
		{"token mint", state.TokenMint.String()},
		{"oracles", joinKeys(state.Oracles)},
		{"pending requests", strconv.Itoa(state.Requests.Len())},
	}
	for _, id := range state.SwapStatus.Keys() {
		status, _ := state.SwapStatus.Get(id)
		rows = append(rows, []string{"swap " + hex.EncodeToString(id[:]), status.String()})
	}
	return rows, nil
}
