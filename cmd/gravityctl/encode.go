package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	gravitytypes "github.com/gravityprotocol/gravity-adapter/x/gravity/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

const flagBase58 = "base58"

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode instruction data and payloads",
	}
	cmd.PersistentFlags().Bool(flagBase58, false, "print base58 instead of hex")
	cmd.AddCommand(
		encodeOperationCmd(),
		encodeUnwrapCmd(),
		encodeGravityUpdateCmd(),
		encodeNebulaHashCmd(),
		encodeNebulaSubscribeCmd(),
	)
	return cmd
}

func printEncoded(cmd *cobra.Command, data []byte) error {
	b58, err := cmd.Flags().GetBool(flagBase58)
	if err != nil {
		return err
	}
	if b58 {
		cmd.Println(base58.Encode(data))
		return nil
	}
	cmd.Println(hex.EncodeToString(data))
	return nil
}

func printMsg(cmd *cobra.Command, msg commontypes.Msg) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	data, err := msg.Pack()
	if err != nil {
		return err
	}
	return printEncoded(cmd, data)
}

func parseAmountAndReceiver(args []string) (float64, porttypes.ForeignAddress, error) {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, porttypes.ForeignAddress{}, fmt.Errorf("amount: %w", err)
	}
	receiver, err := solana.PublicKeyFromBase58(args[1])
	if err != nil {
		return 0, porttypes.ForeignAddress{}, fmt.Errorf("receiver: %w", err)
	}
	return amount, porttypes.ForeignAddress(receiver), nil
}

func parseID(s string) (commontypes.SwapID, error) {
	if s == "" {
		return commontypes.NewID(), nil
	}
	var id commontypes.SwapID
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(id) {
		return id, fmt.Errorf("id must be %d hex encoded bytes", len(id))
	}
	copy(id[:], raw)
	return id, nil
}

func parseKeys(args []string) ([]solana.PublicKey, error) {
	keys := make([]solana.PublicKey, 0, len(args))
	for _, arg := range args {
		key, err := solana.PublicKeyFromBase58(arg)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func encodeOperationCmd() *cobra.Command {
	var (
		action string
		id     string
		pad    bool
	)
	cmd := &cobra.Command{
		Use:   "operation [amount] [receiver]",
		Short: "Encode a port operation payload",
		Long:  "Encode a port operation. receiver is a base58 key; id is 32 hex characters and is generated when empty.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(action) != 1 {
				return fmt.Errorf("action must be a single character, got %q", action)
			}
			amount, receiver, err := parseAmountAndReceiver(args)
			if err != nil {
				return err
			}
			swapID, err := parseID(id)
			if err != nil {
				return err
			}

			data := porttypes.NewPortOperation(action[0], swapID, amount, receiver).Pack()
			if pad {
				data = append(data, make([]byte, nebulatypes.DataHashAlloc-len(data))...)
			}
			return printEncoded(cmd, data)
		},
	}
	cmd.Flags().StringVar(&action, "action", string(porttypes.ActionMint), "operation action: m, u or c")
	cmd.Flags().StringVar(&id, "id", "", "swap id as hex")
	cmd.Flags().BoolVar(&pad, "pad", false, "pad the payload to a 64 byte nebula value")
	return cmd
}

func encodeUnwrapCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "unwrap [amount] [receiver]",
		Short: "Encode a CreateTransferUnwrapRequest for an IB or LU port",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, receiver, err := parseAmountAndReceiver(args)
			if err != nil {
				return err
			}
			requestID, err := parseID(id)
			if err != nil {
				return err
			}
			return printMsg(cmd, porttypes.NewMsgCreateTransferUnwrapRequest(requestID, amount, receiver))
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "request id as hex")
	return cmd
}

func encodeGravityUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gravity-update [round] [consul]...",
		Short: "Encode a gravity UpdateConsuls instruction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			round, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("round: %w", err)
			}
			consuls, err := parseKeys(args[1:])
			if err != nil {
				return err
			}
			return printMsg(cmd, gravitytypes.NewMsgUpdateConsuls(consuls, round))
		},
	}
}

func encodeNebulaHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nebula-hash [value-hex]",
		Short: "Encode the SendHashValue committing a nebula value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("value: %w", err)
			}
			var value nebulatypes.DataHash
			if len(raw) > len(value) {
				return fmt.Errorf("value longer than %d bytes", len(value))
			}
			copy(value[:], raw)
			return printMsg(cmd, nebulatypes.NewMsgSendHashValue(nebulatypes.HashValue(value)))
		},
	}
}

func encodeNebulaSubscribeCmd() *cobra.Command {
	var (
		id               string
		minConfirmations uint8
		reward           uint64
	)
	cmd := &cobra.Command{
		Use:   "nebula-subscribe [contract]",
		Short: "Encode a nebula Subscribe instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := solana.PublicKeyFromBase58(args[0])
			if err != nil {
				return fmt.Errorf("contract: %w", err)
			}
			subID, err := parseID(id)
			if err != nil {
				return err
			}
			return printMsg(cmd, nebulatypes.NewMsgSubscribe(contract, minConfirmations, reward, subID))
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "subscription id as hex")
	cmd.Flags().Uint8Var(&minConfirmations, "min-confirmations", 1, "confirmations required by the subscriber")
	cmd.Flags().Uint64Var(&reward, "reward", 0, "reward per delivered value")
	return cmd
}
