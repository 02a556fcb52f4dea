package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	gravitytypes "github.com/gravityprotocol/gravity-adapter/x/gravity/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeCmd(t *testing.T) {
	receiver := solana.NewWallet().PublicKey()
	id := "0102030405060708090a0b0c0d0e0f10"

	out, err := execute(t, "encode", "operation", "1.5", receiver.String(), "--action", "u", "--id", id, "--pad")
	require.NoError(t, err)

	raw, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Len(t, raw, 64)

	op, err := porttypes.UnpackPortOperation(raw)
	require.NoError(t, err)
	require.Equal(t, porttypes.ActionUnlock, op.Action)
	require.Equal(t, 1.5, op.Amount)
	require.Equal(t, porttypes.ForeignAddress(receiver), op.Receiver)
	require.Equal(t, id, hex.EncodeToString(op.SwapID[:]))

	tests := []struct {
		name string
		args []string
	}{
		{name: "fail; bad amount", args: []string{"encode", "operation", "x", receiver.String()}},
		{name: "fail; bad receiver", args: []string{"encode", "operation", "1", "not-a-key"}},
		{name: "fail; short id", args: []string{"encode", "operation", "1", receiver.String(), "--id", "0102"}},
		{name: "fail; long action", args: []string{"encode", "operation", "1", receiver.String(), "--action", "mint"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
		})
	}
}

func TestEncodeMsgCmds(t *testing.T) {
	consul := solana.NewWallet().PublicKey()

	out, err := execute(t, "encode", "gravity-update", "7", consul.String(), "--base58")
	require.NoError(t, err)
	raw, err := base58.Decode(strings.TrimSpace(out))
	require.NoError(t, err)
	decoded, err := gravitytypes.DecodeMsg(raw)
	require.NoError(t, err)
	require.Equal(t, gravitytypes.NewMsgUpdateConsuls([]solana.PublicKey{consul}, 7), decoded)

	id := commontypes.NewID()
	out, err = execute(t, "encode", "nebula-subscribe", consul.String(), "--id", hex.EncodeToString(id[:]), "--reward", "5")
	require.NoError(t, err)
	raw, err = hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	msg, err := nebulatypes.DecodeMsg(raw)
	require.NoError(t, err)
	require.Equal(t, nebulatypes.NewMsgSubscribe(consul, 1, 5, id), msg)

	_, err = execute(t, "encode", "nebula-hash", hex.EncodeToString(make([]byte, 65)))
	require.ErrorContains(t, err, "longer than")
}

func TestInspectCmd(t *testing.T) {
	state := porttypes.NewPortState()
	state.IsInitialized = true
	state.TokenMint = solana.NewWallet().PublicKey()
	require.NoError(t, state.CreateTransferUnwrapRequest(porttypes.SwapID{0xab}, 1, state.TokenMint, porttypes.ForeignAddress{}, 10))
	data := make([]byte, porttypes.StateLen)
	require.NoError(t, state.Save(data))

	file := filepath.Join(t.TempDir(), "port.hex")
	require.NoError(t, os.WriteFile(file, []byte(hex.EncodeToString(data)), 0o600))

	out, err := execute(t, "inspect", "port", file)
	require.NoError(t, err)
	require.Contains(t, out, state.TokenMint.String())
	require.Contains(t, out, "ab000000000000000000000000000000")
	require.Contains(t, out, "new")

	empty := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(empty, make([]byte, 64), 0o600))
	_, err = execute(t, "inspect", "nebula", empty)
	require.Error(t, err)

	_, err = execute(t, "inspect", "vault", file)
	require.ErrorContains(t, err, "unknown state kind")
}

func TestPDACmd(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	expected, bump, err := commontypes.FindProgramAddress(commontypes.LUPortSeed, programID)
	require.NoError(t, err)

	out, err := execute(t, "pda", "luport", programID.String())
	require.NoError(t, err)
	require.Equal(t, expected.String()+" "+strconv.Itoa(int(bump)), strings.TrimSpace(out))

	_, err = execute(t, "pda", "vault", programID.String())
	require.ErrorContains(t, err, "unknown seed")
}

func TestFeeCmd(t *testing.T) {
	out, err := execute(t, "fee", "100", "--decimals", "2")
	require.NoError(t, err)
	require.Contains(t, out, "amount: 10000")
	require.Contains(t, out, "after:  9990 (99.9)")
	require.Contains(t, out, "fee:    10 (0.1)")
}

func TestSimulateCmd(t *testing.T) {
	out, err := execute(t, "simulate", "--oracles", "2", "--inbound", "4", "--outbound", "1.5")
	require.NoError(t, err)
	for _, step := range []string{"deploy", "pulse", "mint", "unwrap", "confirm"} {
		require.Contains(t, out, step)
	}
	require.Contains(t, out, "2.5")

	_, err = execute(t, "simulate", "--inbound", "1", "--outbound", "2")
	require.ErrorContains(t, err, "exceeds inbound")

	_, err = execute(t, "simulate", "--oracles", "12")
	require.Error(t, err)
}
