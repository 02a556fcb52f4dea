package app

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/gravityprotocol/gravity-adapter/host/spltoken"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// tokenInstruction retargets a token builder at the configured token program.
func (app *GravityApp) tokenInstruction(ix *token.Instruction) (solana.Instruction, error) {
	return porttypes.TokenInstruction(app.Programs.Token, ix)
}

// CreateMint allocates and initializes a mint controlled by authority.
func (app *GravityApp) CreateMint(ctx context.Context, mint, authority solana.PublicKey, decimals uint8) error {
	if err := app.Runtime.CreateAccount(mint, app.Programs.Token, spltoken.MintLen); err != nil {
		return err
	}
	ix, err := app.tokenInstruction(token.NewInitializeMint2Instruction(decimals, authority, solana.PublicKey{}, mint).Build())
	if err != nil {
		return err
	}
	return app.Runtime.ExecuteInstruction(ctx, ix)
}

// CreateTokenAccount allocates and initializes a token account of mint held by
// owner.
func (app *GravityApp) CreateTokenAccount(ctx context.Context, key, mint, owner solana.PublicKey) error {
	if err := app.Runtime.CreateAccount(key, app.Programs.Token, spltoken.AccountLen); err != nil {
		return err
	}
	ix, err := app.tokenInstruction(token.NewInitializeAccount3Instruction(owner, key, mint).Build())
	if err != nil {
		return err
	}
	return app.Runtime.ExecuteInstruction(ctx, ix)
}

// Approve lets delegate spend amount from source on behalf of owner.
func (app *GravityApp) Approve(ctx context.Context, source, delegate, owner solana.PublicKey, amount uint64) error {
	ix, err := app.tokenInstruction(token.NewApproveInstruction(amount, source, delegate, owner, nil).Build())
	if err != nil {
		return err
	}
	return app.Runtime.ExecuteInstruction(ctx, ix, owner)
}

// Transfer moves amount between token accounts signed by owner.
func (app *GravityApp) Transfer(ctx context.Context, source, destination, owner solana.PublicKey, amount uint64) error {
	ix, err := app.tokenInstruction(token.NewTransferInstruction(amount, source, destination, owner, nil).Build())
	if err != nil {
		return err
	}
	return app.Runtime.ExecuteInstruction(ctx, ix, owner)
}

// MintTo issues amount of mint to destination signed by authority.
func (app *GravityApp) MintTo(ctx context.Context, mint, destination, authority solana.PublicKey, amount uint64) error {
	ix, err := app.tokenInstruction(token.NewMintToInstruction(amount, mint, destination, authority, nil).Build())
	if err != nil {
		return err
	}
	return app.Runtime.ExecuteInstruction(ctx, ix, authority)
}

// TokenBalance returns the amount held by a token account.
func (app *GravityApp) TokenBalance(key solana.PublicKey) (uint64, error) {
	_, data, err := app.Runtime.Account(key)
	if err != nil {
		return 0, err
	}
	acc, err := spltoken.DecodeAccount(data)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// MintInfo decodes a mint account.
func (app *GravityApp) MintInfo(mint solana.PublicKey) (*token.Mint, error) {
	_, data, err := app.Runtime.Account(mint)
	if err != nil {
		return nil, err
	}
	return spltoken.DecodeMint(data)
}

// PortState decodes the state account of an IB or LU port.
func (app *GravityApp) PortState(key solana.PublicKey) (*porttypes.PortState, error) {
	_, data, err := app.Runtime.Account(key)
	if err != nil {
		return nil, err
	}
	return porttypes.LoadState(data)
}

// Authority returns the PDA a program signs with for seed.
func Authority(seed commontypes.PDASeed, programID solana.PublicKey) (solana.PublicKey, error) {
	key, _, err := commontypes.FindProgramAddress(seed, programID)
	return key, err
}
