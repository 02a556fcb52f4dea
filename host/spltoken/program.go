package spltoken

import (
	"context"
	"math"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/gravityprotocol/gravity-adapter/host"
)

// Program is an in-process token program covering the instructions the ports
// rely on.
type Program struct {
	logger log.Logger
}

var _ host.Program = (*Program)(nil)

// NewProgram creates a token program.
func NewProgram(logger log.Logger) *Program {
	return &Program{logger: logger.With(log.ModuleKey, ModuleName)}
}

// ProgramID is the id the token program is registered under.
func ProgramID() solana.PublicKey {
	return token.ProgramID
}

func (p *Program) Process(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, input []byte) error {
	inst, err := token.DecodeInstruction(host.Metas(accounts), input)
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidInstruction, err.Error())
	}

	switch ix := inst.Impl.(type) {
	case *token.InitializeMint2:
		return p.initializeMint(programID, accounts, ix)
	case *token.InitializeAccount3:
		return p.initializeAccount(programID, accounts, ix)
	case *token.MintTo:
		return p.mintTo(programID, accounts, *ix.Amount)
	case *token.Burn:
		return p.burn(programID, accounts, *ix.Amount)
	case *token.Transfer:
		return p.transfer(programID, accounts, *ix.Amount)
	case *token.Approve:
		return p.approve(programID, accounts, *ix.Amount)
	case *token.SetAuthority:
		return p.setAuthority(programID, accounts, ix)
	default:
		return sdkerrors.Wrapf(ErrInvalidInstruction, "unsupported instruction %s", token.InstructionIDToName(inst.TypeID.Uint8()))
	}
}

func requireAccounts(accounts []*host.AccountInfo, n int) error {
	if len(accounts) < n {
		return sdkerrors.Wrapf(ErrNotEnoughAccountKeys, "expected %d, got %d", n, len(accounts))
	}
	return nil
}

func ownedBy(programID solana.PublicKey, infos ...*host.AccountInfo) error {
	for _, info := range infos {
		if !info.Owner.Equals(programID) {
			return sdkerrors.Wrapf(ErrIncorrectProgramID, "account %s", info.Key)
		}
	}
	return nil
}

func (p *Program) initializeMint(programID solana.PublicKey, accounts []*host.AccountInfo, ix *token.InitializeMint2) error {
	if err := requireAccounts(accounts, 1); err != nil {
		return err
	}
	info := accounts[0]
	if err := ownedBy(programID, info); err != nil {
		return err
	}

	mint, err := DecodeMint(info.Data)
	if err != nil {
		return err
	}
	if mint.IsInitialized {
		return sdkerrors.Wrapf(ErrAlreadyInUse, "mint %s", info.Key)
	}

	mint.MintAuthority = ix.MintAuthority
	mint.FreezeAuthority = ix.FreezeAuthority
	mint.Decimals = *ix.Decimals
	mint.IsInitialized = true
	return EncodeMint(mint, info.Data)
}

func (p *Program) initializeAccount(programID solana.PublicKey, accounts []*host.AccountInfo, ix *token.InitializeAccount3) error {
	if err := requireAccounts(accounts, 2); err != nil {
		return err
	}
	info, mintInfo := accounts[0], accounts[1]
	if err := ownedBy(programID, info, mintInfo); err != nil {
		return err
	}

	acc, err := DecodeAccount(info.Data)
	if err != nil {
		return err
	}
	if acc.State != token.Uninitialized {
		return sdkerrors.Wrapf(ErrAlreadyInUse, "token account %s", info.Key)
	}
	mint, err := DecodeMint(mintInfo.Data)
	if err != nil {
		return err
	}
	if !mint.IsInitialized {
		return sdkerrors.Wrapf(ErrUninitializedState, "mint %s", mintInfo.Key)
	}

	acc.Mint = mintInfo.Key
	acc.Owner = *ix.Owner
	acc.State = token.Initialized
	return EncodeAccount(acc, info.Data)
}

func (p *Program) mintTo(programID solana.PublicKey, accounts []*host.AccountInfo, amount uint64) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	mintInfo, destInfo, authority := accounts[0], accounts[1], accounts[2]
	if err := ownedBy(programID, mintInfo, destInfo); err != nil {
		return err
	}

	mint, err := loadMint(mintInfo)
	if err != nil {
		return err
	}
	dest, err := loadAccount(destInfo)
	if err != nil {
		return err
	}
	if !dest.Mint.Equals(mintInfo.Key) {
		return sdkerrors.Wrapf(ErrMintMismatch, "destination %s", destInfo.Key)
	}
	if mint.MintAuthority == nil {
		return sdkerrors.Wrapf(ErrFixedSupply, "mint %s", mintInfo.Key)
	}
	if err := ValidateOwner(programID, *mint.MintAuthority, authority, accounts[3:]); err != nil {
		return err
	}

	if mint.Supply > math.MaxUint64-amount || dest.Amount > math.MaxUint64-amount {
		return ErrOverflow
	}
	mint.Supply += amount
	dest.Amount += amount

	p.logger.Debug("mint to", "mint", mintInfo.Key.String(), "destination", destInfo.Key.String(), "amount", amount)
	if err := EncodeAccount(dest, destInfo.Data); err != nil {
		return err
	}
	return EncodeMint(mint, mintInfo.Data)
}

func (p *Program) burn(programID solana.PublicKey, accounts []*host.AccountInfo, amount uint64) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	sourceInfo, mintInfo, authority := accounts[0], accounts[1], accounts[2]
	if err := ownedBy(programID, sourceInfo, mintInfo); err != nil {
		return err
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	mint, err := loadMint(mintInfo)
	if err != nil {
		return err
	}
	if !source.Mint.Equals(mintInfo.Key) {
		return sdkerrors.Wrapf(ErrMintMismatch, "source %s", sourceInfo.Key)
	}
	if source.Amount < amount {
		return sdkerrors.Wrapf(ErrInsufficientFunds, "balance %d, burn %d", source.Amount, amount)
	}
	if err := spendAuthority(programID, source, authority, accounts[3:], amount); err != nil {
		return err
	}

	source.Amount -= amount
	mint.Supply -= amount

	p.logger.Debug("burn", "mint", mintInfo.Key.String(), "source", sourceInfo.Key.String(), "amount", amount)
	if err := EncodeAccount(source, sourceInfo.Data); err != nil {
		return err
	}
	return EncodeMint(mint, mintInfo.Data)
}

func (p *Program) transfer(programID solana.PublicKey, accounts []*host.AccountInfo, amount uint64) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	sourceInfo, destInfo, authority := accounts[0], accounts[1], accounts[2]
	if err := ownedBy(programID, sourceInfo, destInfo); err != nil {
		return err
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	dest, err := loadAccount(destInfo)
	if err != nil {
		return err
	}
	if !source.Mint.Equals(dest.Mint) {
		return sdkerrors.Wrapf(ErrMintMismatch, "source %s destination %s", sourceInfo.Key, destInfo.Key)
	}
	if source.Amount < amount {
		return sdkerrors.Wrapf(ErrInsufficientFunds, "balance %d, transfer %d", source.Amount, amount)
	}
	if err := spendAuthority(programID, source, authority, accounts[3:], amount); err != nil {
		return err
	}

	if sourceInfo == destInfo {
		return EncodeAccount(source, sourceInfo.Data)
	}

	source.Amount -= amount
	if dest.Amount > math.MaxUint64-amount {
		return ErrOverflow
	}
	dest.Amount += amount

	p.logger.Debug("transfer", "source", sourceInfo.Key.String(), "destination", destInfo.Key.String(), "amount", amount)
	if err := EncodeAccount(source, sourceInfo.Data); err != nil {
		return err
	}
	return EncodeAccount(dest, destInfo.Data)
}

func (p *Program) approve(programID solana.PublicKey, accounts []*host.AccountInfo, amount uint64) error {
	if err := requireAccounts(accounts, 3); err != nil {
		return err
	}
	sourceInfo, delegate, authority := accounts[0], accounts[1], accounts[2]
	if err := ownedBy(programID, sourceInfo); err != nil {
		return err
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	if err := ValidateOwner(programID, source.Owner, authority, accounts[3:]); err != nil {
		return err
	}

	source.Delegate = delegate.Key.ToPointer()
	source.DelegatedAmount = amount
	return EncodeAccount(source, sourceInfo.Data)
}

func (p *Program) setAuthority(programID solana.PublicKey, accounts []*host.AccountInfo, ix *token.SetAuthority) error {
	if err := requireAccounts(accounts, 2); err != nil {
		return err
	}
	subject, authority := accounts[0], accounts[1]
	if err := ownedBy(programID, subject); err != nil {
		return err
	}

	switch *ix.AuthorityType {
	case token.AuthorityMintTokens:
		mint, err := loadMint(subject)
		if err != nil {
			return err
		}
		if mint.MintAuthority == nil {
			return sdkerrors.Wrapf(ErrFixedSupply, "mint %s", subject.Key)
		}
		if err := ValidateOwner(programID, *mint.MintAuthority, authority, accounts[2:]); err != nil {
			return err
		}
		mint.MintAuthority = ix.NewAuthority
		return EncodeMint(mint, subject.Data)

	case token.AuthorityAccountOwner:
		acc, err := loadAccount(subject)
		if err != nil {
			return err
		}
		if err := ValidateOwner(programID, acc.Owner, authority, accounts[2:]); err != nil {
			return err
		}
		if ix.NewAuthority == nil {
			return sdkerrors.Wrap(ErrInvalidInstruction, "account owner cannot be cleared")
		}
		acc.Owner = *ix.NewAuthority
		acc.Delegate = nil
		acc.DelegatedAmount = 0
		return EncodeAccount(acc, subject.Data)

	default:
		return sdkerrors.Wrapf(ErrAuthorityTypeNotSupported, "authority type %d", *ix.AuthorityType)
	}
}

func loadMint(info *host.AccountInfo) (*token.Mint, error) {
	mint, err := DecodeMint(info.Data)
	if err != nil {
		return nil, err
	}
	if !mint.IsInitialized {
		return nil, sdkerrors.Wrapf(ErrUninitializedState, "mint %s", info.Key)
	}
	return mint, nil
}

func loadAccount(info *host.AccountInfo) (*token.Account, error) {
	acc, err := DecodeAccount(info.Data)
	if err != nil {
		return nil, err
	}
	if acc.State == token.Uninitialized {
		return nil, sdkerrors.Wrapf(ErrUninitializedState, "token account %s", info.Key)
	}
	return acc, nil
}

// spendAuthority authorizes a debit of amount from source by either its owner
// or its delegate, consuming delegated allowance in the latter case.
func spendAuthority(programID solana.PublicKey, source *token.Account, authority *host.AccountInfo, signers []*host.AccountInfo, amount uint64) error {
	if source.Delegate != nil && source.Delegate.Equals(authority.Key) {
		if err := ValidateOwner(programID, *source.Delegate, authority, signers); err != nil {
			return err
		}
		if source.DelegatedAmount < amount {
			return sdkerrors.Wrapf(ErrInsufficientFunds, "delegated %d, spend %d", source.DelegatedAmount, amount)
		}
		source.DelegatedAmount -= amount
		if source.DelegatedAmount == 0 {
			source.Delegate = nil
		}
		return nil
	}
	return ValidateOwner(programID, source.Owner, authority, signers)
}

// ValidateOwner checks that authority is the expected owner and has signed,
// either directly or through m of its multisig signers.
func ValidateOwner(programID, expected solana.PublicKey, authority *host.AccountInfo, signers []*host.AccountInfo) error {
	if !expected.Equals(authority.Key) {
		return sdkerrors.Wrapf(ErrOwnerMismatch, "expected %s, got %s", expected, authority.Key)
	}

	if authority.Owner.Equals(programID) && len(authority.Data) == MultisigLen {
		ms, err := DecodeMultisig(authority.Data)
		if err != nil {
			return err
		}
		if !ms.IsInitialized {
			return sdkerrors.Wrapf(ErrUninitializedState, "multisig %s", authority.Key)
		}
		matched := make([]bool, token.MAX_SIGNERS)
		var count uint8
		for _, signer := range signers {
			for i, key := range ms.Signers[:ms.N] {
				if matched[i] || !key.Equals(signer.Key) {
					continue
				}
				if !signer.IsSigner {
					return sdkerrors.Wrapf(ErrMissingSignature, "multisig signer %s", signer.Key)
				}
				matched[i] = true
				count++
			}
		}
		if count < ms.M {
			return sdkerrors.Wrapf(ErrMissingSignature, "%d of %d multisig signatures", count, ms.M)
		}
		return nil
	}

	if !authority.IsSigner {
		return sdkerrors.Wrapf(ErrMissingSignature, "authority %s", authority.Key)
	}
	return nil
}
