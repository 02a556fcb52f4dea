package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
)

// PDASeed names the seeds programs derive their signing addresses from.
type PDASeed uint8

const (
	IBPortSeed PDASeed = iota
	LUPortSeed
	GravitySeed
)

// Seed returns the raw seed bytes.
func (s PDASeed) Seed() []byte {
	switch s {
	case IBPortSeed:
		return []byte("ibport")
	case LUPortSeed:
		return []byte("luport")
	default:
		return []byte("gravity")
	}
}

func (s PDASeed) String() string { return string(s.Seed()) }

// FindProgramAddress derives the program address of seed under programID.
func FindProgramAddress(seed PDASeed, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	key, bump, err := solana.FindProgramAddress([][]byte{seed.Seed()}, programID)
	if err != nil {
		return solana.PublicKey{}, 0, sdkerrors.Wrap(ErrInvalidSeeds, err.Error())
	}
	return key, bump, nil
}

// SignerSeeds returns the seed set that signs for the program address.
func SignerSeeds(seed PDASeed, bump uint8) [][]byte {
	return [][]byte{seed.Seed(), {bump}}
}

// ValidatePDA checks key against the program address of seed and returns the
// signer seeds for it.
func ValidatePDA(seed PDASeed, programID, key solana.PublicKey) ([][]byte, error) {
	expected, bump, err := FindProgramAddress(seed, programID)
	if err != nil {
		return nil, err
	}
	if !expected.Equals(key) {
		return nil, sdkerrors.Wrapf(ErrInvalidSeeds, "expected %s %s, got %s", seed, expected, key)
	}
	return SignerSeeds(seed, bump), nil
}
