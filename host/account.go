package host

import (
	"github.com/gagliardetto/solana-go"
)

// AccountInfo is the view of an account handed to a program for a single
// invocation. Programs mutate Data in place; the runtime persists it only when
// the enclosing transaction succeeds.
type AccountInfo struct {
	Key        solana.PublicKey
	Owner      solana.PublicKey
	IsSigner   bool
	IsWritable bool
	Data       []byte
}

// Meta returns the account meta describing this account's privileges.
func (a *AccountInfo) Meta() *solana.AccountMeta {
	return &solana.AccountMeta{
		PublicKey:  a.Key,
		IsSigner:   a.IsSigner,
		IsWritable: a.IsWritable,
	}
}

// DataLen returns the length of the account data.
func (a *AccountInfo) DataLen() int {
	return len(a.Data)
}

// Metas converts account infos into account metas, preserving order.
func Metas(accounts []*AccountInfo) []*solana.AccountMeta {
	out := make([]*solana.AccountMeta, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc.Meta())
	}
	return out
}

// FindAccount returns the first account with the given key.
func FindAccount(accounts []*AccountInfo, key solana.PublicKey) (*AccountInfo, bool) {
	for _, acc := range accounts {
		if acc.Key.Equals(key) {
			return acc, true
		}
	}
	return nil, false
}
