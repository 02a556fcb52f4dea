package host

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"
)

// Transaction is an ordered list of instructions executed atomically.
type Transaction struct {
	Instructions []solana.Instruction
	Signers      []solana.PublicKey
}

// NewTransaction builds a transaction signed by the given keys.
func NewTransaction(signers []solana.PublicKey, instructions ...solana.Instruction) Transaction {
	return Transaction{Instructions: instructions, Signers: signers}
}

// ExecuteInstruction runs a single instruction as its own transaction.
func (r *Runtime) ExecuteInstruction(ctx context.Context, ix solana.Instruction, signers ...solana.PublicKey) error {
	return r.Execute(ctx, NewTransaction(signers, ix))
}

// ExecuteBatch runs transactions concurrently. Transactions touching the same
// writable account are serialized by the account locks, so the outcome equals
// some sequential order. The returned slice holds one result per transaction.
func (r *Runtime) ExecuteBatch(ctx context.Context, txs []Transaction) []error {
	results := make([]error, len(txs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i := range txs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			results[i] = r.Execute(gctx, txs[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}
