package host

import (
	"bytes"
	"context"
	"sort"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"
	"github.com/sasha-s/go-deadlock"
)

const (
	DefaultMaxCallDepth = 4
	DefaultParallelism  = 4
)

type account struct {
	mu    deadlock.RWMutex
	owner solana.PublicKey
	data  []byte
}

// Runtime is an in-process host for programs. It keeps account state, serializes
// transactions that share a writable account and lets transactions over disjoint
// accounts run in parallel.
type Runtime struct {
	logger       log.Logger
	maxCallDepth int
	parallelism  int

	mu       deadlock.RWMutex
	programs map[solana.PublicKey]Program
	accounts map[solana.PublicKey]*account
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithMaxCallDepth bounds nested cross-program invocations.
func WithMaxCallDepth(depth int) Option {
	return func(r *Runtime) {
		if depth > 0 {
			r.maxCallDepth = depth
		}
	}
}

// WithParallelism bounds the number of transactions ExecuteBatch runs at once.
func WithParallelism(n int) Option {
	return func(r *Runtime) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// NewRuntime creates an empty runtime.
func NewRuntime(logger log.Logger, opts ...Option) *Runtime {
	r := &Runtime{
		logger:       logger.With(log.ModuleKey, ModuleName),
		maxCallDepth: DefaultMaxCallDepth,
		parallelism:  DefaultParallelism,
		programs:     make(map[solana.PublicKey]Program),
		accounts:     make(map[solana.PublicKey]*account),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterProgram makes a program callable under the given id.
func (r *Runtime) RegisterProgram(programID solana.PublicKey, program Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[programID] = program
}

// CreateAccount allocates a zeroed account owned by owner.
func (r *Runtime) CreateAccount(key, owner solana.PublicKey, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if acc, ok := r.accounts[key]; ok && (len(acc.data) > 0 || !acc.owner.Equals(solana.SystemProgramID)) {
		return sdkerrors.Wrapf(ErrAccountExists, "account %s", key)
	}
	r.accounts[key] = &account{owner: owner, data: make([]byte, size)}
	return nil
}

// SetAccount overwrites an account. Intended for genesis style setup and tests.
func (r *Runtime) SetAccount(key, owner solana.PublicKey, data []byte) {
	acc := r.getOrCreate(key)
	acc.mu.Lock()
	defer acc.mu.Unlock()
	acc.owner = owner
	acc.data = append([]byte(nil), data...)
}

// Account returns the owner and a copy of the data of an account.
func (r *Runtime) Account(key solana.PublicKey) (solana.PublicKey, []byte, error) {
	r.mu.RLock()
	acc, ok := r.accounts[key]
	r.mu.RUnlock()
	if !ok {
		return solana.PublicKey{}, nil, sdkerrors.Wrapf(ErrAccountNotFound, "account %s", key)
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()
	return acc.owner, append([]byte(nil), acc.data...), nil
}

func (r *Runtime) getOrCreate(key solana.PublicKey) *account {
	r.mu.RLock()
	acc, ok := r.accounts[key]
	r.mu.RUnlock()
	if ok {
		return acc
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if acc, ok := r.accounts[key]; ok {
		return acc
	}
	acc = &account{owner: solana.SystemProgramID}
	r.accounts[key] = acc
	return acc
}

func (r *Runtime) program(programID solana.PublicKey) (Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[programID]
	if !ok {
		return nil, sdkerrors.Wrapf(ErrProgramNotFound, "program %s", programID)
	}
	return p, nil
}

type lockedAccount struct {
	key      solana.PublicKey
	acc      *account
	writable bool
}

// lockAccounts acquires the account locks of a transaction in key order.
func (r *Runtime) lockAccounts(tx Transaction) []lockedAccount {
	writable := make(map[solana.PublicKey]bool)
	for _, ix := range tx.Instructions {
		for _, meta := range ix.Accounts() {
			writable[meta.PublicKey] = writable[meta.PublicKey] || meta.IsWritable
		}
	}

	keys := make([]solana.PublicKey, 0, len(writable))
	for key := range writable {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})

	locked := make([]lockedAccount, 0, len(keys))
	for _, key := range keys {
		acc := r.getOrCreate(key)
		if writable[key] {
			acc.mu.Lock()
		} else {
			acc.mu.RLock()
		}
		locked = append(locked, lockedAccount{key: key, acc: acc, writable: writable[key]})
	}
	return locked
}

func unlockAccounts(locked []lockedAccount) {
	for i := len(locked) - 1; i >= 0; i-- {
		if locked[i].writable {
			locked[i].acc.mu.Unlock()
		} else {
			locked[i].acc.mu.RUnlock()
		}
	}
}

// Execute runs a transaction atomically: account changes are persisted only if
// every instruction, including nested invocations, succeeds.
func (r *Runtime) Execute(ctx context.Context, tx Transaction) error {
	if len(tx.Instructions) == 0 {
		return ErrEmptyTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	locked := r.lockAccounts(tx)
	defer unlockAccounts(locked)

	signers := make(map[solana.PublicKey]bool, len(tx.Signers))
	for _, s := range tx.Signers {
		signers[s] = true
	}

	f := &frame{accounts: make(map[solana.PublicKey]*AccountInfo, len(locked))}
	for _, l := range locked {
		f.accounts[l.key] = &AccountInfo{
			Key:        l.key,
			Owner:      l.acc.owner,
			IsSigner:   signers[l.key],
			IsWritable: l.writable,
			Data:       append([]byte(nil), l.acc.data...),
		}
	}
	ctx = withFrame(ctx, f)

	for i, ix := range tx.Instructions {
		metas := ix.Accounts()
		for _, meta := range metas {
			if meta.IsSigner && !f.accounts[meta.PublicKey].IsSigner {
				return sdkerrors.Wrapf(ErrMissingSignature, "instruction %d: account %s", i, meta.PublicKey)
			}
		}
		views, sources := deriveViews(metas, func(key solana.PublicKey) *AccountInfo { return f.accounts[key] })

		data, err := ix.Data()
		if err != nil {
			return sdkerrors.Wrapf(err, "instruction %d: encode data", i)
		}

		if err := r.invoke(ctx, f, ix.ProgramID(), views, data); err != nil {
			r.logger.Debug("transaction aborted", "instruction", i, "program", ix.ProgramID().String(), "error", err.Error())
			return err
		}
		writeBack(sources)
	}

	for _, l := range locked {
		if !l.writable {
			continue
		}
		info := f.accounts[l.key]
		l.acc.owner = info.Owner
		l.acc.data = info.Data
	}

	r.logger.Debug("transaction committed", "instructions", len(tx.Instructions), "accounts", len(locked))
	return nil
}

// invoke runs one program over the given account views and enforces that it
// only changed data it is allowed to change.
func (r *Runtime) invoke(ctx context.Context, f *frame, programID solana.PublicKey, accounts []*AccountInfo, input []byte) error {
	if len(f.stack) >= r.maxCallDepth {
		return sdkerrors.Wrapf(ErrCallDepthExceeded, "depth %d", len(f.stack))
	}

	program, err := r.program(programID)
	if err != nil {
		return err
	}

	lvl := &level{programID: programID, guarded: make(map[*AccountInfo][]byte)}
	for _, info := range accounts {
		if !info.IsWritable || !info.Owner.Equals(programID) {
			lvl.guarded[info] = append([]byte(nil), info.Data...)
		}
	}

	f.push(lvl)
	err = program.Process(ctx, programID, accounts, input)
	f.pop()
	if err != nil {
		return err
	}

	for info, before := range lvl.guarded {
		if bytes.Equal(before, info.Data) {
			continue
		}
		if !info.IsWritable {
			return sdkerrors.Wrapf(ErrReadonlyDataModified, "program %s account %s", programID, info.Key)
		}
		return sdkerrors.Wrapf(ErrExternalAccountDataModified, "program %s account %s", programID, info.Key)
	}
	return nil
}

// InvokeSigned performs a cross-program invocation from the program currently
// executing in ctx. Each signer seed set must derive a program address of the
// caller; those addresses are granted signer privilege for the callee.
func (r *Runtime) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*AccountInfo, signerSeeds ...[][]byte) error {
	f, ok := frameFromContext(ctx)
	if !ok || len(f.stack) == 0 {
		return ErrNoActiveTransaction
	}
	caller := f.current()

	pdas := make(map[solana.PublicKey]bool, len(signerSeeds))
	for _, seeds := range signerSeeds {
		pda, err := solana.CreateProgramAddress(seeds, caller)
		if err != nil {
			return sdkerrors.Wrapf(ErrInvalidSeeds, "program %s: %s", caller, err)
		}
		pdas[pda] = true
	}

	metas := ix.Accounts()
	for _, meta := range metas {
		src, found := FindAccount(accounts, meta.PublicKey)
		if !found {
			return sdkerrors.Wrapf(ErrAccountNotFound, "cross-program invocation account %s", meta.PublicKey)
		}
		if meta.IsSigner && !src.IsSigner && !pdas[meta.PublicKey] {
			return sdkerrors.Wrapf(ErrPrivilegeEscalation, "signer %s", meta.PublicKey)
		}
		if meta.IsWritable && !src.IsWritable {
			return sdkerrors.Wrapf(ErrPrivilegeEscalation, "writable %s", meta.PublicKey)
		}
	}
	views, sources := deriveViews(metas, func(key solana.PublicKey) *AccountInfo {
		src, _ := FindAccount(accounts, key)
		return src
	})

	data, err := ix.Data()
	if err != nil {
		return sdkerrors.Wrap(err, "encode cross-program invocation data")
	}

	r.logger.Debug("cross-program invocation", "caller", caller.String(), "callee", ix.ProgramID().String(), "depth", len(f.stack))
	if err := r.invoke(ctx, f, ix.ProgramID(), views, data); err != nil {
		return err
	}

	// changes made by the callee are not attributed to the caller
	lvl := f.top()
	for _, src := range writeBack(sources) {
		if _, ok := lvl.guarded[src]; ok {
			lvl.guarded[src] = append([]byte(nil), src.Data...)
		}
	}
	return nil
}

// deriveViews builds the account list a program sees for one instruction. Every
// distinct key gets a single view carrying the union of the privileges the
// instruction requests for it.
func deriveViews(metas solana.AccountMetaSlice, lookup func(solana.PublicKey) *AccountInfo) ([]*AccountInfo, map[*AccountInfo]*AccountInfo) {
	views := make([]*AccountInfo, 0, len(metas))
	byKey := make(map[solana.PublicKey]*AccountInfo, len(metas))
	sources := make(map[*AccountInfo]*AccountInfo, len(metas))
	for _, meta := range metas {
		view, ok := byKey[meta.PublicKey]
		if !ok {
			src := lookup(meta.PublicKey)
			view = &AccountInfo{Key: src.Key, Owner: src.Owner, Data: append([]byte(nil), src.Data...)}
			byKey[meta.PublicKey] = view
			sources[view] = src
		}
		view.IsSigner = view.IsSigner || meta.IsSigner
		view.IsWritable = view.IsWritable || meta.IsWritable
		views = append(views, view)
	}
	return views, sources
}

// writeBack copies writable views into their sources and returns the sources it
// touched.
func writeBack(sources map[*AccountInfo]*AccountInfo) []*AccountInfo {
	touched := make([]*AccountInfo, 0, len(sources))
	for view, src := range sources {
		if !view.IsWritable {
			continue
		}
		src.Owner = view.Owner
		src.Data = view.Data
		touched = append(touched, src)
	}
	return touched
}
