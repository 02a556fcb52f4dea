package host

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

type frameKey struct{}

// level is one program activation on the call stack.
type level struct {
	programID solana.PublicKey
	// snapshots of accounts the program may not modify
	guarded map[*AccountInfo][]byte
}

// frame carries the staged account state and call stack of a transaction.
type frame struct {
	accounts map[solana.PublicKey]*AccountInfo
	stack    []*level
}

func withFrame(ctx context.Context, f *frame) context.Context {
	return context.WithValue(ctx, frameKey{}, f)
}

func frameFromContext(ctx context.Context) (*frame, bool) {
	f, ok := ctx.Value(frameKey{}).(*frame)
	return f, ok
}

func (f *frame) push(l *level) { f.stack = append(f.stack, l) }

func (f *frame) pop() { f.stack = f.stack[:len(f.stack)-1] }

func (f *frame) top() *level { return f.stack[len(f.stack)-1] }

func (f *frame) current() solana.PublicKey { return f.top().programID }

// CallDepth returns the number of active program invocations in ctx.
func CallDepth(ctx context.Context) int {
	f, ok := frameFromContext(ctx)
	if !ok {
		return 0
	}
	return len(f.stack)
}
