package config

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level" mapstructure:"log_level"`     // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format" mapstructure:"log_format"`   // "json" or "console"
	LogSampler bool   `json:"log_sampler" mapstructure:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// Program deployment
	ProgramIDs ProgramIDs `json:"program_ids" mapstructure:"program_ids"` // base58 program ids

	// Runtime Config
	BatchParallelism int `json:"batch_parallelism" mapstructure:"batch_parallelism"` // Concurrent transactions in a batch (default: 4)
	MaxCallDepth     int `json:"max_call_depth" mapstructure:"max_call_depth"`       // Cross-program invocation depth limit (default: 4)
}

// ProgramIDs holds the base58 ids the programs are registered under.
type ProgramIDs struct {
	Gravity string `json:"gravity" mapstructure:"gravity"`
	Nebula  string `json:"nebula" mapstructure:"nebula"`
	IBPort  string `json:"ibport" mapstructure:"ibport"`
	LUPort  string `json:"luport" mapstructure:"luport"`
	Token   string `json:"token" mapstructure:"token"`
}

// ProgramKeys are the parsed program ids.
type ProgramKeys struct {
	Gravity solana.PublicKey
	Nebula  solana.PublicKey
	IBPort  solana.PublicKey
	LUPort  solana.PublicKey
	Token   solana.PublicKey
}

// Keys parses every program id.
func (p ProgramIDs) Keys() (ProgramKeys, error) {
	var keys ProgramKeys
	for _, f := range []struct {
		name string
		id   string
		dst  *solana.PublicKey
	}{
		{"gravity", p.Gravity, &keys.Gravity},
		{"nebula", p.Nebula, &keys.Nebula},
		{"ibport", p.IBPort, &keys.IBPort},
		{"luport", p.LUPort, &keys.LUPort},
		{"token", p.Token, &keys.Token},
	} {
		key, err := solana.PublicKeyFromBase58(f.id)
		if err != nil {
			return ProgramKeys{}, fmt.Errorf("program id %s: %w", f.name, err)
		}
		*f.dst = key
	}
	return keys, nil
}
