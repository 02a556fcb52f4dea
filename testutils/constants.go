package testutils

import (
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

type TestConfig struct {
	OracleCount int
	ConsulCount int
	Decimals    uint8
	// LockedSupply is minted to the user on the LU port's external mint.
	LockedSupply uint64
}

func GetDefaultTestConfig() TestConfig {
	return TestConfig{
		OracleCount:  3,
		ConsulCount:  3,
		Decimals:     porttypes.DefaultDecimals,
		LockedSupply: 10_000_000_000,
	}
}
