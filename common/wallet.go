package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// WalletToScriptHash extracts a script hash from a wallet in V2 format
// (version byte, 20-byte script hash, 4-byte checksum).
func WalletToScriptHash(wallet []byte) []byte {
	return wallet[1 : len(wallet)-4]
}

// AbortWithMessage calls `runtime.Log` with the passed message and
// then the ABORT opcode. Unlike panic, ABORT cannot be caught by the
// calling contract.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
