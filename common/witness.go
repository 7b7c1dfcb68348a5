package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be
	// called by the committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
)

// OwnerWitness checks if addr is either a signer of the carrier
// transaction or the hash of the directly calling contract. The latter
// allows contracts to manage assets held under their own hash.
func OwnerWitness(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	if runtime.CheckWitness(addr) {
		return true
	}

	return runtime.GetCallingScriptHash().Equals(addr)
}

// CheckOwnerWitness is like OwnerWitness but panics with
// ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(addr interop.Hash160) {
	if !OwnerWitness(addr) {
		panic(ErrOwnerWitnessFailed)
	}
}

// CheckCommitteeWitness checks that the carrier transaction is signed by
// the chain committee. It panics with ErrCommitteeWitnessFailed message
// on fail.
func CheckCommitteeWitness() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		panic(ErrCommitteeWitnessFailed)
	}
}
