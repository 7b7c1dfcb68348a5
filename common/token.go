package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Fungible token bookkeeping shared by the settlement token and native
// wrapper contracts. Both contracts keep NEP-17 balances extended with
// an exact-amount allowance protocol: a spender contract may pull
// tokens from an owner account only up to the amount the owner approved
// beforehand, and each pull reduces the remaining allowance.

const (
	tokenBalancePrefix   = 'b'
	tokenAllowancePrefix = 'w'
	tokenSupplyKey       = 's'
)

// TokenSupply returns the token total supply from contract storage.
func TokenSupply(ctx storage.Context) int {
	return GetInt(ctx, tokenSupplyKey)
}

// TokenBalanceOf returns the token balance of the holder account.
func TokenBalanceOf(ctx storage.Context, holder interop.Hash160) int {
	return GetInt(ctx, append([]byte{tokenBalancePrefix}, holder...))
}

// TokenAllowance returns the amount of owner's tokens the spender is
// still authorized to pull.
func TokenAllowance(ctx storage.Context, owner, spender interop.Hash160) int {
	return GetInt(ctx, allowanceKey(owner, spender))
}

// TokenTransfer moves amount from one account to another on behalf of
// the owner. It requires the owner witness (or the owning contract to
// be the direct caller) and follows NEP-17 semantics: false is returned
// when the transfer cannot be made.
func TokenTransfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(to) != interop.Hash160Len || !OwnerWitness(from) {
		runtime.Log("bad script hashes")
		return false
	}

	return tokenMove(ctx, from, to, amount, data)
}

// TokenTransferFrom moves amount from one account to another on behalf
// of the calling contract, consuming the allowance the owner granted to
// it with TokenApprove. False is returned when the remaining allowance
// or the owner balance does not cover the amount.
func TokenTransferFrom(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		runtime.Log("bad script hashes")
		return false
	}

	spender := runtime.GetCallingScriptHash()
	key := allowanceKey(from, spender)

	remaining := GetInt(ctx, key)
	if remaining < amount {
		runtime.Log("not enough allowance")
		return false
	}

	if !tokenMove(ctx, from, to, amount, data) {
		return false
	}

	if remaining == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, remaining-amount)
	}

	return true
}

// TokenApprove authorizes the spender to pull up to amount of owner's
// tokens with TokenTransferFrom. The approval is absolute, not
// additive: a repeated call overwrites the previous allowance, and a
// zero amount revokes it.
//
// It produces Approval notification.
func TokenApprove(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	if amount < 0 {
		panic("negative amount")
	}
	if len(spender) != interop.Hash160Len {
		panic("invalid spender")
	}

	CheckOwnerWitness(owner)

	key := allowanceKey(owner, spender)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}

	runtime.Notify("Approval", owner, spender, amount)
}

// TokenMint credits amount of new tokens to the account and increases
// total supply. Access control is up to the calling contract.
//
// It produces Transfer notification with empty sender.
func TokenMint(ctx storage.Context, to interop.Hash160, amount int, data any) {
	if amount <= 0 {
		panic("amount must be positive")
	}
	if len(to) != interop.Hash160Len {
		panic("invalid account")
	}

	addToBalance(ctx, to, amount)
	storage.Put(ctx, tokenSupplyKey, TokenSupply(ctx)+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	postTransfer(nil, to, amount, data)
}

// TokenBurn debits amount of tokens from the account and decreases
// total supply. Access control is up to the calling contract.
//
// It produces Transfer notification with empty receiver.
func TokenBurn(ctx storage.Context, from interop.Hash160, amount int) {
	if amount <= 0 {
		panic("amount must be positive")
	}

	if !reduceBalance(ctx, from, amount) {
		panic("not enough tokens to burn")
	}

	supply := TokenSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, tokenSupplyKey, supply-amount)

	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
}

// tokenMove adjusts balances without any authorization checks and fires
// the NEP-17 Transfer notification and receiver callback.
func tokenMove(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if !reduceBalance(ctx, from, amount) {
		runtime.Log("not enough tokens")
		return false
	}

	addToBalance(ctx, to, amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)

	return true
}

func addToBalance(ctx storage.Context, acc interop.Hash160, amount int) {
	key := append([]byte{tokenBalancePrefix}, acc...)
	storage.Put(ctx, key, GetInt(ctx, key)+amount)
}

func reduceBalance(ctx storage.Context, acc interop.Hash160, amount int) bool {
	key := append([]byte{tokenBalancePrefix}, acc...)

	balance := GetInt(ctx, key)
	if balance < amount {
		return false
	}

	if balance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance-amount)
	}

	return true
}

// postTransfer invokes the standard NEP-17 receiver callback when the
// receiver is a deployed contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(append([]byte{tokenAllowancePrefix}, owner...), spender...)
}
