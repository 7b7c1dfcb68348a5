package wrapper

import (
	"github.com/custodia-chain/custody-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "WGAS"
	decimals = 8
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("native wrapper initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("native wrapper updated")
}

// Symbol is a NEP-17 standard method that returns WGAS token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns WGAS token decimals.
// It matches native GAS precision: one WGAS unit wraps one GAS unit.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of
// WGAS in circulation. It always equals the GAS held by the contract.
func TotalSupply() int {
	return common.TokenSupply(storage.GetReadOnlyContext())
}

// BalanceOf is a NEP-17 standard method that returns WGAS balance of
// the account.
func BalanceOf(account interop.Hash160) int {
	return common.TokenBalanceOf(storage.GetReadOnlyContext(), account)
}

// Transfer is a NEP-17 standard method that transfers WGAS between
// accounts.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	return common.TokenTransfer(storage.GetContext(), from, to, amount, data)
}

// Approve authorizes the spender contract to pull up to amount of WGAS
// from the owner account with TransferFrom. The approval overwrites any
// previous one; a zero amount revokes it.
func Approve(owner, spender interop.Hash160, amount int) {
	common.TokenApprove(storage.GetContext(), owner, spender, amount)
}

// Allowance returns the amount of owner's WGAS the spender is still
// authorized to pull.
func Allowance(owner, spender interop.Hash160) int {
	return common.TokenAllowance(storage.GetReadOnlyContext(), owner, spender)
}

// TransferFrom transfers WGAS from one account to another on behalf of
// the calling contract, consuming the allowance granted with Approve.
func TransferFrom(from, to interop.Hash160, amount int, data any) bool {
	return common.TokenTransferFrom(storage.GetContext(), from, to, amount, data)
}

// OnNEP17Payment mints WGAS to the sender of any incoming GAS transfer,
// one to one. Transfers of any other token are aborted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(gas.Hash) {
		common.AbortWithMessage("only GAS can be wrapped")
	}

	common.TokenMint(storage.GetContext(), from, amount, data)
}

// Unwrap burns amount of WGAS from the account and releases the same
// amount of GAS to it. It requires the account witness or the owning
// contract to be the direct caller.
func Unwrap(from interop.Hash160, amount int) {
	common.CheckOwnerWitness(from)

	if amount <= 0 {
		panic("amount must be positive")
	}

	ctx := storage.GetContext()
	common.TokenBurn(ctx, from, amount)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), from, amount, nil) {
		panic("GAS release failed")
	}
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
