package token

import (
	"github.com/custodia-chain/custody-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "CUSD"
	decimals = 6
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("settlement token initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("settlement token updated")
}

// Symbol is a NEP-17 standard method that returns CUSD token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns CUSD token decimals.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of
// CUSD in circulation.
func TotalSupply() int {
	return common.TokenSupply(storage.GetReadOnlyContext())
}

// BalanceOf is a NEP-17 standard method that returns CUSD balance of
// the account.
func BalanceOf(account interop.Hash160) int {
	return common.TokenBalanceOf(storage.GetReadOnlyContext(), account)
}

// Transfer is a NEP-17 standard method that transfers CUSD between
// accounts.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	return common.TokenTransfer(storage.GetContext(), from, to, amount, data)
}

// Approve authorizes the spender contract to pull up to amount of CUSD
// from the owner account with TransferFrom. The approval overwrites any
// previous one; a zero amount revokes it.
func Approve(owner, spender interop.Hash160, amount int) {
	common.TokenApprove(storage.GetContext(), owner, spender, amount)
}

// Allowance returns the amount of owner's CUSD the spender is still
// authorized to pull.
func Allowance(owner, spender interop.Hash160) int {
	return common.TokenAllowance(storage.GetReadOnlyContext(), owner, spender)
}

// TransferFrom transfers CUSD from one account to another on behalf of
// the calling contract, consuming the allowance granted with Approve.
func TransferFrom(from, to interop.Hash160, amount int, data any) bool {
	return common.TokenTransferFrom(storage.GetContext(), from, to, amount, data)
}

// Mint issues amount of new CUSD to the account. It can be invoked only
// by the committee.
func Mint(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness()
	common.TokenMint(storage.GetContext(), to, amount, nil)
}

// Burn destroys amount of CUSD held by the account. It can be invoked
// only by the committee.
func Burn(from interop.Hash160, amount int) {
	common.CheckCommitteeWitness()
	common.TokenBurn(storage.GetContext(), from, amount)
}

// OnNEP17Payment is a callback for NEP-17 compatible contracts.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
