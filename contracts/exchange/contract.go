package exchange

import (
	"github.com/custodia-chain/custody-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	settlementKey = 's'
	ratePrefix    = 'r'
)

// Failure messages thrown by the exchange contract.
const (
	// ErrDeadlineExpired is thrown when the conversion deadline has
	// already passed at execution time.
	ErrDeadlineExpired = "deadline expired"
	// ErrUnsupportedAsset is thrown on converting an asset without a
	// configured rate.
	ErrUnsupportedAsset = "unsupported asset"
	// ErrInsufficientOutput is thrown when the output amount is below
	// the requested minimum.
	ErrInsufficientOutput = "insufficient output"
	// ErrInsufficientReserve is thrown when the contract does not hold
	// enough settlement currency to pay the output.
	ErrInsufficientReserve = "insufficient reserve"
	// ErrPullFailed is thrown when the input asset cannot be pulled
	// from the caller.
	ErrPullFailed = "input pull failed"
	// ErrPayoutFailed is thrown when the settlement currency transfer
	// to the recipient fails.
	ErrPayoutFailed = "output payout failed"
)

// ConvertedEvent is emitted on every completed conversion.
const ConvertedEvent = "Converted"

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		settlement interop.Hash160
	})

	if len(args.settlement) != interop.Hash160Len {
		panic("incorrect length of settlement contract script hash")
	}

	storage.Put(ctx, settlementKey, args.settlement)

	runtime.Log("exchange adapter initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("exchange adapter updated")
}

// SetRate sets the fixed conversion rate for the asset: amountIn of the
// asset converts into amountIn * num / denom of the settlement
// currency. It can be invoked only by the committee.
func SetRate(asset interop.Hash160, num, denom int) {
	common.CheckCommitteeWitness()

	if len(asset) != interop.Hash160Len {
		panic("incorrect length of asset contract script hash")
	}
	if num <= 0 || denom <= 0 {
		panic("rate must be positive")
	}

	common.SetSerialized(storage.GetContext(), rateKey(asset), []int{num, denom})
}

// Rate returns the conversion rate of the asset as a (numerator,
// denominator) pair.
func Rate(asset interop.Hash160) []int {
	data := storage.Get(storage.GetReadOnlyContext(), rateKey(asset))
	if data == nil {
		panic(ErrUnsupportedAsset)
	}
	return std.Deserialize(data.([]byte)).([]int)
}

// SettlementToken returns the script hash of the settlement currency
// contract the adapter pays out in.
func SettlementToken() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), settlementKey).(interop.Hash160)
}

// ConvertExactInput pulls amountIn of the input asset from the calling
// contract via its allowance, converts it at the configured fixed rate
// and transfers the output to the recipient. The call fails unless the
// output reaches minOut, the deadline has not passed and the contract
// reserve covers the output.
//
// It produces a Converted notification and returns the output amount.
func ConvertExactInput(assetIn interop.Hash160, amountIn, minOut int, rcpt interop.Hash160, deadline int) int {
	if amountIn <= 0 {
		panic("amount must be positive")
	}
	if runtime.GetTime() > deadline {
		panic(ErrDeadlineExpired)
	}

	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, rateKey(assetIn))
	if data == nil {
		panic(ErrUnsupportedAsset)
	}
	rate := std.Deserialize(data.([]byte)).([]int)

	out := amountIn * rate[0] / rate[1]
	if out < minOut {
		panic(ErrInsufficientOutput +
			": out " + std.Itoa(out, 10) +
			", minimum " + std.Itoa(minOut, 10))
	}

	settlementH := storage.Get(ctx, settlementKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	reserve := contract.Call(settlementH, "balanceOf", contract.ReadOnly, self).(int)
	if out > reserve {
		panic(ErrInsufficientReserve +
			": out " + std.Itoa(out, 10) +
			", reserve " + std.Itoa(reserve, 10))
	}

	caller := runtime.GetCallingScriptHash()

	if !contract.Call(assetIn, "transferFrom", contract.All, caller, self, amountIn, nil).(bool) {
		panic(ErrPullFailed)
	}
	if !contract.Call(settlementH, "transfer", contract.All, self, rcpt, out, nil).(bool) {
		panic(ErrPayoutFailed)
	}

	runtime.Notify(ConvertedEvent, assetIn, amountIn, out)

	return out
}

// OnNEP17Payment is a callback for NEP-17 compatible contracts. The
// adapter accepts any token: settlement currency transfers fund the
// payout reserve, input assets arrive here during conversions.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func rateKey(asset interop.Hash160) []byte {
	return append([]byte{ratePrefix}, asset...)
}
