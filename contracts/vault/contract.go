package vault

import (
	"github.com/custodia-chain/custody-contract/common"
	"github.com/custodia-chain/custody-contract/contracts/vault/vaultconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	accountPrefix = 'a'

	settlementKey  = 's'
	wrapperKey     = 'n'
	exchangeKey    = 'x'
	capacityKey    = 'c'
	refundKey      = 'r'
	totalKey       = 't'
	depositsKey    = 'd'
	withdrawalsKey = 'w'
	lockKey        = 'l'

	// convertDeadlineInterval is the validity window in milliseconds
	// given to the exchange adapter on every conversion call.
	convertDeadlineInterval = 15 * 60 * 1000

	walletV2Size = 25

	convertMethod = "convertExactInput"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		settlement      interop.Hash160
		wrapper         interop.Hash160
		exchange        interop.Hash160
		capacity        int
		refundOnFailure bool
	})

	if len(args.settlement) != interop.Hash160Len ||
		len(args.wrapper) != interop.Hash160Len ||
		len(args.exchange) != interop.Hash160Len {
		panic(vaultconst.ErrInvalidConfig + ": incorrect length of contract script hash")
	}
	if args.capacity <= 0 {
		panic(vaultconst.ErrInvalidConfig + ": capacity must be positive")
	}

	storage.Put(ctx, settlementKey, args.settlement)
	storage.Put(ctx, wrapperKey, args.wrapper)
	storage.Put(ctx, exchangeKey, args.exchange)
	storage.Put(ctx, capacityKey, args.capacity)
	storage.Put(ctx, refundKey, args.refundOnFailure)

	runtime.Log("custody vault initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("custody vault updated")
}

// DepositNative pulls amount of GAS from the depositor, converts it
// into the settlement currency through the exchange adapter and credits
// the measured proceeds to the receiver account. The conversion must
// return at least minProceeds of settlement currency.
//
// rcv selects the credited account: empty credits the depositor, a
// 20-byte value is taken as a script hash and a 25-byte value as a V2
// format wallet.
//
// If the adapter fails, the full GAS amount is returned to the
// depositor, an ExchangeFailed notification is emitted and false is
// returned; no balance is credited. Every other failure aborts the
// whole call. On success, it produces a Deposit notification and
// returns true.
func DepositNative(from interop.Hash160, amount, minProceeds int, rcv []byte) bool {
	common.CheckOwnerWitness(from)

	if amount <= 0 {
		panic(vaultconst.ErrZeroAmount)
	}

	ctx := storage.GetContext()
	takeLock(ctx)
	defer releaseLock(ctx)

	self := runtime.GetExecutingScriptHash()

	if !gas.Transfer(from, self, amount, nil) {
		panic(vaultconst.ErrTransferFailed + ": GAS")
	}

	// Wrap the pulled GAS so the adapter can take it through the
	// allowance protocol like any other asset.
	wrapperH := storage.Get(ctx, wrapperKey).(interop.Hash160)
	if !gas.Transfer(self, wrapperH, amount, nil) {
		panic(vaultconst.ErrTransferFailed + ": GAS wrap")
	}

	proceeds, ok := convert(ctx, wrapperH, amount, minProceeds)
	if !ok {
		// Unwind: take the GAS back from the wrapper and return it to
		// the depositor in full.
		contract.Call(wrapperH, "unwrap", contract.All, self, amount)
		if !gas.Transfer(self, from, amount, nil) {
			panic(vaultconst.ErrTransferFailed + ": GAS refund")
		}

		runtime.Notify(vaultconst.ExchangeFailedEvent, from, interop.Hash160(gas.Hash), amount)
		return false
	}

	credit(ctx, receiver(from, rcv), interop.Hash160(gas.Hash), amount, proceeds)

	return true
}

// DepositToken pulls amount of the given token from the depositor via
// the allowance the depositor granted to the vault beforehand, converts
// it into the settlement currency and credits the measured proceeds to
// the receiver account. Depositing the settlement currency itself skips
// the adapter: proceeds are exactly the transferred amount.
//
// Unlike DepositNative, a failed conversion refunds the pulled tokens
// only when the vault was deployed with the refund policy enabled;
// otherwise they stay in custody without any balance credited. Callers
// depositing arbitrary tokens should account for this asymmetry.
func DepositToken(from, token interop.Hash160, amount, minProceeds int, rcv []byte) bool {
	common.CheckOwnerWitness(from)

	if amount <= 0 {
		panic(vaultconst.ErrZeroAmount)
	}
	if len(token) != interop.Hash160Len {
		panic(vaultconst.ErrInvalidAsset)
	}

	ctx := storage.GetContext()
	takeLock(ctx)
	defer releaseLock(ctx)

	self := runtime.GetExecutingScriptHash()

	if !contract.Call(token, "transferFrom", contract.All, from, self, amount, nil).(bool) {
		panic(vaultconst.ErrTransferFailed + ": deposit pull")
	}

	settlementH := storage.Get(ctx, settlementKey).(interop.Hash160)
	if token.Equals(settlementH) {
		credit(ctx, receiver(from, rcv), token, amount, amount)
		return true
	}

	proceeds, ok := convert(ctx, token, amount, minProceeds)
	if !ok {
		if storage.Get(ctx, refundKey).(bool) {
			if !contract.Call(token, "transfer", contract.All, self, from, amount, nil).(bool) {
				panic(vaultconst.ErrTransferFailed + ": deposit refund")
			}
		}

		runtime.Notify(vaultconst.ExchangeFailedEvent, from, token, amount)
		return false
	}

	credit(ctx, receiver(from, rcv), token, amount, proceeds)

	return true
}

// Withdraw debits amount from the caller account and releases the same
// amount of settlement currency to it. A single call may release no
// more than the withdrawal ceiling regardless of the account balance.
// The debit and the payout are atomic: a failed payout aborts the whole
// call.
//
// It produces a Withdrawal notification.
func Withdraw(from interop.Hash160, amount int) {
	common.CheckOwnerWitness(from)

	if amount <= 0 {
		panic(vaultconst.ErrZeroAmount)
	}
	if amount > vaultconst.WithdrawalCeiling {
		panic(vaultconst.ErrCeilingExceeded +
			": ceiling " + std.Itoa(vaultconst.WithdrawalCeiling, 10) +
			", requested " + std.Itoa(amount, 10))
	}

	ctx := storage.GetContext()
	takeLock(ctx)
	defer releaseLock(ctx)

	key := append([]byte{accountPrefix}, from...)
	available := common.GetInt(ctx, key)
	if amount > available {
		panic(vaultconst.ErrInsufficientBalance +
			": available " + std.Itoa(available, 10) +
			", requested " + std.Itoa(amount, 10))
	}

	// Effects strictly before the payout interaction. The preceding
	// checks make both subtractions underflow-free: available covers
	// amount and total custody covers every balance.
	if available == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, available-amount)
	}
	storage.Put(ctx, totalKey, common.GetInt(ctx, totalKey)-amount)
	storage.Put(ctx, withdrawalsKey, common.GetInt(ctx, withdrawalsKey)+1)

	settlementH := storage.Get(ctx, settlementKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	if !contract.Call(settlementH, "transfer", contract.All, self, from, amount, nil).(bool) {
		panic(vaultconst.ErrTransferFailed + ": settlement payout")
	}

	runtime.Notify(vaultconst.WithdrawalEvent, from, amount)
}

// OnNEP17Payment is a callback for NEP-17 compatible contracts.
// Custodied assets arrive here during deposit pulls, unwrapping and
// adapter payouts.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
}

// BalanceOf returns the withdrawable settlement currency balance of the
// account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{accountPrefix}, account...))
}

// Accounts returns an iterator over all accounts with a non-zero
// custodied balance. Iterated items are (account hash, balance) pairs.
func Accounts() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(),
		[]byte{accountPrefix}, storage.RemovePrefix)
}

// TotalCustody returns the aggregate custodied value across all
// accounts. It can be invoked only by the committee.
func TotalCustody() int {
	common.CheckCommitteeWitness()
	return common.GetInt(storage.GetReadOnlyContext(), totalKey)
}

// Capacity returns the maximum aggregate custodied value the vault
// accepts, fixed at deploy.
func Capacity() int {
	return common.GetInt(storage.GetReadOnlyContext(), capacityKey)
}

// WithdrawalCeiling returns the maximum amount a single Withdraw call
// may release.
func WithdrawalCeiling() int {
	return vaultconst.WithdrawalCeiling
}

// DepositCount returns the number of successful deposits over the vault
// lifetime.
func DepositCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), depositsKey)
}

// WithdrawalCount returns the number of successful withdrawals over the
// vault lifetime.
func WithdrawalCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), withdrawalsKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// convert authorizes the exchange adapter for exactly amountIn of the
// input asset and invokes the conversion. Proceeds are measured as the
// settlement balance delta around the adapter call: adapters are not
// trusted to report the received amount. On adapter failure the
// leftover authorization is revoked and false is returned.
func convert(ctx storage.Context, assetIn interop.Hash160, amountIn, minProceeds int) (int, bool) {
	self := runtime.GetExecutingScriptHash()
	settlementH := storage.Get(ctx, settlementKey).(interop.Hash160)
	exchangeH := storage.Get(ctx, exchangeKey).(interop.Hash160)

	contract.Call(assetIn, "approve", contract.All, self, exchangeH, amountIn)

	before := settlementBalance(settlementH, self)

	if !tryConvert(exchangeH, assetIn, amountIn, minProceeds, self) {
		contract.Call(assetIn, "approve", contract.All, self, exchangeH, 0)
		return 0, false
	}

	return settlementBalance(settlementH, self) - before, true
}

// tryConvert calls the exchange adapter and reports whether it
// completed. The adapter fails by throwing, so the exception is caught
// here and turned into a clean false.
func tryConvert(exchangeH, assetIn interop.Hash160, amountIn, minProceeds int, rcpt interop.Hash160) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	deadline := runtime.GetTime() + convertDeadlineInterval
	contract.Call(exchangeH, convertMethod, contract.All,
		assetIn, amountIn, minProceeds, rcpt, deadline)

	return true
}

// credit applies the measured proceeds to the receiver account under
// the capacity invariant and seals the deposit record.
func credit(ctx storage.Context, user, assetIn interop.Hash160, amountIn, proceeds int) {
	if proceeds == 0 {
		panic(vaultconst.ErrZeroProceeds)
	}

	total := common.GetInt(ctx, totalKey)
	capacity := common.GetInt(ctx, capacityKey)
	if total+proceeds > capacity {
		panic(vaultconst.ErrCapacityExceeded +
			": total " + std.Itoa(total, 10) +
			", proceeds " + std.Itoa(proceeds, 10) +
			", capacity " + std.Itoa(capacity, 10))
	}

	key := append([]byte{accountPrefix}, user...)
	storage.Put(ctx, key, common.GetInt(ctx, key)+proceeds)
	storage.Put(ctx, totalKey, total+proceeds)
	storage.Put(ctx, depositsKey, common.GetInt(ctx, depositsKey)+1)

	runtime.Notify(vaultconst.DepositEvent, user, assetIn, amountIn, proceeds)
}

// receiver resolves the credited account from the optional rcv
// argument.
func receiver(from interop.Hash160, rcv []byte) interop.Hash160 {
	switch len(rcv) {
	case 0:
		return from
	case interop.Hash160Len:
		return interop.Hash160(rcv)
	case walletV2Size:
		return interop.Hash160(common.WalletToScriptHash(rcv))
	default:
		panic(vaultconst.ErrInvalidReceiver)
	}
}

// takeLock guards every mutating method against reentering while a
// prior call is still in flight, turning any such interleaving into an
// immediate failure instead of queueing.
func takeLock(ctx storage.Context) {
	if storage.Get(ctx, lockKey) != nil {
		panic(vaultconst.ErrReentrantCall)
	}
	storage.Put(ctx, lockKey, true)
}

// releaseLock runs deferred so the flag is dropped on every exit path.
func releaseLock(ctx storage.Context) {
	storage.Delete(ctx, lockKey)
}

func settlementBalance(token, holder interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadOnly, holder).(int)
}
