package vaultconst

const (
	// Decimals is the precision of custodied balances. It matches the
	// settlement currency precision.
	Decimals = 6

	// WithdrawalCeiling is the maximum amount, in settlement base
	// units, a single Withdraw call may release. It is independent of
	// the vault capacity and is not cumulative across calls.
	WithdrawalCeiling = 1_000 * 1_000_000
)

// Event names produced by the vault contract.
const (
	// DepositEvent is emitted on every successful deposit with the
	// credited account, input asset, input amount and measured proceeds.
	DepositEvent = "Deposit"
	// WithdrawalEvent is emitted on every successful withdrawal.
	WithdrawalEvent = "Withdrawal"
	// ExchangeFailedEvent is emitted when the exchange adapter fails to
	// convert a deposit. The deposit is not credited; the native path
	// refunds the depositor, the token path follows the deploy-time
	// refund policy.
	ExchangeFailedEvent = "ExchangeFailed"
)

// Failure messages thrown by the vault contract. Each failure mode has
// its own message so that callers and tests can tell them apart;
// messages carrying amounts append them after a colon.
const (
	// ErrZeroAmount is thrown on a zero or negative deposit or
	// withdrawal amount.
	ErrZeroAmount = "amount must be positive"
	// ErrZeroProceeds is thrown when a conversion produced no
	// settlement currency.
	ErrZeroProceeds = "conversion produced no proceeds"
	// ErrCapacityExceeded is thrown when crediting the measured
	// proceeds would push total custody above the configured capacity.
	// It carries the current total, attempted proceeds and capacity.
	ErrCapacityExceeded = "capacity exceeded"
	// ErrInsufficientBalance is thrown on withdrawing more than the
	// account holds. It carries the available and requested amounts.
	ErrInsufficientBalance = "insufficient balance"
	// ErrCeilingExceeded is thrown on withdrawing more than
	// WithdrawalCeiling in one call. It carries the ceiling and the
	// requested amount.
	ErrCeilingExceeded = "withdrawal ceiling exceeded"
	// ErrTransferFailed is thrown when an asset transfer the vault
	// depends on did not succeed. It carries the asset involved.
	ErrTransferFailed = "asset transfer failed"
	// ErrReentrantCall is thrown when a mutating method is entered
	// while another one is still in flight.
	ErrReentrantCall = "reentrant call"
	// ErrInvalidConfig is thrown at deploy on zero addresses or
	// non-positive capacity.
	ErrInvalidConfig = "invalid configuration"
	// ErrInvalidAsset is thrown on a malformed token argument.
	ErrInvalidAsset = "invalid asset"
	// ErrInvalidReceiver is thrown on a receiver argument that is
	// neither empty, nor a script hash, nor a V2 format wallet.
	ErrInvalidReceiver = "invalid receiver"
)
