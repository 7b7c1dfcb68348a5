// Package vault contains RPC wrappers for Custody Vault contract.
package vault

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, operation string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", account))
}

// Capacity invokes `capacity` method of contract.
func (c *ContractReader) Capacity() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "capacity"))
}

// WithdrawalCeiling invokes `withdrawalCeiling` method of contract.
func (c *ContractReader) WithdrawalCeiling() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "withdrawalCeiling"))
}

// DepositCount invokes `depositCount` method of contract.
func (c *ContractReader) DepositCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "depositCount"))
}

// WithdrawalCount invokes `withdrawalCount` method of contract.
func (c *ContractReader) WithdrawalCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "withdrawalCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Accounts invokes `accounts` method of contract and returns an
// iterator session over accounts with a non-zero custodied balance. Use
// TraverseAccounts to fetch items from it and TerminateAccounts to
// close it prematurely.
func (c *ContractReader) Accounts() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "accounts"))
}

// AccountsExpanded is similar to Accounts (uses the same contract
// method), but can be useful if the server used doesn't support
// sessions and doesn't expand iterators. It creates a script that will
// return up to num of iterated items.
func (c *ContractReader) AccountsExpanded(num int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "accounts", num))
}

// TraverseAccounts fetches the next num items from the iterator session
// opened by Accounts.
func (c *ContractReader) TraverseAccounts(sessionID uuid.UUID, iter *result.Iterator, num int) ([]stackitem.Item, error) {
	return c.invoker.TraverseIterator(sessionID, iter, num)
}

// TerminateAccounts closes the iterator session opened by Accounts.
func (c *ContractReader) TerminateAccounts(sessionID uuid.UUID) error {
	return c.invoker.TerminateSession(sessionID)
}

// DepositNative creates a transaction invoking `depositNative` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DepositNative(from util.Uint160, amount, minProceeds *big.Int, rcv []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "depositNative", from, amount, minProceeds, rcv)
}

// DepositNativeTransaction creates a transaction invoking `depositNative` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositNativeTransaction(from util.Uint160, amount, minProceeds *big.Int, rcv []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "depositNative", from, amount, minProceeds, rcv)
}

// DepositNativeUnsigned creates a transaction invoking `depositNative` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositNativeUnsigned(from util.Uint160, amount, minProceeds *big.Int, rcv []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "depositNative", nil, from, amount, minProceeds, rcv)
}

// DepositToken creates a transaction invoking `depositToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DepositToken(from, token util.Uint160, amount, minProceeds *big.Int, rcv []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "depositToken", from, token, amount, minProceeds, rcv)
}

// DepositTokenTransaction creates a transaction invoking `depositToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTokenTransaction(from, token util.Uint160, amount, minProceeds *big.Int, rcv []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "depositToken", from, token, amount, minProceeds, rcv)
}

// DepositTokenUnsigned creates a transaction invoking `depositToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositTokenUnsigned(from, token util.Uint160, amount, minProceeds *big.Int, rcv []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "depositToken", nil, from, token, amount, minProceeds, rcv)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", from, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", from, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, from, amount)
}
