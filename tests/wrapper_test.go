package tests

import (
	"testing"

	"github.com/custodia-chain/custody-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newWrapperInvoker(t *testing.T) (*neotest.Executor, *neotest.ContractInvoker, util.Uint160) {
	e := newExecutor(t)
	h := deployWrapperContract(t, e)
	return e, e.CommitteeInvoker(h), h
}

func TestWrapper_WrapUnwrap(t *testing.T) {
	e, c, wrapperH := newWrapperInvoker(t)

	acc := c.NewAccount(t)
	accH := acc.ScriptHash()

	const amount = 5 * oneGAS

	gasH := e.NativeHash(t, nativenames.Gas)
	e.NewInvoker(gasH, acc).Invoke(t, stackitem.NewBool(true), "transfer",
		accH, wrapperH, int64(amount), nil)

	c.Invoke(t, stackitem.Make(amount), "balanceOf", accH)
	c.Invoke(t, stackitem.Make(amount), "totalSupply")
	require.EqualValues(t, amount, e.Chain.GetUtilityTokenBalance(wrapperH).Int64())

	cAcc := c.WithSigners(acc)

	t.Run("missing witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"unwrap", accH, int64(amount))
	})

	t.Run("zero amount", func(t *testing.T) {
		cAcc.InvokeFail(t, "amount must be positive", "unwrap", accH, int64(0))
	})

	t.Run("above balance", func(t *testing.T) {
		cAcc.InvokeFail(t, "not enough tokens to burn", "unwrap", accH, int64(amount+1))
	})

	cAcc.Invoke(t, stackitem.Null{}, "unwrap", accH, int64(amount))

	c.Invoke(t, stackitem.Make(0), "balanceOf", accH)
	c.Invoke(t, stackitem.Make(0), "totalSupply")
	require.EqualValues(t, 0, e.Chain.GetUtilityTokenBalance(wrapperH).Int64())
}

func TestWrapper_RejectsForeignTokens(t *testing.T) {
	e, _, wrapperH := newWrapperInvoker(t)

	tokenH := deployTokenContract(t, e)

	acc := e.NewAccount(t)
	accH := acc.ScriptHash()

	e.CommitteeInvoker(tokenH).Invoke(t, stackitem.Null{}, "mint", accH, int64(100))
	e.NewInvoker(tokenH, acc).InvokeFail(t, "ABORT",
		"transfer", accH, wrapperH, int64(100), nil)
}

func TestWrapper_Metadata(t *testing.T) {
	_, c, _ := newWrapperInvoker(t)

	c.Invoke(t, stackitem.Make("WGAS"), "symbol")
	c.Invoke(t, stackitem.Make(8), "decimals")
	c.Invoke(t, stackitem.Make(common.Version), "version")
}
