package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	tokenPath     = "../contracts/token"
	wrapperPath   = "../contracts/wrapper"
	exchangePath  = "../contracts/exchange"
	vaultPath     = "../contracts/vault"
	reentrantPath = "../internal/testcontracts/reentrant"
)

const (
	oneGAS  = 1_0000_0000
	oneCUSD = 1_000000

	// Default suite configuration: 1 GAS converts into 2000 CUSD, the
	// vault custodies at most 10000 CUSD and the adapter reserve covers
	// every test conversion.
	vaultCapacity   = 10_000 * oneCUSD
	exchangeReserve = 100_000 * oneCUSD
	wgasRateNum     = 20
	wgasRateDenom   = 1
)

func deployTokenContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func deployWrapperContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, wrapperPath, path.Join(wrapperPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func deployExchangeContract(t *testing.T, e *neotest.Executor, settlement util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, exchangePath, path.Join(exchangePath, "config.yml"))
	e.DeployContract(t, c, []any{settlement})
	return c.Hash
}

func deployVaultContract(t *testing.T, e *neotest.Executor, settlement, wrapper, exchange util.Uint160,
	capacity int64, refundOnFailure bool) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, vaultPath, path.Join(vaultPath, "config.yml"))
	e.DeployContract(t, c, []any{settlement, wrapper, exchange, capacity, refundOnFailure})
	return c.Hash
}

func deployReentrantContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reentrantPath, path.Join(reentrantPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

type custodySuite struct {
	e *neotest.Executor

	token    util.Uint160
	wrapper  util.Uint160
	exchange util.Uint160
	vault    util.Uint160
}

// newCustodySuite deploys the whole contract suite, funds the adapter
// reserve with freshly minted settlement currency and configures the
// wrapped GAS conversion rate.
func newCustodySuite(t *testing.T, refundOnFailure bool) custodySuite {
	e := newExecutor(t)

	s := custodySuite{e: e}
	s.token = deployTokenContract(t, e)
	s.wrapper = deployWrapperContract(t, e)
	s.exchange = deployExchangeContract(t, e, s.token)
	s.vault = deployVaultContract(t, e, s.token, s.wrapper, s.exchange, vaultCapacity, refundOnFailure)

	e.CommitteeInvoker(s.token).Invoke(t, stackitem.Null{}, "mint",
		s.exchange, int64(exchangeReserve))
	e.CommitteeInvoker(s.exchange).Invoke(t, stackitem.Null{}, "setRate",
		s.wrapper, wgasRateNum, wgasRateDenom)

	return s
}
