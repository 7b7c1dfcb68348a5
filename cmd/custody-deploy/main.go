// Command custody-deploy compiles the custody contract suite and
// deploys it to a Neo chain in dependency order: settlement token,
// native wrapper, exchange adapter, vault. Optionally it configures the
// wrapped GAS conversion rate on the freshly deployed adapter.
//
// The deploying account must be able to pay for deployment; rate
// configuration additionally requires the committee witness, so it is
// only useful on private chains where the deployer is the committee.
package main

import (
	"context"
	"flag"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

type contractSource struct {
	name string
	dir  string
}

type compiledContract struct {
	hash     util.Uint160
	nef      *nef.File
	manifest *manifest.Manifest
}

func main() {
	endpoint := flag.String("rpc", "", "network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "path to the NEP-6 wallet of the deployer")
	password := flag.String("password", "", "password of the deployer account")
	contractsDir := flag.String("contracts", "contracts", "path to the contract sources")
	capacity := flag.Int64("capacity", 0, "custody capacity in settlement base units")
	refund := flag.Bool("refund-on-failure", false, "refund token deposits on conversion failure")
	rateNum := flag.Int64("rate-num", 0, "wrapped GAS rate numerator, 0 skips rate setup")
	rateDenom := flag.Int64("rate-denom", 1, "wrapped GAS rate denominator")

	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	switch {
	case *endpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	case *capacity <= 0:
		log.Fatal("capacity must be positive")
	}

	log = log.With(zap.Stringer("deployment", uuid.New()))

	if err := run(log, *endpoint, *walletPath, *password, *contractsDir,
		*capacity, *refund, *rateNum, *rateDenom); err != nil {
		log.Fatal("deployment failed", zap.Error(err))
	}

	log.Info("custody suite is deployed")
}

func run(log *zap.Logger, endpoint, walletPath, password, contractsDir string,
	capacity int64, refund bool, rateNum, rateDenom int64) error {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	acc := w.Accounts[0]
	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return fmt.Errorf("decrypt account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create RPC client: %w", err)
	}
	defer c.Close()

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("create actor: %w", err)
	}

	sender := acc.ScriptHash()

	sources := []contractSource{
		{"token", path.Join(contractsDir, "token")},
		{"wrapper", path.Join(contractsDir, "wrapper")},
		{"exchange", path.Join(contractsDir, "exchange")},
		{"vault", path.Join(contractsDir, "vault")},
	}

	compiled := make(map[string]compiledContract, len(sources))
	for _, src := range sources {
		cc, err := compileContract(sender, src.dir)
		if err != nil {
			return fmt.Errorf("compile %s: %w", src.name, err)
		}
		compiled[src.name] = cc
		log.Info("contract compiled",
			zap.String("name", src.name),
			zap.Stringer("hash", cc.hash))
	}

	deployData := map[string]any{
		"token":    nil,
		"wrapper":  nil,
		"exchange": []any{compiled["token"].hash},
		"vault": []any{
			compiled["token"].hash,
			compiled["wrapper"].hash,
			compiled["exchange"].hash,
			capacity,
			refund,
		},
	}

	mgmt := management.New(act)
	for _, src := range sources {
		cc := compiled[src.name]

		txHash, vub, err := mgmt.Deploy(cc.nef, cc.manifest, deployData[src.name])
		aer, err := act.Wait(txHash, vub, err)
		if err != nil {
			return fmt.Errorf("deploy %s: %w", src.name, err)
		}
		if aer.VMState != vmstate.Halt {
			return fmt.Errorf("deploy %s: %s", src.name, aer.FaultException)
		}

		log.Info("contract deployed",
			zap.String("name", src.name),
			zap.Stringer("hash", cc.hash),
			zap.Stringer("tx", txHash))
	}

	if rateNum > 0 {
		txHash, vub, err := act.SendCall(compiled["exchange"].hash, "setRate",
			compiled["wrapper"].hash, rateNum, rateDenom)
		aer, err := act.Wait(txHash, vub, err)
		if err != nil {
			return fmt.Errorf("set rate: %w", err)
		}
		if aer.VMState != vmstate.Halt {
			return fmt.Errorf("set rate: %s", aer.FaultException)
		}

		log.Info("wrapped GAS rate configured",
			zap.Int64("num", rateNum), zap.Int64("denom", rateDenom))
	}

	return nil
}

func compileContract(sender util.Uint160, dir string) (compiledContract, error) {
	var cc compiledContract

	ne, di, err := compiler.CompileWithOptions(dir, nil, nil)
	if err != nil {
		return cc, err
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(dir, "config.yml"))
	if err != nil {
		return cc, err
	}

	o := &compiler.Options{
		Name:                       conf.Name,
		ContractEvents:             conf.Events,
		ContractSupportedStandards: conf.SupportedStandards,
		SafeMethods:                conf.SafeMethods,
	}
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return cc, err
	}

	cc.hash = state.CreateContractHash(sender, ne.Checksum, m.Name)
	cc.nef = ne
	cc.manifest = m
	return cc, nil
}
