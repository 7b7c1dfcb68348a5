package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Attacker contract for vault reentrancy tests. Prime points it at the
// vault and arms it; the first withdrawal payout triggers
// OnNEP17Payment which immediately re-enters the vault.

const (
	vaultKey  = 'v'
	amountKey = 'm'
	armedKey  = 'a'
)

func Prime(vault interop.Hash160, amount int) {
	ctx := storage.GetContext()
	storage.Put(ctx, vaultKey, vault)
	storage.Put(ctx, amountKey, amount)
	storage.Put(ctx, armedKey, true)
}

func Withdraw() {
	ctx := storage.GetReadOnlyContext()
	vault := storage.Get(ctx, vaultKey).(interop.Hash160)
	amount := storage.Get(ctx, amountKey).(int)

	contract.Call(vault, "withdraw", contract.All,
		runtime.GetExecutingScriptHash(), amount)
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if storage.Get(ctx, armedKey) == nil {
		return
	}
	storage.Delete(ctx, armedKey)

	vault := storage.Get(ctx, vaultKey).(interop.Hash160)
	withdrawal := storage.Get(ctx, amountKey).(int)

	contract.Call(vault, "withdraw", contract.All,
		runtime.GetExecutingScriptHash(), withdrawal)
}

func Verify() bool {
	return true
}
