/*
Package vault implements Vault contract which is deployed to the chain.

Vault contract keeps custodied balances denominated in a single settlement
currency. Deposited assets, native GAS included, are converted into the
settlement currency through a pluggable exchange adapter contract before
anything is credited; the credited amount is always the settlement currency
actually received by the vault, not the amount the adapter promises. The
aggregate custodied value never exceeds the capacity fixed at deploy.

Native GAS deposits are wrapped into the fungible native wrapper token before
conversion, so the adapter sees every input through the same allowance-based
pull protocol. If the adapter fails, a native deposit is refunded to the
depositor in full, while a token deposit follows the refund policy chosen at
deploy.

Withdrawals release the settlement currency directly and are limited per call
by a fixed ceiling. Every state-changing method of the vault is guarded by a
reentrancy lock: nested calls fail immediately.

# Contract notifications

Deposit notification. Emitted on every successful deposit.

	Deposit:
	  - name: user
	    type: Hash160
	  - name: assetIn
	    type: Hash160
	  - name: amountIn
	    type: Integer
	  - name: proceeds
	    type: Integer

Withdrawal notification. Emitted on every successful withdrawal.

	Withdrawal:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer

ExchangeFailed notification. Emitted when the exchange adapter fails to
convert a deposit; no balance is credited in that case.

	ExchangeFailed:
	  - name: user
	    type: Hash160
	  - name: assetIn
	    type: Hash160
	  - name: amountIn
	    type: Integer

# Contract storage scheme

	| Key                 | Value      | Description                          |
	|---------------------|------------|--------------------------------------|
	| `a` + account hash  | int        | custodied balance of the account     |
	| `s`                 | Hash160    | settlement currency contract         |
	| `n`                 | Hash160    | native wrapper contract              |
	| `x`                 | Hash160    | exchange adapter contract            |
	| `c`                 | int        | custody capacity                     |
	| `r`                 | bool       | refund token deposits on failure     |
	| `t`                 | int        | aggregate custodied value            |
	| `d`                 | int        | successful deposit counter           |
	| `w`                 | int        | successful withdrawal counter        |
	| `l`                 | bool       | reentrancy lock, absent when idle    |
*/
package vault
