/*
Package exchange implements Exchange contract, a fixed-rate conversion
adapter used by the Vault contract.

The adapter converts supported assets into a single settlement currency
at committee-configured rational rates and pays the output from its own
settlement currency reserve. Input assets are pulled from the calling
contract through the allowance protocol, so a caller authorizes the
adapter for the exact input amount and invokes convertExactInput within
one transaction. All failure modes throw, leaving no partial state at
the adapter: validation happens strictly before the input is pulled.

The reserve is funded by plain settlement currency transfers to the
adapter.

# Contract notifications

Converted notification. Emitted on every completed conversion.

	Converted:
	  - name: assetIn
	    type: Hash160
	  - name: amountIn
	    type: Integer
	  - name: amountOut
	    type: Integer

# Contract storage scheme

	| Key              | Value   | Description                             |
	|------------------|---------|-----------------------------------------|
	| `s`              | Hash160 | settlement currency contract            |
	| `r` + asset hash | []int   | serialized (numerator, denominator)     |
*/
package exchange
