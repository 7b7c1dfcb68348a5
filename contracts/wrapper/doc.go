/*
Package wrapper implements Wrapper contract, a NEP-17 token backed one
to one by native GAS.

Sending GAS to the contract mints the same amount of WGAS to the
sender; Unwrap burns WGAS and releases the backing GAS. Total supply
always equals the GAS held by the contract. The token extends NEP-17
with an exact-amount allowance protocol (approve, allowance,
transferFrom) so that contracts can pull wrapped GAS like any other
custodied asset.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. Emitted on every allowance change.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package wrapper
