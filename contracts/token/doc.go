/*
Package token implements Token contract, the NEP-17 settlement currency
of the custody suite.

CUSD is issued and destroyed by the committee and is the only currency
custodied balances are denominated in. The token extends NEP-17 with an
exact-amount allowance protocol (approve, allowance, transferFrom) so
that the vault and the exchange adapter can pull it from accounts that
authorized them beforehand.

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
package token
