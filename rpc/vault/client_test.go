package vault

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	traversed  bool
	terminated bool
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	t.traversed = true
	return nil, nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	t.terminated = true
	return nil
}

func TestReaderIntGetters(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	for _, f := range []func() (*big.Int, error){
		r.Capacity, r.WithdrawalCeiling, r.DepositCount, r.WithdrawalCount, r.Version,
	} {
		_, err := f()
		require.Error(t, err)
	}
	_, err := r.BalanceOf(util.Uint160{5})
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(100500)},
	}
	for _, f := range []func() (*big.Int, error){
		r.Capacity, r.WithdrawalCeiling, r.DepositCount, r.WithdrawalCount, r.Version,
	} {
		v, err := f()
		require.NoError(t, err)
		require.Equal(t, big.NewInt(100500), v)
	}
	v, err := r.BalanceOf(util.Uint160{5})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100500), v)
}

func TestReaderAccounts(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, _, err := r.Accounts()
	require.Error(t, err)
	_, err = r.AccountsExpanded(10)
	require.Error(t, err)

	ti.err = nil
	iid := uuid.New()
	sid := uuid.New()
	ti.res = &result.Invoke{
		State:   "HALT",
		Session: sid,
		Stack: []stackitem.Item{
			stackitem.NewInterop(result.Iterator{ID: &iid}),
		},
	}
	gotSID, iter, err := r.Accounts()
	require.NoError(t, err)
	require.Equal(t, sid, gotSID)
	require.Equal(t, &iid, iter.ID)

	_, err = r.TraverseAccounts(gotSID, &iter, 10)
	require.NoError(t, err)
	require.True(t, ti.traversed)

	require.NoError(t, r.TerminateAccounts(gotSID))
	require.True(t, ti.terminated)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{stackitem.Make(42)}),
		},
	}
	items, err := r.AccountsExpanded(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
