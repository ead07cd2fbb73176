package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapScan(t *testing.T) {
	var m Map
	require.NoError(t, m.Scan(`{"first_name": "lancelot", "year": 515}`))
	require.Equal(t, "lancelot", m["first_name"])
	require.Equal(t, float64(515), m["year"])

	var fromBytes Map
	require.NoError(t, fromBytes.Scan([]byte(`{"knight": true}`)))
	require.Equal(t, true, fromBytes["knight"])

	var fromNil Map
	require.NoError(t, fromNil.Scan(nil))
	require.Nil(t, fromNil)

	require.Error(t, m.Scan(42))
}

func TestMapValue(t *testing.T) {
	v, err := Map{"first_name": "lancelot"}.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"first_name": "lancelot"}`, string(v.([]byte)))

	v, err = Map(nil).Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
