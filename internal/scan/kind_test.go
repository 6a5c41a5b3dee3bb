package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTable(t *testing.T) {
	assert.Equal(t, byte('p'), KindPackage.Letter())
	assert.Equal(t, byte('m'), KindMessage.Letter())
	assert.Equal(t, byte('f'), KindField.Letter())
	assert.Equal(t, byte('e'), KindEnumConstant.Letter())
	assert.Equal(t, byte('g'), KindEnum.Letter())
	assert.Equal(t, byte('s'), KindService.Letter())
	assert.Equal(t, byte('r'), KindRpc.Letter())

	assert.Equal(t, "enumerator", KindEnumConstant.Name())
	assert.Equal(t, "enum constants", KindEnumConstant.Plural())
	assert.Equal(t, "RPC methods", KindRpc.Plural())
}

func TestKindDefaults(t *testing.T) {
	for _, k := range Kinds() {
		if k == KindRpc {
			assert.False(t, k.EnabledByDefault())
		} else {
			assert.True(t, k.EnabledByDefault(), k.Name())
		}
	}

	set := DefaultKinds()
	assert.False(t, set[KindRpc])
	assert.True(t, set[KindMessage])
	assert.Len(t, set, 6)
}

func TestKindFromLetter(t *testing.T) {
	k, ok := KindFromLetter('g')
	require.True(t, ok)
	assert.Equal(t, KindEnum, k)

	_, ok = KindFromLetter('z')
	assert.False(t, ok)
}

func TestKindFromName(t *testing.T) {
	k, ok := KindFromName("rpc")
	require.True(t, ok)
	assert.Equal(t, KindRpc, k)

	_, ok = KindFromName("widget")
	assert.False(t, ok)
}

func TestKindsFromLetters(t *testing.T) {
	set, err := KindsFromLetters("pmr")
	require.Nil(t, err)
	assert.True(t, set[KindPackage])
	assert.True(t, set[KindMessage])
	assert.True(t, set[KindRpc])
	assert.False(t, set[KindField])

	_, err = KindsFromLetters("px!")
	require.NotNil(t, err)
}
