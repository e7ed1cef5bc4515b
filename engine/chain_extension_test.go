package engine

import (
	"testing"

	"github.com/Brushfam/ink/internal/scale"
	"github.com/Brushfam/ink/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainExtensionDispatch(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetCallee(types.BytesToAccountId([]byte("callee")))

	var received []byte
	e.ChainExtensions().Register(7, func(input []byte) (uint32, []byte) {
		received = input
		return 0, []byte("pong")
	})

	out := make([]byte, 64)
	e.CallChainExtension(7, []byte("ping"), out)

	// The handler sees the SCALE-encoded input.
	assert.Equal(t, scale.EncodeBytes([]byte("ping")), received)

	// The output carries the (status code, payload) pair.
	status := out[:4]
	assert.Equal(t, scale.EncodeUint32(0), status)
	payload, _, err := scale.DecodeBytes(out[4:])
	require.NoError(t, err)
	assert.Equal(t, []byte("pong"), payload)
}

func TestChainExtensionStatusCode(t *testing.T) {
	t.Parallel()

	e := New()
	e.ChainExtensions().Register(1, func([]byte) (uint32, []byte) {
		return 5, nil
	})

	out := make([]byte, 16)
	e.CallChainExtension(1, nil, out)

	assert.Equal(t, scale.EncodeUint32(5), out[:4])
}

func TestChainExtensionUnregisteredIsFatal(t *testing.T) {
	t.Parallel()

	e := New()
	assert.Panics(t, func() {
		e.CallChainExtension(42, nil, make([]byte, 16))
	})
}

func TestChainExtensionHandlerEval(t *testing.T) {
	t.Parallel()

	h := NewChainExtensionHandler()
	_, _, err := h.Eval(9, nil)
	require.Error(t, err)

	h.Register(9, func([]byte) (uint32, []byte) { return 3, []byte{1} })
	status, output, err := h.Eval(9, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), status)
	assert.Equal(t, []byte{1}, output)
}
