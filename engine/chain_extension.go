package engine

import (
	"fmt"
)

// ChainExtensionFn handles one chain-extension call. It receives the
// SCALE-encoded input and returns a status code together with the output
// payload.
type ChainExtensionFn func(input []byte) (statusCode uint32, output []byte)

// ChainExtensionHandler maps numeric function identifiers to registered
// handlers, for custom host calls outside the built-in operation set.
type ChainExtensionHandler struct {
	registered map[uint32]ChainExtensionFn
}

func NewChainExtensionHandler() *ChainExtensionHandler {
	return &ChainExtensionHandler{
		registered: make(map[uint32]ChainExtensionFn),
	}
}

// Register installs the handler for funcID, replacing any previous one.
func (h *ChainExtensionHandler) Register(funcID uint32, fn ChainExtensionFn) {
	h.registered[funcID] = fn
}

// Eval dispatches the call registered at funcID. An unregistered identifier
// is reported as an error; the engine treats it as fatal.
func (h *ChainExtensionHandler) Eval(funcID uint32, input []byte) (uint32, []byte, error) {
	fn, ok := h.registered[funcID]
	if !ok {
		return 0, nil, fmt.Errorf("no chain extension method registered at func id %d", funcID)
	}
	statusCode, output := fn(input)
	return statusCode, output, nil
}
