package etherman

import (
	"context"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// SimulatedRPC answers eth_accounts with a canned list of addresses.
// Set CallErr to make every call fail.
type SimulatedRPC struct {
	Accounts []ethcommon.Address
	CallErr  error
	Closed   bool
}

func (sim *SimulatedRPC) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if sim.CallErr != nil {
		return sim.CallErr
	}

	if method != "eth_accounts" {
		return fmt.Errorf("unexpected method: %s", method)
	}

	addresses, ok := result.(*[]ethcommon.Address)
	if !ok {
		return fmt.Errorf("unexpected result type: %T", result)
	}
	*addresses = sim.Accounts

	return nil
}

func (sim *SimulatedRPC) Close() {
	sim.Closed = true
}

// NewSimulatedEtherman wires an Etherman to a SimulatedRPC instead of a live node.
func NewSimulatedEtherman(sim *SimulatedRPC) *Etherman {
	return &Etherman{
		rpcClient: sim,
	}
}
