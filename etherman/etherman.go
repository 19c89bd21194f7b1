package etherman

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// jsonRPCCaller is the slice of the json rpc client the etherman uses.
// *rpc.Client satisfies it; tests substitute a SimulatedRPC.
type jsonRPCCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Close()
}

// Wrapper of the eth json rpc client.
type Etherman struct {
	rpcClient jsonRPCCaller
}

// NewEtherman dials the node at cfg.URL.
// Dial failure is returned unchanged to the caller.
func NewEtherman(cfg *Config) (*Etherman, error) {
	rpcClient, err := rpc.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	return &Etherman{
		rpcClient: rpcClient,
	}, nil
}

// GetAccounts queries the node for the accounts it manages.
// Addresses come back as hex strings in the order the node returned them.
func (etherman *Etherman) GetAccounts(ctx context.Context) ([]string, error) {
	var addresses []ethcommon.Address
	if err := etherman.rpcClient.CallContext(ctx, &addresses, "eth_accounts"); err != nil {
		return nil, err
	}

	accounts := make([]string, 0, len(addresses))
	for _, address := range addresses {
		accounts = append(accounts, address.Hex())
	}

	return accounts, nil
}

// Close the underlying rpc client.
func (etherman *Etherman) Close() {
	etherman.rpcClient.Close()
}
