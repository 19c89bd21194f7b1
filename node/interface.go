package node

import "context"

// ChainClient is the capability the node needs from a connected chain.
type ChainClient interface {
	GetAccounts(ctx context.Context) ([]string, error)
	Close()
}

// Dialer opens a client connection to a chain endpoint.
type Dialer func(address string) (ChainClient, error)
