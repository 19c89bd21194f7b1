// A mosaic node validates utility systems and commits chains onto
// each other. This snapshot only performs a single diagnostic pass:
// connect to the origin chain and print its accounts.

package node

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/mosaicdao/mosaic-node/config"
	"github.com/mosaicdao/mosaic-node/etherman"
)

// Node runs one observation pass against the origin chain.
type Node struct {
	cfg  *config.Config
	dial Dialer
	out  io.Writer
}

// NewNode creates a node that dials real endpoints and prints to stdout.
func NewNode(cfg *config.Config) *Node {
	return NewNodeWithDialer(cfg, dialEtherman, os.Stdout)
}

// NewNodeWithDialer lets callers substitute the chain client and the
// output stream. Used in tests.
func NewNodeWithDialer(cfg *config.Config, dial Dialer, out io.Writer) *Node {
	return &Node{
		cfg:  cfg,
		dial: dial,
		out:  out,
	}
}

// Run connects to the origin chain and prints all of its accounts,
// one per line under an "Accounts:" header, in the order the chain
// client returned them. Connection or query failure is returned
// unchanged. The auxiliary chain is not observed yet.
func (n *Node) Run(ctx context.Context) error {
	logger.Debugf("connecting to origin chain at %s", n.cfg.OriginAddress)

	client, err := n.dial(n.cfg.OriginAddress)
	if err != nil {
		return err
	}
	defer client.Close()

	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(n.out, "Accounts:")
	for _, account := range accounts {
		fmt.Fprintln(n.out, account)
	}

	return nil
}

func dialEtherman(address string) (ChainClient, error) {
	return etherman.NewEtherman(&etherman.Config{URL: address})
}
