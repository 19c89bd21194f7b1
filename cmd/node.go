// Node = config resolution + one observation pass against the origin chain.
// Everything is configured via environment variables (strings!).

package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/mosaicdao/mosaic-node/config"
	"github.com/mosaicdao/mosaic-node/node"
)

// StartNode runs a single observation pass with the given configuration
// and blocks until it finishes.
func StartNode(cfg *config.Config) error {
	n := node.NewNode(cfg)

	if err := n.Run(context.Background()); err != nil {
		logger.Errorf("node run failed: %v", err)
		return err
	}

	return nil
}
