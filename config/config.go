// Configuration of a mosaic node.
// Everything is read from environment variables (strings!),
// with compiled-in fallbacks so a node can always start.

package config

import (
	"os"

	logger "github.com/sirupsen/logrus"
)

// Environment variables and their defaults.
const (
	EnvOriginAddress    = "MOSAIC_ORIGIN_ADDRESS"
	EnvAuxiliaryAddress = "MOSAIC_AUXILIARY_ADDRESS"

	DefaultOriginAddress    = "http://127.0.0.1:8545"
	DefaultAuxiliaryAddress = "http://127.0.0.1:8546"
)

// Lookup resolves a single environment variable by name.
// The second return value reports whether the variable is set at all.
type Lookup func(key string) (string, bool)

// Config holds the endpoints a mosaic node talks to.
// Both fields are always populated once the Config is built.
type Config struct {
	// OriginAddress is the json rpc url of the origin chain, e.g. "http://127.0.0.1:8545"
	OriginAddress string

	// AuxiliaryAddress is the json rpc url of the auxiliary chain.
	// Resolved but not consumed yet; the auxiliary side of the node is not built.
	AuxiliaryAddress string
}

// New resolves a Config against the given environment lookup.
// A variable that is set is used verbatim; an unset variable falls
// back to its default. The two variables are resolved independently.
//
// The error return is reserved for future address validation and is
// never produced by the current lookups.
func New(lookup Lookup) (*Config, error) {
	return &Config{
		OriginAddress:    resolveAddress(lookup, EnvOriginAddress, DefaultOriginAddress, "origin"),
		AuxiliaryAddress: resolveAddress(lookup, EnvAuxiliaryAddress, DefaultAuxiliaryAddress, "auxiliary"),
	}, nil
}

// FromEnv resolves a Config from the process environment.
func FromEnv() (*Config, error) {
	return New(os.LookupEnv)
}

func resolveAddress(lookup Lookup, key string, fallback string, chain string) string {
	address, ok := lookup(key)
	if !ok {
		logger.Infof("No %s chain address given, falling back to default.", chain)
		address = fallback
	}
	logger.Infof("Using %s chain address: %s", chain, address)
	return address
}
