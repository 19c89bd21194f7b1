package node

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicdao/mosaic-node/config"
)

type fakeClient struct {
	accounts []string
	queryErr error
	closed   bool
}

func (c *fakeClient) GetAccounts(ctx context.Context) ([]string, error) {
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.accounts, nil
}

func (c *fakeClient) Close() {
	c.closed = true
}

func testConfig() *config.Config {
	cfg, _ := config.New(func(string) (string, bool) { return "", false })
	return cfg
}

func TestRunPrintsAccounts(t *testing.T) {
	client := &fakeClient{accounts: []string{"0xAA", "0xBB"}}

	var dialed string
	dial := func(address string) (ChainClient, error) {
		dialed = address
		return client, nil
	}

	var out bytes.Buffer
	n := NewNodeWithDialer(testConfig(), dial, &out)

	err := n.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Accounts:\n0xAA\n0xBB\n", out.String())
	assert.Equal(t, config.DefaultOriginAddress, dialed)
	assert.True(t, client.closed)
}

func TestRunPrintsHeaderForEmptyAccountList(t *testing.T) {
	dial := func(address string) (ChainClient, error) {
		return &fakeClient{}, nil
	}

	var out bytes.Buffer
	n := NewNodeWithDialer(testConfig(), dial, &out)

	err := n.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Accounts:\n", out.String())
}

func TestRunPropagatesConnectError(t *testing.T) {
	connectErr := errors.New("no route to host")
	dial := func(address string) (ChainClient, error) {
		return nil, connectErr
	}

	var out bytes.Buffer
	n := NewNodeWithDialer(testConfig(), dial, &out)

	err := n.Run(context.Background())
	assert.ErrorIs(t, err, connectErr)
	assert.Equal(t, "", out.String())
}

func TestRunPropagatesQueryError(t *testing.T) {
	queryErr := errors.New("query failed")
	client := &fakeClient{queryErr: queryErr}
	dial := func(address string) (ChainClient, error) {
		return client, nil
	}

	var out bytes.Buffer
	n := NewNodeWithDialer(testConfig(), dial, &out)

	err := n.Run(context.Background())
	assert.ErrorIs(t, err, queryErr)
	assert.Equal(t, "", out.String())
	assert.True(t, client.closed)
}
