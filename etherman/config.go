package etherman

type Config struct {
	// URL is the json rpc URL of the Ethereum node
	URL string
}
