package model

import "github.com/ethereum/go-ethereum/common"

// Network labels the ledger a token lives on.
type Network string

var (
	Ethereum Network = "ethereum"
	Polygon  Network = "polygon"
)

// TokenMetadata describes the scanned token contract.
type TokenMetadata struct {
	Address     common.Address
	Symbol      string
	Name        string
	Decimals    uint8
	TotalSupply float64
}
