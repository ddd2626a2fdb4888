package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DefaultABI covers the read methods and events the gateway relies on. It is
// used when no compiled artifact is configured for a registry.
const DefaultABI = `[
	{
		"inputs": [{"name": "tokenId", "type": "uint256"}],
		"name": "ownerOf",
		"outputs": [{"name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "tokenId", "type": "uint256"}],
		"name": "tokenURI",
		"outputs": [{"name": "", "type": "string"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "totalSupply",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "index", "type": "uint256"}],
		"name": "tokenByIndex",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "", "type": "uint256"}],
		"name": "datMetadata",
		"outputs": [
			{"name": "name",        "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "price",       "type": "uint256"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "from",    "type": "address"},
			{"indexed": true, "name": "to",      "type": "address"},
			{"indexed": true, "name": "tokenId", "type": "uint256"}
		],
		"name": "Transfer",
		"type": "event"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true,  "name": "tokenId", "type": "uint256"},
			{"indexed": true,  "name": "owner",   "type": "address"},
			{"indexed": false, "name": "name",    "type": "string"},
			{"indexed": false, "name": "price",   "type": "uint256"}
		],
		"name": "DATMinted",
		"type": "event"
	}
]`

// LoadABI reads a contract ABI from path. Both bare ABI arrays and compiler
// artifacts carrying the ABI under an "abi" key are accepted. An empty path
// yields DefaultABI.
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return abi.JSON(strings.NewReader(DefaultABI))
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to read abi file %s: %w", path, err)
	}

	return ParseABI(contents)
}

func ParseABI(contents []byte) (abi.ABI, error) {
	contents = bytes.TrimSpace(contents)

	if len(contents) > 0 && contents[0] == '{' {
		artifact := struct {
			ABI json.RawMessage `json:"abi"`
		}{}

		if err := json.Unmarshal(contents, &artifact); err != nil {
			return abi.ABI{}, fmt.Errorf("failed to decode contract artifact: %w", err)
		}

		if len(artifact.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("contract artifact has no abi")
		}

		contents = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(contents))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse abi: %w", err)
	}

	return parsed, nil
}
