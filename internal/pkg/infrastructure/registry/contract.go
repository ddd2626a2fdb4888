package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrReverted is wrapped by every contract read that the node reports as an
// execution revert. For the ERC-721 read methods this is how a registry
// signals a token that does not exist.
var ErrReverted = errors.New("execution reverted")

// revertErrorCode is the JSON-RPC error code geth and most other clients use
// for reverted eth_call executions.
const revertErrorCode = 3

// watchedEvents are the events that mark a change in the directory listing.
var watchedEvents = []string{"Transfer", "DATMinted"}

// Metadata is the on-chain record returned by datMetadata.
type Metadata struct {
	Name        string
	Description string
	Price       *big.Int
}

//go:generate moq -rm -out reader_mock.go . Reader
type Reader interface {
	Registry() domain.Registry
	Enumerable() bool

	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	TotalSupply(ctx context.Context) (uint64, error)
	TokenByIndex(ctx context.Context, index uint64) (uint64, error)
	DatMetadata(ctx context.Context, tokenID uint64) (*Metadata, error)
}

// Contract is a read-only binding to one deployed DAT registry.
type Contract struct {
	registry   domain.Registry
	address    common.Address
	abi        abi.ABI
	contract   *bind.BoundContract
	enumerable bool
}

type ContractOption func(*Contract)

// Enumerable makes the directory walk the registry by position through
// tokenByIndex instead of assuming dense ids starting at 1.
func Enumerable(enabled bool) ContractOption {
	return func(c *Contract) {
		c.enumerable = enabled
	}
}

func NewContract(registry domain.Registry, addr common.Address, parsed abi.ABI, caller bind.ContractCaller, options ...ContractOption) *Contract {
	c := &Contract{
		registry: registry,
		address:  addr,
		abi:      parsed,
		contract: bind.NewBoundContract(addr, parsed, caller, nil, nil),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

func (c *Contract) Registry() domain.Registry {
	return c.registry
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) Enumerable() bool {
	return c.enumerable
}

// EventTopics returns the topic hashes of the ownership and mint events
// declared in the registry ABI.
func (c *Contract) EventTopics() []common.Hash {
	topics := []common.Hash{}

	for _, name := range watchedEvents {
		if event, ok := c.abi.Events[name]; ok {
			topics = append(topics, event.ID)
		}
	}

	return topics
}

func (c *Contract) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	var out []interface{}
	err := c.call(ctx, &out, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}

	owner, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("unexpected ownerOf result type %T", out[0])
	}

	return owner.Hex(), nil
}

func (c *Contract) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	var out []interface{}
	err := c.call(ctx, &out, "tokenURI", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}

	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected tokenURI result type %T", out[0])
	}

	return uri, nil
}

func (c *Contract) TotalSupply(ctx context.Context) (uint64, error) {
	var out []interface{}
	err := c.call(ctx, &out, "totalSupply")
	if err != nil {
		return 0, err
	}

	return toUint64("totalSupply", out[0])
}

func (c *Contract) TokenByIndex(ctx context.Context, index uint64) (uint64, error) {
	var out []interface{}
	err := c.call(ctx, &out, "tokenByIndex", new(big.Int).SetUint64(index))
	if err != nil {
		return 0, err
	}

	return toUint64("tokenByIndex", out[0])
}

// DatMetadata supports both the public mapping getter, which returns the
// struct members as separate outputs, and accessors returning a single tuple.
func (c *Contract) DatMetadata(ctx context.Context, tokenID uint64) (*Metadata, error) {
	var out []interface{}
	err := c.call(ctx, &out, "datMetadata", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, err
	}

	if len(out) == 1 {
		tuple := abi.ConvertType(out[0], new(Metadata)).(*Metadata)
		return tuple, nil
	}

	if len(out) < 3 {
		return nil, fmt.Errorf("datMetadata returned %d values, expected 3", len(out))
	}

	meta := &Metadata{}
	var ok bool

	if meta.Name, ok = out[0].(string); !ok {
		return nil, fmt.Errorf("unexpected datMetadata name type %T", out[0])
	}
	if meta.Description, ok = out[1].(string); !ok {
		return nil, fmt.Errorf("unexpected datMetadata description type %T", out[1])
	}
	if meta.Price, ok = out[2].(*big.Int); !ok {
		return nil, fmt.Errorf("unexpected datMetadata price type %T", out[2])
	}

	return meta, nil
}

func (c *Contract) call(ctx context.Context, out *[]interface{}, method string, params ...interface{}) error {
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, out, method, params...)
	if err != nil {
		if IsReverted(err) {
			return fmt.Errorf("%s on %s registry: %w (%s)", method, c.registry, ErrReverted, err.Error())
		}
		return fmt.Errorf("%s on %s registry failed: %w", method, c.registry, err)
	}

	if len(*out) == 0 {
		return fmt.Errorf("%s on %s registry returned no values", method, c.registry)
	}

	return nil
}

// IsReverted reports whether err is a reverted contract execution, as
// opposed to a transport or node failure.
func IsReverted(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrReverted) {
		return true
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

func toUint64(method string, value interface{}) (uint64, error) {
	n, ok := value.(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected %s result type %T", method, value)
	}

	if !n.IsUint64() {
		return 0, fmt.Errorf("%s result %s does not fit in uint64", method, n.String())
	}

	return n.Uint64(), nil
}
