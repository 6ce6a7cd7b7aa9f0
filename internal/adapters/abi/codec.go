package abi

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
)

// Codec decodes raw constructor argument bytes against a constructor's
// parameter list and serializes the decoded values into the JSON-safe shape
// stored in the deployment log.
type Codec struct{}

// NewCodec creates a new constructor argument codec.
func NewCodec() *Codec {
	return &Codec{}
}

// DecodeConstructorArgs decodes the ABI-encoded constructor arguments and
// returns one JSON-safe value per parameter, keyed by parameter name.
func (c *Codec) DecodeConstructorArgs(inputs abi.Arguments, data []byte) (models.ConstructorArgs, error) {
	values, err := inputs.UnpackValues(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode constructor arguments: %w", err)
	}
	return serializeArgs(inputs, values)
}

// serializeArgs serializes decoded values positionally against their
// parameter specs. The two slices always have equal length because the values
// were decoded using the same parameter list; a mismatch is a caller bug.
func serializeArgs(params abi.Arguments, values []any) (models.ConstructorArgs, error) {
	args := make(models.ConstructorArgs, len(params))
	for i, param := range params {
		v, err := serializeValue(param.Type, values[i])
		if err != nil {
			return nil, err
		}
		args[param.Name] = v
	}
	return args, nil
}

// serializeValue maps one decoded value to its log representation. Numbers
// become decimal strings regardless of bit width so values above 2^53 survive
// the trip through JSON, and booleans stay literal strings for compatibility
// with logs written by earlier tooling.
func serializeValue(typ abi.Type, value any) (any, error) {
	switch typ.T {
	case abi.AddressTy:
		return value.(common.Address).Hex(), nil

	case abi.BoolTy:
		return fmt.Sprintf("%t", value.(bool)), nil

	case abi.FixedBytesTy:
		rv := reflect.ValueOf(value)
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return hexutil.Encode(b), nil

	case abi.IntTy, abi.UintTy:
		// int8..int64 and uint8..uint64 for narrow widths, *big.Int above.
		return fmt.Sprintf("%d", value), nil

	case abi.StringTy:
		return value.(string), nil

	case abi.FunctionTy:
		f := value.([24]byte)
		return hexutil.Encode(f[:]), nil

	case abi.BytesTy:
		// Re-encode with the single-value ABI rule (offset + length framing)
		// rather than emitting the raw bytes. The framing is redundant but
		// logs have always stored it this way.
		packed, err := abi.Arguments{{Type: typ}}.Pack(value)
		if err != nil {
			return nil, fmt.Errorf("failed to re-encode bytes argument: %w", err)
		}
		return hex.EncodeToString(packed), nil

	case abi.TupleTy:
		rv := reflect.ValueOf(value)
		args := make(models.ConstructorArgs, len(typ.TupleElems))
		for i, elem := range typ.TupleElems {
			v, err := serializeValue(*elem, rv.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			args[typ.TupleRawNames[i]] = v
		}
		return args, nil

	case abi.SliceTy, abi.ArrayTy:
		return nil, &domain.UnsupportedTypeError{Type: typ.String()}

	default:
		return nil, &domain.UnsupportedTypeError{Type: typ.String()}
	}
}
