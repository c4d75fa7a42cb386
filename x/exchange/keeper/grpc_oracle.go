package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// GrpcApprovalOracle resolves trade approvals through path-addressed chain
// queries. Requests and responses use plain protobuf wire encoding so the
// oracle does not depend on generated descriptors for the remote service.
type GrpcApprovalOracle struct {
	querier types.PathQuerier
}

func NewGrpcApprovalOracle(querier types.PathQuerier) GrpcApprovalOracle {
	return GrpcApprovalOracle{querier: querier}
}

var _ types.ApprovalOracle = GrpcApprovalOracle{}

func (o GrpcApprovalOracle) ValidateWrappedTokenForTrade(ctx context.Context, contractAddress string) (bool, error) {
	req := protowire.AppendTag(nil, 1, protowire.BytesType)
	req = protowire.AppendString(req, contractAddress)

	resp, err := o.querier.Query(ctx, types.ValidateWrappedTokenPath, req)
	if err != nil {
		return false, err
	}
	return decodeBoolField(resp, 1)
}

func (o GrpcApprovalOracle) ApprovedTokensForTrade(ctx context.Context) ([]types.TokenOrigin, error) {
	resp, err := o.querier.Query(ctx, types.ApprovedTokensPath, nil)
	if err != nil {
		return nil, err
	}
	return decodeTokenOrigins(resp)
}

// decodeBoolField scans a wire message for a varint field and reads it as a
// bool. Absent field means false, the proto3 default.
func decodeBoolField(b []byte, field protowire.Number) (bool, error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return false, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if num == field && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return false, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
			}
			return v != 0, nil
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return false, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return false, nil
}

// decodeTokenOrigins reads the repeated message field 1 of the approved
// tokens response, where each element carries chain_id (1) and
// contract_address (2) as strings.
func decodeTokenOrigins(b []byte) ([]types.TokenOrigin, error) {
	var origins []types.TokenOrigin
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			elem, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
			}
			b = b[n:]
			origin, err := decodeTokenOrigin(elem)
			if err != nil {
				return nil, err
			}
			origins = append(origins, origin)
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("malformed response: %w", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return origins, nil
}

func decodeTokenOrigin(b []byte) (types.TokenOrigin, error) {
	var origin types.TokenOrigin
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return origin, fmt.Errorf("malformed token origin: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if typ == protowire.BytesType && (num == 1 || num == 2) {
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return origin, fmt.Errorf("malformed token origin: %w", protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case 1:
				origin.ChainID = s
			case 2:
				origin.ContractAddress = s
			}
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return origin, fmt.Errorf("malformed token origin: %w", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return origin, nil
}

// ContractOriginReporter asks an asset contract to self-report its bridge
// origin through a smart query.
type ContractOriginReporter struct {
	querier types.SmartQuerier
}

func NewContractOriginReporter(querier types.SmartQuerier) ContractOriginReporter {
	return ContractOriginReporter{querier: querier}
}

var _ types.OriginReporter = ContractOriginReporter{}

type bridgeOriginQuery struct {
	BridgeOrigin struct{} `json:"bridge_origin"`
}

func (r ContractOriginReporter) TokenOrigin(ctx context.Context, contractAddress string) (types.TokenOrigin, error) {
	req, err := json.Marshal(bridgeOriginQuery{})
	if err != nil {
		return types.TokenOrigin{}, err
	}
	resp, err := r.querier.QuerySmart(ctx, contractAddress, req)
	if err != nil {
		return types.TokenOrigin{}, err
	}
	var origin types.TokenOrigin
	if err := json.Unmarshal(resp, &origin); err != nil {
		return types.TokenOrigin{}, err
	}
	return origin, nil
}
