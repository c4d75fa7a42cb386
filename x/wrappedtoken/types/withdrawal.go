package types

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// BridgeWithdrawal is the payload of the single cross-chain instruction
// emitted per withdrawal. It is encoded on the protobuf wire directly, so no
// generated descriptor is needed for the receiving service.
type BridgeWithdrawal struct {
	// Creator is the module account submitting the request.
	Creator string
	// UserAddress is the account whose wrapped units were burned.
	UserAddress string
	// Amount of origin-chain units to release, as a decimal string.
	Amount string
	// DestinationAddress receives the released units on the origin chain.
	DestinationAddress string
}

// Encode serializes the withdrawal on the protobuf wire, fields 1 through 4
// as strings.
func (w BridgeWithdrawal) Encode() []byte {
	var b []byte
	for i, field := range []string{w.Creator, w.UserAddress, w.Amount, w.DestinationAddress} {
		if field == "" {
			continue
		}
		b = protowire.AppendTag(b, protowire.Number(i+1), protowire.BytesType)
		b = protowire.AppendString(b, field)
	}
	return b
}

// DecodeBridgeWithdrawal parses a wire-encoded withdrawal.
func DecodeBridgeWithdrawal(b []byte) (BridgeWithdrawal, error) {
	var w BridgeWithdrawal
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return w, fmt.Errorf("malformed withdrawal: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return w, fmt.Errorf("malformed withdrawal: %w", protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		s, n := protowire.ConsumeString(b)
		if n < 0 {
			return w, fmt.Errorf("malformed withdrawal: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case 1:
			w.Creator = s
		case 2:
			w.UserAddress = s
		case 3:
			w.Amount = s
		case 4:
			w.DestinationAddress = s
		}
	}
	return w, nil
}
