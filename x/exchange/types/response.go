package types

import (
	"encoding/json"

	"cosmossdk.io/math"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// Settlement instructions are modeled as wasmvm CosmosMsg values attached to
// a Response. The host executes them, in order, after the handler returns;
// the handler's own state writes are only finalized if every attached
// instruction succeeds.

// NewBankSendMsg builds a native-asset transfer instruction.
func NewBankSendMsg(toAddress, denom string, amount math.Int) wasmvmtypes.CosmosMsg {
	send := &wasmvmtypes.SendMsg{ToAddress: toAddress}
	send.Amount = append(send.Amount, wasmvmtypes.Coin{Denom: denom, Amount: amount.String()})
	return wasmvmtypes.CosmosMsg{Bank: &wasmvmtypes.BankMsg{Send: send}}
}

type transferCall struct {
	Transfer transferCallBody `json:"transfer"`
}

type transferCallBody struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// NewTransferCallMsg builds a transfer-call instruction against the paid-in
// asset's contract, moving amount from this contract to recipient.
func NewTransferCallMsg(contractAddress, recipient string, amount math.Int) (wasmvmtypes.CosmosMsg, error) {
	body, err := json.Marshal(transferCall{Transfer: transferCallBody{
		Recipient: recipient,
		Amount:    amount.String(),
	}})
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	return wasmvmtypes.CosmosMsg{Wasm: &wasmvmtypes.WasmMsg{Execute: &wasmvmtypes.ExecuteMsg{
		ContractAddr: contractAddress,
		Msg:          body,
	}}}, nil
}

// AddMessage appends an instruction to the response, to be executed by the
// host after this call returns.
func AddMessage(resp *wasmvmtypes.Response, msg wasmvmtypes.CosmosMsg) {
	resp.Messages = append(resp.Messages, wasmvmtypes.SubMsg{Msg: msg, ReplyOn: wasmvmtypes.ReplyNever})
}

// AddAttribute appends a response attribute.
func AddAttribute(resp *wasmvmtypes.Response, key, value string) {
	resp.Attributes = append(resp.Attributes, wasmvmtypes.EventAttribute{Key: key, Value: value})
}
