package types

// Response attribute keys emitted by the wrappedtoken handlers.
const (
	AttributeKeyMethod      = "method"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyBurnAmount  = "burn_amount"
	AttributeKeyDestination = "destination_address"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyOriginChain = "origin_chain"
	AttributeKeyOriginAddr  = "origin_contract"
)
