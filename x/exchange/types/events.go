package types

// Response attribute keys emitted by the exchange handlers.
const (
	AttributeKeyMethod      = "method"
	AttributeKeyAdmin       = "admin"
	AttributeKeyBuyer       = "buyer"
	AttributeKeyQuoteAmount = "quote_amount"
	AttributeKeyTokens      = "tokens_purchased"
	AttributeKeyPrice       = "price"
	AttributeKeyAmount      = "amount"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyMessage     = "message"
	AttributeKeyOriginChain = "accepted_origin_chain"
	AttributeKeyOriginAddr  = "accepted_origin_contract"
	AttributeKeyNativeDenom = "native_denom"
)
