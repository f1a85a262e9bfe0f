package whatsapp

// OutboundMessage is the payload posted to a store's messaging webhook.
type OutboundMessage struct {
	ClientNumber string `json:"clientNumber"`
	Message      string `json:"message"`
	StoreID      string `json:"storeId"`
}

// InboundMessage is the payload received from the messaging bridge.
// StoreToken identifies and authenticates the originating store.
type InboundMessage struct {
	ClientNumber string `json:"clientNumber"`
	Message      string `json:"message"`
	StoreToken   string `json:"storeToken"`
}
