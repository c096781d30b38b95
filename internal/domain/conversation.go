package domain

// Turn is a single persisted exchange: the visitor's message and the reply.
type Turn struct {
	PK             string
	SK             string
	ConversationID string
	Message        string
	Reply          string
	CreatedAt      string
	TTL            int64
}

// ConversationMeta stores aggregate conversation state.
type ConversationMeta struct {
	PK             string
	SK             string
	ConversationID string
	LastActivity   string
	Turns          int
	TTL            int64
}
