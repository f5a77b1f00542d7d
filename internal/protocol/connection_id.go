package protocol

import "github.com/google/uuid"

// A ConnectionID identifies a connection in logs and traces.
// It is never sent on the wire: the server identifies connections by the remote address.
type ConnectionID uuid.UUID

// GenerateConnectionID generates a random connection ID.
func GenerateConnectionID() ConnectionID {
	return ConnectionID(uuid.New())
}

func (c ConnectionID) String() string {
	return uuid.UUID(c).String()
}
