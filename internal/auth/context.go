package auth

import "context"

type ctxKey string

const actorKey ctxKey = "actor"

// Actor is the verified identity a request acts as. It is passed explicitly
// into every service call; there is no ambient current-user state.
type Actor struct {
	UserID  string
	Role    string
	TokenID string // set when authenticated with an API token
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func ActorFrom(ctx context.Context) Actor {
	if v, ok := ctx.Value(actorKey).(Actor); ok {
		return v
	}
	return Actor{}
}
