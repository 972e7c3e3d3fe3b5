package contracts

import "context"

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (map[string]interface{}, error)
}
