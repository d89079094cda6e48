package service

import (
	"context"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type ctxKey string

const (
	ctxUserIDKey ctxKey = "userID"
	ctxRoleKey   ctxKey = "role"
)

func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, id)
}

func UserIDFromContext(ctx context.Context) (uint, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(uint)
	return v, ok
}

func WithRole(ctx context.Context, r models.Role) context.Context {
	return context.WithValue(ctx, ctxRoleKey, r)
}

func RoleFromContext(ctx context.Context) (models.Role, bool) {
	v, ok := ctx.Value(ctxRoleKey).(models.Role)
	return v, ok
}

func requireAuth(ctx context.Context) (uint, models.Role, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, "", ErrUnauthorized
	}
	role, _ := RoleFromContext(ctx) // если нет — считаем customer по умолчанию
	if role == "" {
		role = models.RoleCustomer
	}
	return uid, role, nil
}
