package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	MetadataUserID   = "x-user-id"
	MetadataUserName = "x-user-name"
	MetadataUserRole = "x-user-role"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

type UserContext struct {
	UserID   string
	UserName string
	Role     Role
}

// CanManageOpname reports whether the user may run stock opname sessions.
func (u UserContext) CanManageOpname() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// DisplayName prefers the human name and falls back to the id.
func (u UserContext) DisplayName() string {
	if u.UserName != "" {
		return u.UserName
	}
	return u.UserID
}

type userKey struct{}

func WithUser(ctx context.Context, u UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// GetUser returns the user placed in ctx by the interceptor, falling back to the
// incoming metadata.
func GetUser(ctx context.Context) UserContext {
	if u, ok := ctx.Value(userKey{}).(UserContext); ok {
		return u
	}
	return FromMetadata(ctx)
}

func FromMetadata(ctx context.Context) UserContext {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return UserContext{}
	}
	return UserContext{
		UserID:   first(md, MetadataUserID),
		UserName: first(md, MetadataUserName),
		Role:     Role(strings.ToUpper(first(md, MetadataUserRole))),
	}
}

func first(md metadata.MD, key string) string {
	if val := md.Get(key); len(val) > 0 {
		return strings.TrimSpace(val[0])
	}
	return ""
}
