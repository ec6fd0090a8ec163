package api

import (
	"context"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject returns the subject of the verified admin token, if any
func ctxGetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminSubjectKey).(string)
	return subject, ok && subject != ""
}
