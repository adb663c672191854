package api

import (
	"context"

	"github.com/vectasec/tara-backend/usecases"
	"github.com/vectasec/tara-backend/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		panic("no credentials in context")
	}
	return uc.NewUsecasesWithCreds(creds)
}
