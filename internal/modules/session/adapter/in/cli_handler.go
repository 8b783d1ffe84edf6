package in

import (
	"context"

	"fitcoach/internal/modules/session/dto"
	sessionin "fitcoach/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Whoami(ctx context.Context) dto.SessionOutput {
	return h.usecase.Resolve(ctx)
}

func (h CLIHandler) Signout(ctx context.Context) error {
	return h.usecase.Signout(ctx)
}
