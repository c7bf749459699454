package commands

import (
	"context"
	"time"
)

// ReportPositionCommandHandler handles driver position reports.
type ReportPositionCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewReportPositionCommandHandler creates a handler for position reports.
func NewReportPositionCommandHandler(uowFactory UserUoWFactory) ReportPositionCommandHandler {
	return ReportPositionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the position report.
func (h ReportPositionCommandHandler) Handle(ctx context.Context, cmd ReportPositionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = account.ReportPosition(cmd.Latitude(), cmd.Longitude(), time.Now().UTC()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
