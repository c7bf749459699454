package http

import (
	"io"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register - creates a new account.
// Only customer and driver accounts can be self-registered; admin
// accounts are provisioned out of band.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}
	if role == user.RoleAdmin {
		return badRequest(ctx, "admin accounts cannot be self-registered")
	}

	userID := kernel.NewUUID()
	command, err := commands.NewRegisterUserCommand(
		userID,
		req.Name,
		req.Email,
		req.Password,
		role,
		req.Vehicle,
		req.License,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and
// issues an access token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.GenerateToken(account.ID, account.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: userPayload{
			ID:    account.ID.String(),
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role.String(),
		},
	})
}

// SetProfileImage handles PUT /api/v1/users/:userId/profile-image -
// uploads the raw request body as the account's profile image.
func (s *Server) SetProfileImage(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return writeError(ctx, err)
	}

	body := ctx.Request().Body
	defer body.Close()
	data, err := io.ReadAll(io.LimitReader(body, commands.ProfileImageMaxSize+1))
	if err != nil {
		return badRequest(ctx, "failed to read request body")
	}

	command, err := commands.NewSetProfileImageCommand(
		actor,
		userID,
		data,
		ctx.Request().Header.Get(echo.HeaderContentType),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	url, err := s.setProfileImageHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileImageResponse{URL: url})
}

// ReportPosition handles POST /api/v1/users/me/position - a driver
// records their current coordinates.
func (s *Server) ReportPosition(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	var req positionRequest
	if err := bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewReportPositionCommand(actor, req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reportPositionHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveProfileImage handles DELETE /api/v1/users/:userId/profile-image.
func (s *Server) RemoveProfileImage(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewRemoveProfileImageCommand(actor, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeProfileImageHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
