// Package userrepo provides data transfer objects and mapping functions for user persistence.
// Implements the repository pattern for the user domain aggregate.
package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Role and status are stored as their wire strings; the driver's last
// reported position is flattened into nullable columns since most rows
// never carry one.
type UserDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Email              string `gorm:"uniqueIndex"`
	PasswordHash       string
	Role               string `gorm:"index"`
	Status             string
	Vehicle            string
	License            string
	PositionLatitude   *float64
	PositionLongitude  *float64
	PositionRecordedAt *time.Time
	ProfileImageURL    string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		PasswordHash:    aggregate.PasswordHash(),
		Role:            aggregate.Role().String(),
		Status:          aggregate.Status().String(),
		Vehicle:         aggregate.Vehicle(),
		License:         aggregate.License(),
		ProfileImageURL: aggregate.ProfileImageURL(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if position := aggregate.Position(); position != nil {
		latitude := position.Latitude
		longitude := position.Longitude
		recordedAt := position.RecordedAt
		dto.PositionLatitude = &latitude
		dto.PositionLongitude = &longitude
		dto.PositionRecordedAt = &recordedAt
	}

	return dto
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := user.AccountStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var position *user.Position
	if dto.PositionLatitude != nil && dto.PositionLongitude != nil && dto.PositionRecordedAt != nil {
		position = &user.Position{
			Latitude:   *dto.PositionLatitude,
			Longitude:  *dto.PositionLongitude,
			RecordedAt: *dto.PositionRecordedAt,
		}
	}

	return user.RestoreUser(
		id, dto.Name, dto.Email, dto.PasswordHash,
		role, status,
		dto.Vehicle, dto.License,
		position, dto.ProfileImageURL,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
