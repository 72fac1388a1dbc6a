// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email column carries a unique index; the database is the final
// arbiter of email uniqueness.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	Role         int
	Status       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Name:         aggregate.Name(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back into a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id, dto.Email, dto.Name, dto.PasswordHash,
		user.Role(dto.Role), user.AccountStatus(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
