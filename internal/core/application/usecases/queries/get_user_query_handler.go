package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/pkg/errs"
)

// GetUserQueryHandler reads a single account from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for account detail reads.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the account detail query.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	caller := query.Caller()
	if !caller.Role.IsAdmin() && !caller.ID.IsEqual(query.UserID()) {
		return UserResponse{}, errs.NewAccessForbiddenError("view user")
	}

	var row userRow
	err := h.db.WithContext(ctx).Table("users").
		Where("id = ?", query.UserID().Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		ID:        row.ID.String(),
		Email:     row.Email,
		Name:      row.Name,
		Role:      user.Role(row.Role).String(),
		Status:    user.AccountStatus(row.Status).String(),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
