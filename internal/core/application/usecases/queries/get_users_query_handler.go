package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/pkg/errs"
)

// GetUsersQueryHandler reads the account listing from the database.
// Listing accounts is an admin-only operation.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listings.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

type userRow struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      int
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Handle executes the account listing query.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) (GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	if !query.Caller().Role.IsAdmin() {
		return GetUsersQueryResponse{}, errs.NewAccessForbiddenError("list users")
	}

	response := GetUsersQueryResponse{
		Users:    make([]UserResponse, 0, query.PageSize()),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filtered := applyUserFilter(tx.Table("users"), query)

		if err := filtered.Count(&response.Total).Error; err != nil {
			return err
		}

		rows := make([]userRow, 0, query.PageSize())
		err := applyUserFilter(tx.Table("users"), query).
			Select("id, email, name, role, status, created_at, updated_at").
			Order("created_at DESC").
			Limit(query.PageSize()).
			Offset((query.Page() - 1) * query.PageSize()).
			Find(&rows).Error
		if err != nil {
			return err
		}

		for _, row := range rows {
			response.Users = append(response.Users, UserResponse{
				ID:        row.ID.String(),
				Email:     row.Email,
				Name:      row.Name,
				Role:      user.Role(row.Role).String(),
				Status:    user.AccountStatus(row.Status).String(),
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return GetUsersQueryResponse{}, err
	}

	response.TotalPages = int((response.Total + int64(query.PageSize()) - 1) / int64(query.PageSize()))
	return response, nil
}

func applyUserFilter(tx *gorm.DB, query GetUsersQuery) *gorm.DB {
	if query.Role() != user.RoleUnknown {
		tx = tx.Where("role = ?", int(query.Role()))
	}
	if query.Status() != user.AccountUnknown {
		tx = tx.Where("status = ?", int(query.Status()))
	}
	if query.Search() != "" {
		pattern := "%" + query.Search() + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	return tx
}
