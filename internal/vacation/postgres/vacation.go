package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	vacationDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/vacation"
	"github.com/frahmantamala/hr-management/internal/vacation"
)

// VacationRepository implements the vacation.Repository interface using GORM
type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) vacation.Repository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) GetEmployee(userID int64) (*vacation.Employee, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		return nil, internal.NewInternalError("failed to load user", err)
	}
	return &vacation.Employee{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		StartDate: u.StartDate,
	}, nil
}

func (r *VacationRepository) GetRequestsByUser(userID int64) ([]*vacation.Request, error) {
	var rows []*vacationDatamodel.Request
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to load vacation requests", err)
	}

	result := make([]*vacation.Request, len(rows))
	for i, row := range rows {
		result[i] = vacation.FromDataModel(row)
	}
	return result, nil
}

func (r *VacationRepository) Create(req *vacation.Request) error {
	dm := vacation.ToDataModel(req)
	if err := r.db.Create(dm).Error; err != nil {
		return internal.NewInternalError("failed to create vacation request", err)
	}
	req.ID = dm.ID
	req.CreatedAt = dm.CreatedAt
	req.UpdatedAt = dm.UpdatedAt
	return nil
}

// requestRow is the flat scan target for the admin listing join.
type requestRow struct {
	vacationDatamodel.Request
	UserName    string `gorm:"column:user_name"`
	UserSurname string `gorm:"column:user_surname"`
	UserEmail   string `gorm:"column:user_email"`
	UserRole    string `gorm:"column:user_role"`
}

// GetAllWithRequester returns every request joined with the requester's
// public profile fields, oldest first.
func (r *VacationRepository) GetAllWithRequester() ([]*vacation.RequestWithRequester, error) {
	var rows []requestRow
	err := r.db.Table("vacations").
		Select("vacations.*, users.name AS user_name, users.surname AS user_surname, users.email AS user_email, users.role AS user_role").
		Joins("JOIN users ON users.id = vacations.user_id").
		Order("vacations.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list vacation requests", err)
	}

	result := make([]*vacation.RequestWithRequester, len(rows))
	for i, row := range rows {
		result[i] = &vacation.RequestWithRequester{
			Request: *vacation.FromDataModel(&row.Request),
			User: vacation.RequesterProfile{
				ID:      row.Request.UserID,
				Name:    row.UserName,
				Surname: row.UserSurname,
				Email:   row.UserEmail,
				Role:    row.UserRole,
			},
		}
	}
	return result, nil
}
