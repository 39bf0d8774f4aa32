package dto

import (
	"hotelinv/internal/domains/user/model"
	"hotelinv/shared"
	"hotelinv/shared/constant"
	gDto "hotelinv/shared/dto"
	"hotelinv/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Active = model.Active
	r.Metadata = gDto.NewMetadata(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type ListUsersRequest struct {
	gDto.QueryParams
	Role   string `json:"role"   validate:"omitempty,oneof=manager staff"`
	Active *bool  `json:"active"`
	Search string `json:"search" validate:"omitempty,max=100"`
}

func (r *ListUsersRequest) Filter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if r.Role != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Value:    r.Role,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}
	if r.Active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Value:    *r.Active,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}
	if r.Search != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_name", Field: model.FieldFullName, Value: r.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return filter
}

type UpdateUserRequest struct {
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=manager staff"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=100"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
