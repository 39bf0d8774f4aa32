package dto_test

import (
	"net/http/httptest"
	"testing"

	"hotelinv/shared/constant"
	"hotelinv/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:         "defaults",
			query:        "",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "no defaults leaves zero values",
			query: "",
			want:  dto.QueryParams{},
		},
		{
			name:         "explicit values and lower case direction",
			query:        "page=3&limit=25&sort_by=email&sort_dir=desc",
			withDefaults: true,
			want:         dto.QueryParams{Page: 3, Limit: 25, SortBy: "email", SortDir: dto.SortDirDesc},
		},
		{
			name:         "limit is clamped",
			query:        "limit=5000",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: dto.MaxLimit},
		},
		{
			name:         "garbage numbers and direction are ignored",
			query:        "page=-2&limit=ten&sort_dir=sideways",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/users?"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "sheet", Value: "bookings", Operator: dto.FilterOperatorEq, Table: "sheet_bookings"},
			wantWhere: "sheet_bookings.sheet = :sheet",
			wantArgs:  map[string]any{"sheet": "bookings"},
		},
		{
			name:      "like with custom bind name",
			filter:    dto.Filter{ArgName: "search_email", Field: "email", Value: "Lan", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(email) LIKE LOWER(:search_email)",
			wantArgs:  map[string]any{"search_email": "%Lan%"},
		},
		{
			name:      "not null",
			filter:    dto.Filter{Field: "id", Operator: dto.FilterIsNotNull, Table: "message_templates"},
			wantWhere: "message_templates.id IS NOT NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "role", Value: constant.RoleStaff, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "q_email", Field: "email", Value: "an", Operator: dto.FilterOperatorLike},
					dto.Filter{ArgName: "q_name", Field: "full_name", Value: "an", Operator: dto.FilterOperatorLike},
				},
			},
			dto.Filter{Field: "ignored", Operator: "between"},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(role = :role AND (LOWER(email) LIKE LOWER(:q_email) OR LOWER(full_name) LIKE LOWER(:q_name)))", where)
	assert.Equal(t, map[string]any{"role": constant.RoleStaff, "q_email": "%an%", "q_name": "%an%"}, args)
}

func TestFilterGroupDefaults(t *testing.T) {
	empty := dto.FilterGroup{}
	where, args := empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)

	implicitAnd := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "b", Value: 2, Operator: dto.FilterOperatorEq},
	}}
	where, _ = implicitAnd.GetWhereClause()
	assert.Equal(t, "(a = :a AND b = :b)", where)
}
