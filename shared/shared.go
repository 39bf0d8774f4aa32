package shared

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"hotelinv/shared/cache"
	"hotelinv/shared/constant"
	"hotelinv/shared/dto"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	DayLayout   = time.DateOnly
	MonthLayout = "2006-01"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields collects the non-zero db-tagged fields of data into an update
// map and stamps the modification metadata.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...any) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range parts {
		b.WriteByte(':')
		fmt.Fprint(&b, p)
	}

	return b.String()
}

// InvalidateCaches clears every key under the given prefixes.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// ParseDay reads a YYYY-MM-DD query value. An empty value means today in the app timezone.
func ParseDay(value string) (time.Time, error) {
	if value == "" {
		return timezone.Today(), nil
	}

	day, err := time.Parse(DayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return day, nil
}

// ParseMonth reads a YYYY-MM query value. An empty value means the current month.
func ParseMonth(value string) (int, time.Month, error) {
	if value == "" {
		now := timezone.Now()
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}

	return t.Year(), t.Month(), nil
}
