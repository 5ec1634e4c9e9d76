package helper

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// =======================
// POINTER -> NULL (POSTGRES)
// =======================

func StringToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func BoolToNull(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func Int32ToNull(i *int32) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *i, Valid: true}
}

// DecimalToNull feeds NUMERIC columns through decimal.NullDecimal to
// keep precision across the wire.
func DecimalToNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// =======================
// POINTER VALUE HELPERS
// =======================

func BoolPtrValue(b *bool, defaultValue bool) bool {
	if b == nil {
		return defaultValue
	}
	return *b
}

func Int32PtrValue(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}
