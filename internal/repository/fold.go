package repository

import (
	"database/sql/driver"

	"golang.org/x/text/cases"
	"modernc.org/sqlite"
)

// foldFunc is the SQL name of the Unicode case-folding scalar. SQLite's own
// LIKE only folds ASCII, so case-insensitive searches fold both sides with it.
const foldFunc = "casefold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, foldScalar)
}

func foldScalar(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return fold(v), nil
	case []byte:
		return fold(string(v)), nil
	default:
		return v, nil
	}
}

// fold applies full Unicode case folding. A Caser keeps state, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
