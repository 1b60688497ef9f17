package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota
	KindAuthorization
	KindNotFound
	KindConflict
	KindSchemaDrift
	KindDependency
)

type Error struct {
	Kind        Kind
	Message     string
	FieldErrors map[string]string
	FormErrors  []string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string, fieldErrors map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, FieldErrors: fieldErrors}
}

func ValidationForm(message string, formErrors ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, FormErrors: formErrors}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Dependency(message string, err error) *Error {
	return &Error{Kind: KindDependency, Message: message, Err: err}
}

func SchemaDrift(table string, err error) *Error {
	return &Error{
		Kind:    KindSchemaDrift,
		Message: fmt.Sprintf("table or column missing for %q; run `catalog-admin migrate` to apply pending migrations", table),
		Err:     err,
	}
}

// As unwraps err into an *Error when possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MySQL server error numbers for missing schema objects and duplicate keys.
const (
	mysqlErrNoSuchTable   = 1146
	mysqlErrUnknownColumn = 1054
	mysqlErrDuplicateKey  = 1062
)

// FromStore classifies a raw store error for the given table. Record-not-found
// maps to NotFound, duplicate keys to Conflict, missing tables/columns to
// SchemaDrift with a migration hint, anything else to Dependency.
func FromStore(table, message string, err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrNoSuchTable, mysqlErrUnknownColumn:
			return SchemaDrift(table, err)
		case mysqlErrDuplicateKey:
			return Conflict(message)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict(message)
	}
	return Dependency(message, err)
}
