package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind agrupa os códigos de negócio em categorias distinguíveis.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindInvalidFormat        Kind = "invalid_format"
	KindInvalidTimeRange     Kind = "invalid_time_range"
	KindInvalidState         Kind = "invalid_state"
	KindMissingCollaborator  Kind = "missing_collaborator"
	KindInactiveCollaborator Kind = "inactive_collaborator"
	KindEmptyCollection      Kind = "empty_collection"
	KindBatchPartialMismatch Kind = "batch_partial_mismatch"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

func ErrNotFound(code string) error {
	return ErrBusiness(KindNotFound, code)
}

func ErrInvalidFormat(code string) error {
	return ErrBusiness(KindInvalidFormat, code)
}

func ErrInvalidState(code string) error {
	return ErrBusiness(KindInvalidState, code)
}

func ErrEmptyCollection(code string) error {
	return ErrBusiness(KindEmptyCollection, code)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf retorna "" quando err não é um BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsUniqueViolation detecta violação de unique constraint no postgres (23505),
// traduzida ou não pelo gorm.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// MapNotFound converte gorm.ErrRecordNotFound no erro de negócio com o código
// informado; qualquer outro erro passa adiante.
func MapNotFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(code)
	}
	return err
}
