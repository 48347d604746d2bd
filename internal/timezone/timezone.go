package timezone

import (
	"regexp"
	"time"
	_ "time/tzdata"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const DefaultTimezone = "America/Sao_Paulo"

const civilDateLayout = "2006-01-02"

var civilDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsCivilDate valida o formato sem depender de fuso.
func IsCivilDate(s string) bool {
	if !civilDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(civilDateLayout, s)
	return err == nil
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ===============================
// Normalizer
// ===============================

// Normalizer é o único ponto do sistema que converte datas civis
// (YYYY-MM-DD) em instantes e vice-versa, sempre no fuso do salão.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(tz string) *Normalizer {
	return &Normalizer{loc: Location(tz)}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

func (n *Normalizer) Now() time.Time {
	return time.Now().In(n.loc)
}

// ParseCivilDate exige o formato estrito YYYY-MM-DD e ancora o resultado
// no início do dia civil.
func (n *Normalizer) ParseCivilDate(s string) (time.Time, error) {
	if !civilDatePattern.MatchString(s) {
		return time.Time{}, httperr.ErrInvalidFormat("invalid_date")
	}

	t, err := time.ParseInLocation(civilDateLayout, s, n.loc)
	if err != nil {
		return time.Time{}, httperr.ErrInvalidFormat("invalid_date")
	}
	return t, nil
}

func (n *Normalizer) StartOfDay(t time.Time) time.Time {
	local := t.In(n.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.loc)
}

// EndOfDay é o último instante representável do dia civil.
func (n *Normalizer) EndOfDay(t time.Time) time.Time {
	return n.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func (n *Normalizer) FormatCivilDate(t time.Time) string {
	return t.In(n.loc).Format(civilDateLayout)
}

// MonthRange retorna o primeiro e o último instante do mês civil.
func (n *Normalizer) MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, httperr.ErrInvalidFormat("invalid_month")
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, httperr.ErrInvalidFormat("invalid_year")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, n.loc)
	end := n.EndOfDay(start.AddDate(0, 1, -1))
	return start, end, nil
}
