package rendering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reborn_api/internal/domain/entities"
)

// Placeholder keys understood by the resolver. Any other key renders as an empty string.
const (
	KeyRebornName         = "reborn_name"
	KeyBirthDate          = "birth_date"
	KeyWeight             = "weight"
	KeyHeight             = "height"
	KeyAgeDays            = "age_days"
	KeyHospital           = "hospital"
	KeyDoctor             = "doctor"
	KeyRegistrationNumber = "registration_number"
	KeyMotherName         = "mother_name"
	KeyCity               = "city"
	KeyState              = "state"
	KeyToday              = "today"
)

const (
	DefaultHospital = "Hospital dos Reborns"
	DefaultDoctor   = "Dr. Reborn"
	DefaultCity     = "São Paulo"
	DefaultState    = "SP"

	registrationPrefix = "REG-"
	// pt-BR short date: dd/mm/yyyy
	dateLayout = "02/01/2006"
)

// ResolveFields maps every known placeholder key to its display string.
//
// birth_date keeps the location the date was stored with; today is rendered in loc.
func ResolveFields(r entities.Reborn, custom entities.CertificateFields, now time.Time, loc *time.Location) map[string]string {
	if loc == nil {
		loc = time.UTC
	}
	return map[string]string{
		KeyRebornName:         r.Name,
		KeyBirthDate:          r.BirthDate.Format(dateLayout),
		KeyWeight:             fmt.Sprintf("%dg", r.Weight),
		KeyHeight:             fmt.Sprintf("%dcm", r.Height),
		KeyAgeDays:            strconv.Itoa(r.AgeInDays(now)),
		KeyHospital:           orDefault(custom.Hospital, DefaultHospital),
		KeyDoctor:             orDefault(custom.Doctor, DefaultDoctor),
		KeyRegistrationNumber: orDefault(custom.RegistrationNumber, DefaultRegistrationNumber(now)),
		KeyMotherName:         orDefault(custom.MotherName, ""),
		KeyCity:               orDefault(custom.City, DefaultCity),
		KeyState:              orDefault(custom.State, DefaultState),
		KeyToday:              now.In(loc).Format(dateLayout),
	}
}

func DefaultRegistrationNumber(now time.Time) string {
	return registrationPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// FieldValue never fails: unknown keys resolve to "".
func FieldValue(fields map[string]string, key string) string {
	return fields[key]
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
