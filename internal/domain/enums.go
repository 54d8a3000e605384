package domain

// ChargingBasis is the unit by which a line item's quantity is measured.
type ChargingBasis string

const (
	BasisPerHour  ChargingBasis = "Per Hour"
	BasisPerDay   ChargingBasis = "Per Day"
	BasisPerWeek  ChargingBasis = "Per Week"
	BasisPerMonth ChargingBasis = "Per Month"
	BasisPerUnit  ChargingBasis = "Per Unit"
	BasisLumpSum  ChargingBasis = "Lump Sum"
)

// ChargingBases lists all bases in form display order.
var ChargingBases = []ChargingBasis{
	BasisPerHour,
	BasisPerDay,
	BasisPerWeek,
	BasisPerMonth,
	BasisPerUnit,
	BasisLumpSum,
}

// basisSuffixes maps a basis to the unit label shown next to the quantity.
// Lump sum has no quantity, so no suffix.
var basisSuffixes = map[ChargingBasis]string{
	BasisPerHour:  "Hours",
	BasisPerDay:   "Days",
	BasisPerWeek:  "Weeks",
	BasisPerMonth: "Months",
	BasisPerUnit:  "Units",
	BasisLumpSum:  "",
}

// QtySuffix returns the quantity unit label for the basis.
func (b ChargingBasis) QtySuffix() string {
	return basisSuffixes[b]
}

// Valid reports whether b is a known charging basis.
func (b ChargingBasis) Valid() bool {
	_, ok := basisSuffixes[b]
	return ok
}

// LogoType represents the allowed logo image types.
type LogoType string

const (
	LogoTypeJPG LogoType = "jpg"
	LogoTypePNG LogoType = "png"
)

// AllowedLogoContentTypes maps detected MIME content types to LogoType.
var AllowedLogoContentTypes = map[string]LogoType{
	"image/jpeg": LogoTypeJPG,
	"image/png":  LogoTypePNG,
}
