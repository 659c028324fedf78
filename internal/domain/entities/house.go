package entities

// House is a bhava counted from the ascendant, 1 through 12.
type House int

var houseNumerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// String returns the roman numeral used on rendered charts.
func (h House) String() string {
	if h < 1 || h > 12 {
		return ""
	}
	return houseNumerals[h-1]
}

// Valid reports whether h is within 1..12.
func (h House) Valid() bool { return h >= 1 && h <= 12 }
