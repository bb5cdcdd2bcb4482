// core/units/units.go
// Plant-time and unit conversions shared by every model.
//
// Steel plants run about 95% of the year, so one operating year is
// 365*24*0.95 = 8322 hours. Rates are kg/hr of liquid steel; 1000 kg is one
// tonne of liquid steel (tls).
package units

const (
	HoursPerYear   = 365 * 24
	CapacityFactor = 0.95

	// OperatingHoursPerYear is the number of producing hours in a plant year.
	OperatingHoursPerYear = HoursPerYear * CapacityFactor

	KgPerTonne     = 1000.0
	KWPerMW        = 1000.0
	SecondsPerHour = 3600.0
	USDPerMUSD     = 1e6
	KelvinOffset   = 273.15
	ReferenceTempK = 298.15
	DaysPerYear    = 365
)

// TonnesPerYear converts a steel rate in kg/hr to tonnes per operating year.
func TonnesPerYear(kgPerHour float64) float64 {
	return kgPerHour * OperatingHoursPerYear / KgPerTonne
}

// KgPerHour is the inverse of TonnesPerYear.
func KgPerHour(tonnesPerYear float64) float64 {
	return tonnesPerYear * KgPerTonne / OperatingHoursPerYear
}

// TonnesPerDay converts kg/hr to tonnes per calendar day of operation.
func TonnesPerDay(kgPerHour float64) float64 {
	return kgPerHour * 24 / KgPerTonne
}

// PerYear scales an hourly quantity (kg/hr, tCO2/hr) to an operating year.
func PerYear(perHour float64) float64 { return perHour * OperatingHoursPerYear }

// CalendarMWhPerYear converts a continuous load in kW to MWh over a full
// 8760-hour year. Furnace and heater loads are annualized this way.
func CalendarMWhPerYear(kW float64) float64 {
	return kW / KWPerMW * HoursPerYear
}

// KgPerSecond converts an annual mass to the average kg/s over operating time.
func KgPerSecond(kgPerYear float64) float64 {
	return kgPerYear / (OperatingHoursPerYear * SecondsPerHour)
}

// KJPerHourToKW converts an hourly energy flow in kJ/hr to kW.
func KJPerHourToKW(kJPerHour float64) float64 { return kJPerHour / SecondsPerHour }

// MUSD converts dollars to million dollars.
func MUSD(usd float64) float64 { return usd / USDPerMUSD }

// USD converts million dollars to dollars.
func USD(musd float64) float64 { return musd * USDPerMUSD }
