package scenario

// Overrides are command-line values that win over file and default values.
// Nil fields are left alone.
type Overrides struct {
	ElectricityPrice  *float64
	SteelOutput       *float64
	Efficiency        *float64
	ElectrolyzerCapex *float64
	LangFactor        *float64
	ElecSpec          *float64
	DiscountRate      *float64
	Lifetime          *int
}

// Apply returns s with the overrides set and re-validates it.
func (o Overrides) Apply(s Scenario) (Scenario, error) {
	set(&s.ElectricityPrice, o.ElectricityPrice)
	set(&s.SteelOutput, o.SteelOutput)
	set(&s.Electrolyzer.Efficiency, o.Efficiency)
	set(&s.Electrolyzer.CapexMUSDPerMW, o.ElectrolyzerCapex)
	set(&s.Electrolyzer.LangFactor, o.LangFactor)
	set(&s.Electrolyzer.SpecificEnergy, o.ElecSpec)
	set(&s.DiscountRate, o.DiscountRate)
	set(&s.Lifetime, o.Lifetime)
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool { return o == Overrides{} }
