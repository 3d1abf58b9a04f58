package sampledata

// Country is one row of the small macro-economics sample set used by the
// interactive GDP scatter and its console table.
type Country struct {
	Name        string
	GDPTrillion float64 // annual GDP in trillions USD
	PopulationM float64 // population in millions
}

// GDPPerCapita derives per-capita GDP in USD.
func (c Country) GDPPerCapita() float64 {
	if c.PopulationM == 0 {
		return 0
	}
	return c.GDPTrillion * 1e12 / (c.PopulationM * 1e6)
}

// Countries returns the fixed GDP/population sample set.
func Countries() []Country {
	return []Country{
		{Name: "USA", GDPTrillion: 21.43, PopulationM: 331},
		{Name: "China", GDPTrillion: 14.34, PopulationM: 1439},
		{Name: "Japan", GDPTrillion: 4.94, PopulationM: 126},
		{Name: "Germany", GDPTrillion: 3.85, PopulationM: 83},
		{Name: "India", GDPTrillion: 2.87, PopulationM: 1380},
		{Name: "UK", GDPTrillion: 2.83, PopulationM: 67},
		{Name: "France", GDPTrillion: 2.72, PopulationM: 65},
		{Name: "Brazil", GDPTrillion: 1.87, PopulationM: 213},
	}
}
