package domain

// LookupQuery is a free-text address search sent to a lookup provider.
type LookupQuery struct {
	Query string
	Limit int
	Tags  string
}

// LookupResult holds the candidate hits for a query. Only the first hit is
// ever consulted by a verifier.
type LookupResult struct {
	Total int
	Limit int
	Page  int
	Hits  []Hit
}

// First returns the first hit, or false when there are none.
func (r *LookupResult) First() (Hit, bool) {
	if r == nil || len(r.Hits) == 0 {
		return Hit{}, false
	}
	return r.Hits[0], true
}

// Hit is a single delivery point candidate. Fields follow the Royal Mail
// Postcode Address File as exposed by the provider.
type Hit struct {
	Line1 string
	Line2 string
	Line3 string

	OrganisationName        string
	DepartmentName          string
	SubBuildingName         string
	BuildingName            string
	BuildingNumber          string
	Premise                 string
	Thoroughfare            string
	DependantThoroughfare   string
	DependantLocality       string
	DoubleDependantLocality string
	PostTown                string
	County                  string
	District                string
	Ward                    string
	Country                 string

	Postcode            string
	PostcodeOutward     string
	PostcodeInward      string
	PostcodeType        string
	POBox               string
	UDPRN               int
	Eastings            *int
	Northings           *int
	Latitude            *float64
	Longitude           *float64
	DeliveryPointSuffix string
}

// HasCoordinates reports whether both latitude and longitude are present.
func (h Hit) HasCoordinates() bool {
	return h.Latitude != nil && h.Longitude != nil
}
