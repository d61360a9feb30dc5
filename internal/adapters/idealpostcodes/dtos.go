package idealpostcodes

import "github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"

// envelope is the response body of every Ideal Postcodes endpoint.
type envelope struct {
	Result  *addressResult `json:"result"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
}

type addressResult struct {
	Total int          `json:"total"`
	Limit int          `json:"limit"`
	Page  int          `json:"page"`
	Hits  []addressHit `json:"hits"`
}

type addressHit struct {
	Line1                   string   `json:"line_1"`
	Line2                   string   `json:"line_2"`
	Line3                   string   `json:"line_3"`
	OrganisationName        string   `json:"organisation_name"`
	DepartmentName          string   `json:"department_name"`
	SubBuildingName         string   `json:"sub_building_name"`
	BuildingName            string   `json:"building_name"`
	BuildingNumber          string   `json:"building_number"`
	Premise                 string   `json:"premise"`
	Thoroughfare            string   `json:"thoroughfare"`
	DependantThoroughfare   string   `json:"dependant_thoroughfare"`
	DependantLocality       string   `json:"dependant_locality"`
	DoubleDependantLocality string   `json:"double_dependant_locality"`
	PostTown                string   `json:"post_town"`
	County                  string   `json:"county"`
	District                string   `json:"district"`
	Ward                    string   `json:"ward"`
	Country                 string   `json:"country"`
	Postcode                string   `json:"postcode"`
	PostcodeOutward         string   `json:"postcode_outward"`
	PostcodeInward          string   `json:"postcode_inward"`
	PostcodeType            string   `json:"postcode_type"`
	POBox                   string   `json:"po_box"`
	DeliveryPointSuffix     string   `json:"delivery_point_suffix"`
	UDPRN                   int      `json:"udprn"`
	Eastings                *int     `json:"eastings"`
	Northings               *int     `json:"northings"`
	Latitude                *float64 `json:"latitude"`
	Longitude               *float64 `json:"longitude"`
}

func (r *addressResult) toDomain() *domain.LookupResult {
	if r == nil {
		return &domain.LookupResult{}
	}

	hits := make([]domain.Hit, 0, len(r.Hits))
	for _, h := range r.Hits {
		hits = append(hits, h.toDomain())
	}

	return &domain.LookupResult{
		Total: r.Total,
		Limit: r.Limit,
		Page:  r.Page,
		Hits:  hits,
	}
}

func (h addressHit) toDomain() domain.Hit {
	return domain.Hit{
		Line1:                   h.Line1,
		Line2:                   h.Line2,
		Line3:                   h.Line3,
		OrganisationName:        h.OrganisationName,
		DepartmentName:          h.DepartmentName,
		SubBuildingName:         h.SubBuildingName,
		BuildingName:            h.BuildingName,
		BuildingNumber:          h.BuildingNumber,
		Premise:                 h.Premise,
		Thoroughfare:            h.Thoroughfare,
		DependantThoroughfare:   h.DependantThoroughfare,
		DependantLocality:       h.DependantLocality,
		DoubleDependantLocality: h.DoubleDependantLocality,
		PostTown:                h.PostTown,
		County:                  h.County,
		District:                h.District,
		Ward:                    h.Ward,
		Country:                 h.Country,
		Postcode:                h.Postcode,
		PostcodeOutward:         h.PostcodeOutward,
		PostcodeInward:          h.PostcodeInward,
		PostcodeType:            h.PostcodeType,
		POBox:                   h.POBox,
		UDPRN:                   h.UDPRN,
		Eastings:                h.Eastings,
		Northings:               h.Northings,
		Latitude:                h.Latitude,
		Longitude:               h.Longitude,
		DeliveryPointSuffix:     h.DeliveryPointSuffix,
	}
}
