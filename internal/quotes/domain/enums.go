package domain

// PropertyType describes the site the job is on. The zero value means unspecified.
type PropertyType string

const (
	PropertyResidentialHouse PropertyType = "residential-house"
	PropertyResidentialUnit  PropertyType = "residential-unit"
	PropertyCommercial       PropertyType = "commercial"
	PropertyIndustrial       PropertyType = "industrial"
	PropertyOther            PropertyType = "other"
)

// Label returns the human-readable description used in generation prompts.
func (p PropertyType) Label() string {
	switch p {
	case PropertyResidentialHouse:
		return "Residential House"
	case PropertyResidentialUnit:
		return "Residential Unit/Apartment"
	case PropertyCommercial:
		return "Commercial Property"
	case PropertyIndustrial:
		return "Industrial Property"
	case PropertyOther:
		return "Other Property Type"
	}
	return ""
}

// Valid reports whether p is empty or a known property type.
func (p PropertyType) Valid() bool {
	return p == "" || p.Label() != ""
}

// Urgency is how soon the customer wants the work done. The zero value means unspecified.
type Urgency string

const (
	UrgencyASAP      Urgency = "asap"
	UrgencyThisWeek  Urgency = "this-week"
	UrgencyNextWeek  Urgency = "next-week"
	UrgencyThisMonth Urgency = "this-month"
	UrgencyFlexible  Urgency = "flexible"
)

// Label returns the human-readable description used in generation prompts.
func (u Urgency) Label() string {
	switch u {
	case UrgencyASAP:
		return "ASAP / Emergency (premium pricing may apply)"
	case UrgencyThisWeek:
		return "This Week"
	case UrgencyNextWeek:
		return "Next Week"
	case UrgencyThisMonth:
		return "This Month"
	case UrgencyFlexible:
		return "Flexible / No Rush"
	}
	return ""
}

// Valid reports whether u is empty or a known urgency.
func (u Urgency) Valid() bool {
	return u == "" || u.Label() != ""
}
