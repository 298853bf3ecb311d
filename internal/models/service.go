package models

import "strings"

type ServiceKind string

const (
	ServiceKindOnsite   ServiceKind = "onsite"
	ServiceKindTowing   ServiceKind = "towing"
	ServiceKindRecovery ServiceKind = "recovery"
	ServiceKindCustom   ServiceKind = "custom"
)

func (k ServiceKind) IsValid() bool {
	switch k {
	case ServiceKindOnsite, ServiceKindTowing, ServiceKindRecovery, ServiceKindCustom:
		return true
	}
	return false
}

// ChargesTravel is false for kinds whose price already includes getting there.
func (k ServiceKind) ChargesTravel() bool {
	return k != ServiceKindRecovery && k != ServiceKindCustom
}

// ServiceDefinition is one priced offering from the services collection.
type ServiceDefinition struct {
	Name               string      `json:"name" firestore:"name"`
	Kind               ServiceKind `json:"kind" firestore:"kind"`
	Label              string      `json:"label" firestore:"label"`
	Description        string      `json:"description,omitempty" firestore:"description"`
	BasePrice          float64     `json:"base_price,omitempty" firestore:"basePrice"`
	HookupFee          float64     `json:"hookup_fee,omitempty" firestore:"hookupFee"`
	PerMileRate        float64     `json:"per_mile_rate,omitempty" firestore:"perMileRate"`
	MinimumMiles       float64     `json:"minimum_miles,omitempty" firestore:"minimumMiles"`
	HourlyRate         float64     `json:"hourly_rate,omitempty" firestore:"hourlyRate"`
	MinimumHours       float64     `json:"minimum_hours,omitempty" firestore:"minimumHours"`
	AfterHoursEligible bool        `json:"after_hours_eligible" firestore:"afterHoursEligible"`
	SortOrder          int         `json:"sort_order" firestore:"sortOrder"`
}

// NormalizeServiceName is the key used for case-insensitive lookups.
func NormalizeServiceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StartingPrice is the price shown before any mileage is known.
func (s *ServiceDefinition) StartingPrice() float64 {
	switch s.Kind {
	case ServiceKindTowing:
		return s.HookupFee
	case ServiceKindOnsite, ServiceKindRecovery:
		return s.BasePrice
	}
	return 0
}
