package domain

import "testing"

func TestPropertyTypeLabels(t *testing.T) {
	known := []PropertyType{
		PropertyResidentialHouse, PropertyResidentialUnit, PropertyCommercial, PropertyIndustrial, PropertyOther,
	}
	for _, p := range known {
		if p.Label() == "" || !p.Valid() {
			t.Fatalf("expected label for %q", p)
		}
	}
	if PropertyResidentialUnit.Label() != "Residential Unit/Apartment" {
		t.Fatalf("unexpected label %q", PropertyResidentialUnit.Label())
	}
	if !PropertyType("").Valid() {
		t.Fatal("expected empty property type to be valid")
	}
	if PropertyType("castle").Valid() {
		t.Fatal("expected unknown property type to be invalid")
	}
}

func TestUrgencyLabels(t *testing.T) {
	known := []Urgency{UrgencyASAP, UrgencyThisWeek, UrgencyNextWeek, UrgencyThisMonth, UrgencyFlexible}
	for _, u := range known {
		if u.Label() == "" || !u.Valid() {
			t.Fatalf("expected label for %q", u)
		}
	}
	if UrgencyASAP.Label() != "ASAP / Emergency (premium pricing may apply)" {
		t.Fatalf("unexpected label %q", UrgencyASAP.Label())
	}
	if Urgency("yesterday").Valid() {
		t.Fatal("expected unknown urgency to be invalid")
	}
}

func TestUnitValid(t *testing.T) {
	for _, u := range []Unit{UnitHour, UnitM2, UnitItem} {
		if !u.Valid() {
			t.Fatalf("expected %q to be valid", u)
		}
	}
	for _, u := range []Unit{"", "hours", "HR"} {
		if u.Valid() {
			t.Fatalf("expected %q to be invalid", u)
		}
	}
}
