// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"reflect"
	"testing"
)

func completeRegistration() Registration {
	return Registration{
		Timestamp:       "2025-01-15 10:30:00",
		OfficialName:    "Ama Mensah",
		DateOfBirth:     "2003-06-21",
		Age:             21,
		PhoneNumbers:    "0241234567, 0207654321",
		Email:           "ama@example.com",
		InterestsSkills: "singing, reading, \"graphic design\"",
		SchoolName:      "KNUST",
		Program:         "Computer Science",
		CurrentClass:    "Level 300",
		ChurchBranch:    "Ayeduase",
		BranchPastor:    "Pastor Owusu",
		SubmittedBy:     "admin",
	}
}

func TestRegistrationRowRoundTrip(t *testing.T) {
	reg := completeRegistration()
	reg.FatherName = "Kofi Mensah"
	reg.GuardianOccupation = "Trader, part-time"

	row := reg.Row()
	if len(row) != len(RegistrationColumns) {
		t.Fatalf("Row() length = %d, want %d", len(row), len(RegistrationColumns))
	}

	back, err := RegistrationFromRow(row)
	if err != nil {
		t.Fatalf("RegistrationFromRow() error = %v", err)
	}

	if !reflect.DeepEqual(reg, back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, reg)
	}
}

func TestRegistrationFromRow_BadInput(t *testing.T) {
	if _, err := RegistrationFromRow([]string{"too", "short"}); err == nil {
		t.Error("expected error for short row")
	}

	row := completeRegistration().Row()
	row[3] = "not-a-number"
	if _, err := RegistrationFromRow(row); err == nil {
		t.Error("expected error for non-numeric age")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Registration)
		missing []string
	}{
		{"complete", func(r *Registration) {}, nil},
		{"no email", func(r *Registration) { r.Email = "" }, []string{"Email"}},
		{"no age", func(r *Registration) { r.Age = 0 }, []string{"Age"}},
		{"negative age", func(r *Registration) { r.Age = -4 }, []string{"Age"}},
		{
			"several missing",
			func(r *Registration) {
				r.OfficialName = ""
				r.SchoolName = ""
				r.BranchPastor = ""
			},
			[]string{"Official Name", "School Name", "Branch Pastor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := completeRegistration()
			tt.mutate(&reg)

			got := reg.Validate()
			if !reflect.DeepEqual(got, tt.missing) {
				t.Errorf("Validate() = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	// Only the struct's required subset matters; a record with every
	// optional field blank must pass.
	reg := completeRegistration()
	reg.InterestsSkills = ""
	reg.FatherName = ""
	reg.MotherName = ""
	reg.GuardianName = ""
	reg.HostelHall = ""
	reg.RoomNumber = ""
	reg.ShepherdGroup = ""
	reg.YokaPosition = ""

	if missing := reg.Validate(); len(missing) != 0 {
		t.Errorf("Validate() = %v, want no missing fields", missing)
	}
}
