// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strconv"
)

// Registration is one submitted member record. Field order matches the
// CSV column order in the record store exactly; do not reorder.
type Registration struct {
	Timestamp       string `json:"timestamp"`
	OfficialName    string `json:"official_name"`
	DateOfBirth     string `json:"date_of_birth"`
	Age             int    `json:"age"`
	PhoneNumbers    string `json:"phone_numbers"`
	Email           string `json:"email"`
	InterestsSkills string `json:"interests_skills"`

	OnCampusBusiness string `json:"on_campus_business"`
	BusinessNameType string `json:"business_name_type"`

	FatherName         string `json:"father_name"`
	FatherPhone        string `json:"father_phone"`
	FatherChurchMember string `json:"father_church_member"`
	FatherBranch       string `json:"father_branch"`
	FatherPosition     string `json:"father_position"`
	FatherOccupation   string `json:"father_occupation"`

	MotherName         string `json:"mother_name"`
	MotherPhone        string `json:"mother_phone"`
	MotherChurchMember string `json:"mother_church_member"`
	MotherBranch       string `json:"mother_branch"`
	MotherPosition     string `json:"mother_position"`
	MotherOccupation   string `json:"mother_occupation"`

	GuardianName         string `json:"guardian_name"`
	GuardianPhone        string `json:"guardian_phone"`
	GuardianChurchMember string `json:"guardian_church_member"`
	GuardianBranch       string `json:"guardian_branch"`
	GuardianPosition     string `json:"guardian_position"`
	GuardianOccupation   string `json:"guardian_occupation"`

	SchoolName   string `json:"school_name"`
	Program      string `json:"program"`
	CurrentClass string `json:"current_class"`
	HostelHall   string `json:"hostel_hall"`
	RoomNumber   string `json:"room_number"`

	ChurchBranch string `json:"church_branch"`
	BranchPastor string `json:"branch_pastor"`

	ShepherdGroup string `json:"shepherd_group"`
	YokaPosition  string `json:"yoka_position"`

	SubmittedBy string `json:"submitted_by"`
}

// RegistrationColumns is the fixed CSV header of the record store.
var RegistrationColumns = []string{
	"timestamp", "official_name", "date_of_birth", "age", "phone_numbers",
	"email", "interests_skills", "on_campus_business", "business_name_type",
	"father_name", "father_phone", "father_church_member", "father_branch",
	"father_position", "father_occupation",
	"mother_name", "mother_phone", "mother_church_member", "mother_branch",
	"mother_position", "mother_occupation",
	"guardian_name", "guardian_phone", "guardian_church_member", "guardian_branch",
	"guardian_position", "guardian_occupation",
	"school_name", "program", "current_class", "hostel_hall", "room_number",
	"church_branch", "branch_pastor", "shepherd_group", "yoka_position",
	"submitted_by",
}

// Row renders the registration as one CSV row in column order.
func (r Registration) Row() []string {
	return []string{
		r.Timestamp, r.OfficialName, r.DateOfBirth, strconv.Itoa(r.Age),
		r.PhoneNumbers, r.Email, r.InterestsSkills, r.OnCampusBusiness,
		r.BusinessNameType,
		r.FatherName, r.FatherPhone, r.FatherChurchMember, r.FatherBranch,
		r.FatherPosition, r.FatherOccupation,
		r.MotherName, r.MotherPhone, r.MotherChurchMember, r.MotherBranch,
		r.MotherPosition, r.MotherOccupation,
		r.GuardianName, r.GuardianPhone, r.GuardianChurchMember, r.GuardianBranch,
		r.GuardianPosition, r.GuardianOccupation,
		r.SchoolName, r.Program, r.CurrentClass, r.HostelHall, r.RoomNumber,
		r.ChurchBranch, r.BranchPastor, r.ShepherdGroup, r.YokaPosition,
		r.SubmittedBy,
	}
}

// RegistrationFromRow parses one CSV row back into a Registration.
func RegistrationFromRow(row []string) (Registration, error) {
	if len(row) != len(RegistrationColumns) {
		return Registration{}, fmt.Errorf("expected %d columns, got %d", len(RegistrationColumns), len(row))
	}

	age, err := strconv.Atoi(row[3])
	if err != nil {
		return Registration{}, fmt.Errorf("invalid age %q: %w", row[3], err)
	}

	return Registration{
		Timestamp:       row[0],
		OfficialName:    row[1],
		DateOfBirth:     row[2],
		Age:             age,
		PhoneNumbers:    row[4],
		Email:           row[5],
		InterestsSkills: row[6],

		OnCampusBusiness: row[7],
		BusinessNameType: row[8],

		FatherName:         row[9],
		FatherPhone:        row[10],
		FatherChurchMember: row[11],
		FatherBranch:       row[12],
		FatherPosition:     row[13],
		FatherOccupation:   row[14],

		MotherName:         row[15],
		MotherPhone:        row[16],
		MotherChurchMember: row[17],
		MotherBranch:       row[18],
		MotherPosition:     row[19],
		MotherOccupation:   row[20],

		GuardianName:         row[21],
		GuardianPhone:        row[22],
		GuardianChurchMember: row[23],
		GuardianBranch:       row[24],
		GuardianPosition:     row[25],
		GuardianOccupation:   row[26],

		SchoolName:   row[27],
		Program:      row[28],
		CurrentClass: row[29],
		HostelHall:   row[30],
		RoomNumber:   row[31],

		ChurchBranch: row[32],
		BranchPastor: row[33],

		ShepherdGroup: row[34],
		YokaPosition:  row[35],

		SubmittedBy: row[36],
	}, nil
}

// Validate returns the display names of required fields that are empty.
// An empty slice means the registration is complete enough to store.
func (r Registration) Validate() []string {
	var missing []string

	required := []struct {
		label string
		empty bool
	}{
		{"Official Name", r.OfficialName == ""},
		{"Date of Birth", r.DateOfBirth == ""},
		{"Age", r.Age <= 0},
		{"Phone Numbers", r.PhoneNumbers == ""},
		{"Email", r.Email == ""},
		{"School Name", r.SchoolName == ""},
		{"Program", r.Program == ""},
		{"Current Class", r.CurrentClass == ""},
		{"Church Branch", r.ChurchBranch == ""},
		{"Branch Pastor", r.BranchPastor == ""},
	}

	for _, f := range required {
		if f.empty {
			missing = append(missing, f.label)
		}
	}

	return missing
}
