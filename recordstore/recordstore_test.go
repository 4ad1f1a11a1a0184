// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recordstore

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/member-registry/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.csv"))
}

func testRegistration() models.Registration {
	return models.Registration{
		Timestamp:    "2025-01-15 10:30:00",
		OfficialName: "Ama Mensah",
		DateOfBirth:  "2003-06-21",
		Age:          21,
		PhoneNumbers: "0241234567",
		Email:        "ama@example.com",
		SchoolName:   "KNUST",
		Program:      "Computer Science",
		CurrentClass: "Level 300",
		ChurchBranch: "Ayeduase",
		BranchPastor: "Pastor Owusu",
		SubmittedBy:  "admin",
	}
}

func TestInitialize_WritesHeader(t *testing.T) {
	store := newTestStore(t)

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	firstLine := strings.SplitN(string(data), "\n", 2)[0]
	if !strings.HasPrefix(firstLine, "timestamp,official_name,") {
		t.Errorf("unexpected header: %s", firstLine)
	}
	if !strings.HasSuffix(firstLine, ",submitted_by") {
		t.Errorf("header does not end with submitted_by: %s", firstLine)
	}

	// Second Initialize must leave the file alone
	if err := store.Initialize(); err != nil {
		t.Fatalf("second Initialize() error = %v", err)
	}
}

func TestAppendAndLoadAll(t *testing.T) {
	store := newTestStore(t)
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	first := testRegistration()
	second := testRegistration()
	second.OfficialName = "Kofi Boateng"
	second.SubmittedBy = "bob"

	if err := store.Append(first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("LoadAll() returned %d records, want 2", len(records))
	}

	// Insertion order is the only key
	if !reflect.DeepEqual(records[0], first) {
		t.Errorf("first record mismatch:\n got %+v\nwant %+v", records[0], first)
	}
	if !reflect.DeepEqual(records[1], second) {
		t.Errorf("second record mismatch:\n got %+v\nwant %+v", records[1], second)
	}
}

func TestAppend_QuotedFields(t *testing.T) {
	store := newTestStore(t)
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	rec := testRegistration()
	rec.InterestsSkills = `singing, reading, "graphic design"` + "\nand football"
	rec.FatherOccupation = "Trader, self-employed"

	if err := store.Append(rec); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("LoadAll() returned %d records, want 1", len(records))
	}

	// Embedded commas, quotes and newlines must round-trip exactly
	if records[0].InterestsSkills != rec.InterestsSkills {
		t.Errorf("interests_skills = %q, want %q", records[0].InterestsSkills, rec.InterestsSkills)
	}
	if records[0].FatherOccupation != rec.FatherOccupation {
		t.Errorf("father_occupation = %q, want %q", records[0].FatherOccupation, rec.FatherOccupation)
	}
}

func TestAppend_CreatesStoreWithHeader(t *testing.T) {
	store := newTestStore(t)

	// No Initialize: Append must create the file itself
	if err := store.Append(testRegistration()); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("LoadAll() returned %d records, want 1", len(records))
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	store := newTestStore(t)

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on missing file error = %v, want nil", err)
	}
	if len(records) != 0 {
		t.Errorf("LoadAll() returned %d records, want 0", len(records))
	}
}

func TestLoadAll_CorruptStore(t *testing.T) {
	store := newTestStore(t)

	// Wrong header shape
	if err := os.WriteFile(store.Path(), []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadAll(); err == nil {
		t.Error("expected error for wrong header")
	}
}
