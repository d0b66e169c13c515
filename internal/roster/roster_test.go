package roster

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/classkit/internal/rng"
)

func TestAdd(t *testing.T) {
	r := New(nil)

	s, err := r.Add("  Emma de Vries ", Female, true, false)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if s.Name != "Emma de Vries" {
		t.Errorf("expected trimmed name, got %q", s.Name)
	}
	if s.ID == 0 {
		t.Error("expected an id to be assigned")
	}
	if !s.Disruptive || s.FrontRow {
		t.Errorf("flags not kept: %+v", s)
	}

	if _, err := r.Add("   ", Male, false, false); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 student, got %d", r.Len())
	}
}

func TestAdd_DefaultsGender(t *testing.T) {
	r := New(nil)
	s, err := r.Add("Luuk", "", false, false)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if s.Gender != Male {
		t.Errorf("expected default gender m, got %q", s.Gender)
	}
}

func TestIDsAreUnique(t *testing.T) {
	fixed := time.UnixMilli(1000)
	r := New(nil)
	r.ids.now = func() time.Time { return fixed }

	seen := make(map[int64]bool)
	for _, s := range r.Paste("a\nb\nc\nd") {
		if seen[s.ID] {
			t.Fatalf("duplicate id %d", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNew_RespectsExistingIDs(t *testing.T) {
	far := time.Now().Add(time.Hour).UnixMilli()
	r := New([]Student{{ID: far, Name: "Sophie", Gender: Female}})
	s, err := r.Add("Bram", Male, false, false)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if s.ID <= far {
		t.Errorf("expected id above %d, got %d", far, s.ID)
	}
}

func TestPaste(t *testing.T) {
	r := New(nil)
	added := r.Paste("Emma de Vries\n\n  Luuk Jansen  \r\n   \nSophie Bakker")

	if len(added) != 3 {
		t.Fatalf("expected 3 students, got %d", len(added))
	}
	want := []string{"Emma de Vries", "Luuk Jansen", "Sophie Bakker"}
	for i, s := range added {
		if s.Name != want[i] {
			t.Errorf("student %d: expected %q, got %q", i, want[i], s.Name)
		}
		if s.Gender != Male || s.Disruptive || s.FrontRow {
			t.Errorf("pasted student should have defaults: %+v", s)
		}
	}
}

func TestEdit_PreservesID(t *testing.T) {
	r := New(nil)
	s, _ := r.Add("Noah", Male, false, false)

	updated, err := r.Edit(s.ID, func(st *Student) {
		st.ID = 99
		st.Name = "Noah B."
		st.FrontRow = true
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if updated.ID != s.ID {
		t.Errorf("id changed from %d to %d", s.ID, updated.ID)
	}
	got, ok := r.Find(s.ID)
	if !ok || got.Name != "Noah B." || !got.FrontRow {
		t.Errorf("edit not stored: %+v", got)
	}

	if _, err := r.Edit(12345, func(*Student) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.Edit(s.ID, func(st *Student) { st.Name = "" }); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	r := New(nil)
	a, _ := r.Add("A", Male, false, false)
	b, _ := r.Add("B", Male, false, false)

	if err := r.Remove(a.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := r.Find(a.ID); ok {
		t.Error("removed student still present")
	}
	if _, ok := r.Find(b.ID); !ok {
		t.Error("wrong student removed")
	}
	if err := r.Remove(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByName(t *testing.T) {
	r := New(nil)
	r.Paste("Emma\nLuuk")
	if s, ok := r.FindByName("luuk"); !ok || s.Name != "Luuk" {
		t.Errorf("expected to find Luuk, got %+v %v", s, ok)
	}
	if _, ok := r.FindByName("Daan"); ok {
		t.Error("found a student that does not exist")
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"v", Female},
		{"V", Female},
		{"female", Female},
		{"m", Male},
		{"", Male},
		{"anything", Male},
	}
	for _, tt := range tests {
		if got := ParseGender(tt.in); got != tt.want {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPick(t *testing.T) {
	if _, err := Pick(nil, rng.New(1)); !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("expected ErrEmptyRoster, got %v", err)
	}

	students := []Student{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	r := rng.New(11)
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		s, err := Pick(students, r)
		if err != nil {
			t.Fatalf("pick failed: %v", err)
		}
		seen[s.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected every student to be picked at least once, saw %d", len(seen))
	}
}

func TestImportXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Naam", "Geslacht", "Druk", "Vooraan"},
		{"Emma", "v", "", "x"},
		{"", "m", "1", ""},
		{"Luuk", "m", "ja"},
		{"Sophie"},
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	r := New(nil)
	added, err := r.ImportXLSX(&buf)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(added) != 3 {
		t.Fatalf("expected 3 students, got %d: %+v", len(added), added)
	}

	emma := added[0]
	if emma.Name != "Emma" || emma.Gender != Female || emma.Disruptive || !emma.FrontRow {
		t.Errorf("unexpected first student: %+v", emma)
	}
	luuk := added[1]
	if !luuk.Disruptive || luuk.FrontRow {
		t.Errorf("unexpected second student: %+v", luuk)
	}
	if added[2].Name != "Sophie" || added[2].Gender != Male {
		t.Errorf("unexpected third student: %+v", added[2])
	}
}

func TestImportXLSX_NotAWorkbook(t *testing.T) {
	r := New(nil)
	if _, err := r.ImportXLSX(bytes.NewBufferString("not a zip")); err == nil {
		t.Error("expected an error for a non-xlsx input")
	}
}
