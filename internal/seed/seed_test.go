package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

type recordingCreator struct {
	existing map[string]bool
	failOn   string
	created  []string
}

func (r *recordingCreator) CreateStudent(_ context.Context, student *appModels.Student) error {
	if student.StudentID == r.failOn {
		return errors.New("insert failed")
	}
	if r.existing[student.StudentID] {
		return apperrors.ErrStudentIDAlreadyExists
	}
	r.created = append(r.created, student.StudentID)
	return nil
}

func TestCreateDemoDataSkipsExisting(t *testing.T) {
	creator := &recordingCreator{existing: map[string]bool{"SV001": true}}

	if err := CreateDemoData(context.Background(), creator, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDemoData() unexpected error: %v", err)
	}

	if len(creator.created) != len(DemoStudents())-1 {
		t.Errorf("created %v, want every demo student except SV001", creator.created)
	}
	for _, id := range creator.created {
		if id == "SV001" {
			t.Error("existing student should be skipped")
		}
	}
}

func TestCreateDemoDataCollectsFailures(t *testing.T) {
	creator := &recordingCreator{failOn: "SV002"}

	err := CreateDemoData(context.Background(), creator, zerolog.Nop())
	if err == nil {
		t.Fatal("expected the insert failure to be reported")
	}
	if len(creator.created) != len(DemoStudents())-1 {
		t.Errorf("remaining students should still be created, got %v", creator.created)
	}
}

func TestDemoStudentsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range DemoStudents() {
		if seen[s.StudentID] {
			t.Errorf("duplicate demo student_id %s", s.StudentID)
		}
		seen[s.StudentID] = true
	}
}
