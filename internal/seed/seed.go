package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

// StudentCreator is the part of the student repository the seeder uses
type StudentCreator interface {
	CreateStudent(ctx context.Context, student *appModels.Student) error
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// DemoStudents returns the records inserted when demo data is enabled
func DemoStudents() []*appModels.Student {
	return []*appModels.Student{
		{StudentID: "SV001", Name: "Nguyen Van An", Email: "an.nguyen@school.edu", Age: intPtr(20), Major: strPtr("Computer Science"), GPA: floatPtr(3.45)},
		{StudentID: "SV002", Name: "Tran Thi Binh", Email: "binh.tran@school.edu", Age: intPtr(21), Major: strPtr("Mathematics"), GPA: floatPtr(3.72)},
		{StudentID: "SV003", Name: "Le Hoang Cuong", Email: "cuong.le@school.edu", Age: intPtr(19), Major: strPtr("Physics")},
		{StudentID: "SV004", Name: "Pham Minh Duc", Email: "duc.pham@school.edu"},
	}
}

// CreateDemoData inserts the demo students, skipping any whose student_id already exists.
// Failures are collected so one bad row does not stop the rest.
func CreateDemoData(ctx context.Context, store StudentCreator, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo students...")

	var finalErr error
	created := 0
	for _, student := range DemoStudents() {
		err := store.CreateStudent(ctx, student)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrConflict):
			lgr.Debug().Str("studentID", student.StudentID).Msg("Demo student already exists, skipping")
		default:
			lgr.Error().Err(err).Str("studentID", student.StudentID).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Demo data check finished")
	return finalErr
}
