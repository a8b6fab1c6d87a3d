package services

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/validation"
)

// NUMERIC(3,2) holds at most 9.99
const gpaUpperBound = 10

var gpaHundredthsLimit = big.NewInt(gpaUpperBound * 100)

// StudentStore is the data access the service depends on
type StudentStore interface {
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, studentID string, fields models.StudentFields) (int64, error)
	DeleteStudent(ctx context.Context, studentID string) (int64, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, query dto.StudentSearchQuery) ([]*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	// UpdateStudent and DeleteStudent return the number of rows affected; 0 means no match.
	UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (int64, error)
	DeleteStudent(ctx context.Context, studentID string) (int64, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store  StudentStore
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, lgr zerolog.Logger) StudentService {
	return &studentServiceImpl{
		store:  store,
		logger: lgr,
	}
}

// optionalString maps an empty input to nil (stored as NULL)
func optionalString(rule *validation.StringRule, raw dto.LooseString) (*string, error) {
	if raw == "" {
		return nil, nil
	}
	value := raw.String()
	if err := rule.Check(value); err != nil {
		return nil, err
	}
	return &value, nil
}

func optionalAge(raw dto.LooseString) (*int, error) {
	text := strings.TrimSpace(raw.String())
	if text == "" {
		return nil, nil
	}

	age, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, apperrors.NewValidationError("age must be a whole number, got %q", text)
	}

	v := int(age)
	return &v, nil
}

// optionalGPA parses gpa as exact decimal text and rounds it half away from zero to
// two places, the way the NUMERIC(3,2) column does. The rounded value is what gets stored.
func optionalGPA(raw dto.LooseString) (*float64, error) {
	text := strings.TrimSpace(raw.String())
	if text == "" {
		return nil, nil
	}

	exact, ok := new(big.Rat).SetString(text)
	if _, err := strconv.ParseFloat(text, 64); err != nil || !ok || strings.Contains(text, "/") {
		return nil, apperrors.NewValidationError("gpa must be a decimal number, got %q", text)
	}

	hundredths := roundHalfAwayFromZero(new(big.Rat).Mul(exact, big.NewRat(100, 1)))
	if hundredths.CmpAbs(gpaHundredthsLimit) >= 0 {
		return nil, apperrors.NewValidationError("gpa must be less than %d, got %q", gpaUpperBound, text)
	}

	gpa, _ := new(big.Rat).SetFrac(hundredths, big.NewInt(100)).Float64()
	return &gpa, nil
}

func roundHalfAwayFromZero(r *big.Rat) *big.Int {
	// floor((2|num| + den) / 2den)
	twiceDen := new(big.Int).Lsh(r.Denom(), 1)
	q := new(big.Int).Lsh(new(big.Int).Abs(r.Num()), 1)
	q.Add(q, r.Denom())
	q.Quo(q, twiceDen)
	if r.Sign() < 0 {
		q.Neg(q)
	}
	return q
}

// buildFields validates the columns shared by create and update
func buildFields(name, email string, age, major, gpa dto.LooseString) (models.StudentFields, error) {
	var fields models.StudentFields
	var err error

	if err = validation.NameRule.Check(name); err != nil {
		return fields, err
	}
	if err = validation.EmailRule.Check(email); err != nil {
		return fields, err
	}

	fields.Name = name
	fields.Email = email

	if fields.Age, err = optionalAge(age); err != nil {
		return fields, err
	}
	if fields.Major, err = optionalString(validation.MajorRule, major); err != nil {
		return fields, err
	}
	if fields.GPA, err = optionalGPA(gpa); err != nil {
		return fields, err
	}

	return fields, nil
}

// ListStudents lists or searches students by substring filters
func (s *studentServiceImpl) ListStudents(ctx context.Context, query dto.StudentSearchQuery) ([]*models.Student, error) {
	filter := models.StudentFilter{StudentID: query.ID, Name: query.Name}

	students, err := s.store.ListStudents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	s.logger.Debug().
		Str("idFilter", filter.StudentID).
		Str("nameFilter", filter.Name).
		Int("count", len(students)).
		Msg("Students listed")
	return students, nil
}

// GetStudent retrieves a student by its external student_id
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.store.GetStudentByStudentID(ctx, studentID)
}

// CreateStudent validates the request and inserts a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("student is nil")
	}

	if err := validation.StudentIDRule.Check(req.StudentID); err != nil {
		return nil, err
	}

	fields, err := buildFields(req.Name, req.Email, req.Age, req.Major, req.GPA)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID: req.StudentID,
		Name:      fields.Name,
		Email:     fields.Email,
		Age:       fields.Age,
		Major:     fields.Major,
		GPA:       fields.GPA,
	}

	if err := s.store.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", student.StudentID).Int64("id", student.ID).Msg("Student created")
	return student, nil
}

// UpdateStudent overwrites the mutable columns of the student with the given student_id
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.NewValidationError("student is nil")
	}

	fields, err := buildFields(req.Name, req.Email, req.Age, req.Major, req.GPA)
	if err != nil {
		return 0, err
	}

	affected, err := s.store.UpdateStudent(ctx, studentID, fields)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("studentID", studentID).Int64("affected", affected).Msg("Student update executed")
	return affected, nil
}

// DeleteStudent permanently removes the student with the given student_id
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) (int64, error) {
	affected, err := s.store.DeleteStudent(ctx, studentID)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("studentID", studentID).Int64("affected", affected).Msg("Student delete executed")
	return affected, nil
}
