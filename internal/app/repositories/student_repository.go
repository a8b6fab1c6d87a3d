package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/dberrors"
	"github.com/yigit/studentdesk/internal/pkg/helpers"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

const (
	studentsTable       = "students"
	studentIDConstraint = "students_student_id_key"
)

var studentColumns = []string{
	"id", "student_id", "name", "email", "age", "major", "gpa", "enrollment_date",
}

// DBTX is the part of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// storeError classifies a driver error, keeping the cause in the chain.
func storeError(err error, format string, args ...any) error {
	wrapped := fmt.Errorf(format+": %w", append(args, err)...)
	if dberrors.IsConnectionError(err) {
		return apperrors.NewStoreUnavailableError(wrapped)
	}
	return wrapped
}

// substringPattern builds a LIKE pattern matching any value containing s.
// The pattern travels as a bound parameter; LIKE wildcards typed by the caller keep their meaning.
func substringPattern(s string) string {
	return "%" + s + "%"
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		s     models.Student
		age   sql.NullInt64
		major sql.NullString
		gpa   sql.NullFloat64
	)

	if err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &age, &major, &gpa, &s.EnrollmentDate); err != nil {
		return nil, err
	}

	s.Age = helpers.IntPtr(age)
	s.Major = helpers.StringPtr(major)
	s.GPA = helpers.Float64Ptr(gpa)
	return &s, nil
}

// ListStudents returns every student, or those whose student_id and/or name contain the
// filter values (case-sensitive, ANDed), newest enrollment first.
func (r *StudentRepository) ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	query := r.sb.Select(studentColumns...).From(studentsTable)

	conditions := squirrel.And{}
	if filter.StudentID != "" {
		conditions = append(conditions, squirrel.Like{"student_id": substringPattern(filter.StudentID)})
	}
	if filter.Name != "" {
		conditions = append(conditions, squirrel.Like{"name": substringPattern(filter.Name)})
	}
	if !filter.IsEmpty() {
		query = query.Where(conditions)
	}

	stmt, args, err := query.OrderBy("enrollment_date DESC", "id DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, storeError(err, "error querying students")
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, storeError(err, "error iterating student rows")
	}

	return students, nil
}

// GetStudentByStudentID retrieves the student whose student_id equals studentID exactly
func (r *StudentRepository) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	stmt, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, storeError(err, "error getting student %s", studentID)
	}

	return student, nil
}

// CreateStudent inserts a student and fills in the store-assigned id and enrollment_date
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	stmt, args, err := r.sb.Insert(studentsTable).
		Columns("student_id", "name", "email", "age", "major", "gpa").
		Values(
			student.StudentID,
			student.Name,
			student.Email,
			helpers.NullableArg(student.Age),
			helpers.NullableArg(student.Major),
			helpers.NullableArg(student.GPA),
		).
		Suffix("RETURNING id, enrollment_date").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, stmt, args...).Scan(&student.ID, &student.EnrollmentDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentIDConstraint) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student violates a unique constraint")
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return storeError(err, "error creating student")
	}

	return nil
}

// UpdateStudent overwrites name, email, age, major and gpa of the matching student.
// It returns the number of rows affected (0 or 1) and never inserts.
func (r *StudentRepository) UpdateStudent(ctx context.Context, studentID string, fields models.StudentFields) (int64, error) {
	stmt, args, err := r.sb.Update(studentsTable).
		Set("name", fields.Name).
		Set("email", fields.Email).
		Set("age", helpers.NullableArg(fields.Age)).
		Set("major", helpers.NullableArg(fields.Major)).
		Set("gpa", helpers.NullableArg(fields.GPA)).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return 0, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, stmt, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update student query")
		return 0, storeError(err, "error updating student %s", studentID)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteStudent permanently removes the matching student and returns the rows affected (0 or 1)
func (r *StudentRepository) DeleteStudent(ctx context.Context, studentID string) (int64, error) {
	stmt, args, err := r.sb.Delete(studentsTable).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return 0, fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, stmt, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing delete student query")
		return 0, storeError(err, "error deleting student %s", studentID)
	}

	return cmdTag.RowsAffected(), nil
}
