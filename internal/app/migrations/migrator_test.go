package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
)

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS students`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	if err := NewMigrator(mock, zerolog.Nop()).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEnsureSchemaPropagatesErrors(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS students`).
		WillReturnError(errors.New("permission denied for schema public"))

	err = NewMigrator(mock, zerolog.Nop()).EnsureSchema(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "001_create_students.sql") {
		t.Errorf("error should name the failing script, got %q", err.Error())
	}
}

func TestSchemaKeepsExistingData(t *testing.T) {
	m := NewMigrator(nil, zerolog.Nop())
	files, err := m.scripts()
	if err != nil {
		t.Fatalf("scripts() unexpected error: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one embedded schema script")
	}

	for _, name := range files {
		content, err := schemaFiles.ReadFile("sql/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		upper := strings.ToUpper(string(content))
		if strings.Contains(upper, "DROP ") || strings.Contains(upper, "TRUNCATE") {
			t.Errorf("%s must not drop or truncate data", name)
		}
		if strings.Contains(upper, "CREATE TABLE") && !strings.Contains(upper, "IF NOT EXISTS") {
			t.Errorf("%s must create tables only if absent", name)
		}
	}
}
