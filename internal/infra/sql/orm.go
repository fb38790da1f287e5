package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ORM is the chainable subset of gorm used by the repositories. Every
// call returns a new ORM, so a chain never mutates the receiver.
type ORM interface {
	AutoMigrate(dst ...any) error
	Clauses(conds ...clause.Expression) ORM
	Count(count *int64) ORM
	Create(value any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Limit(limit int) ORM
	Model(value any) ORM
	Offset(offset int) ORM
	Order(value any) ORM
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM

	Error() error
	RowsAffected() int64
}

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
}

var (
	ErrRecordNotFound = errors.New("record not found")
)

func (d DB) Error() error {
	switch {
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case d.DB.Error != nil:
		return fmt.Errorf("database error: %w", d.DB.Error)
	default:
		return nil
	}
}

var _ ORM = (*DB)(nil)

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) RowsAffected() int64 {
	return d.DB.RowsAffected
}

func (d DB) Clauses(conds ...clause.Expression) ORM {
	tx := d.DB.Clauses(conds...)
	d.DB = tx
	return &d
}

func (d DB) Count(value *int64) ORM {
	tx := d.DB.Count(value)
	d.DB = tx
	return &d
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.Create(value)
	d.DB = tx
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	tx := d.DB.Find(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	tx := d.DB.First(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Limit(value int) ORM {
	tx := d.DB.Limit(value)
	d.DB = tx
	return &d
}

func (d DB) Model(value any) ORM {
	tx := d.DB.Model(value)
	d.DB = tx
	return &d
}

func (d DB) Offset(value int) ORM {
	tx := d.DB.Offset(value)
	d.DB = tx
	return &d
}

func (d DB) Order(value any) ORM {
	tx := d.DB.Order(value)
	d.DB = tx
	return &d
}

func (d DB) Where(value any, conds ...any) ORM {
	tx := d.DB.Where(value, conds...)
	d.DB = tx
	return &d
}

// WithContext binds ctx to the statement. When the DB has a default
// timeout the statement is also bounded by it.
func (d DB) WithContext(ctx context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(ctx, d.timeout)
	}

	tx := d.DB.WithContext(ctx)
	d.DB = tx
	return &d
}

func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	context.AfterFunc(timeoutCtx, cancel)

	tx := d.DB.WithContext(timeoutCtx)
	d.DB = tx
	return &d
}

// setSpanAttributes annotates the active span, if any, with the statement
// being run.
func (d DB) setSpanAttributes(operation string) {
	ctx := d.DB.Statement.Context
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("component", "database"),
		attribute.String("db.system", d.DB.Dialector.Name()),
		attribute.String("db.operation", operation),
	}
	if table := d.DB.Statement.Table; table != "" {
		attrs = append(attrs, attribute.String("db.sql.table", table))
	}
	span.SetAttributes(attrs...)
}
