package lines

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/atomo10/atomo/pkg/events"
	"github.com/go-playground/validator/v10"
)

// DocumentStore is the persistence the repository needs: one document per line, identified by an
// opaque string id. UpdateLine reports whether a document matched so missing lines can be told apart.
type DocumentStore interface {
	InsertLine(ctx context.Context, line *ctdf.Line) (string, error)
	FindLine(ctx context.Context, identifier string) (*ctdf.Line, error)
	FindLines(ctx context.Context) ([]*ctdf.Line, error)
	UpdateLine(ctx context.Context, identifier string, update *ctdf.LineUpdate) (bool, error)
}

type Repository struct {
	store    DocumentStore
	events   events.Publisher
	validate *validator.Validate

	Now func() time.Time
}

func NewRepository(store DocumentStore, publisher events.Publisher) *Repository {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Repository{
		store:    store,
		events:   publisher,
		validate: validate,
		Now:      time.Now,
	}
}

func (r *Repository) CreateLine(ctx context.Context, line *ctdf.Line) (string, error) {
	if err := r.validateStruct(line); err != nil {
		return "", err
	}

	now := r.Now()
	line.ApplyDefaults()
	line.Version = 0
	line.CreationDateTime = now
	line.ModificationDateTime = now

	identifier, err := r.store.InsertLine(ctx, line)
	if err != nil {
		return "", err
	}

	r.publish(ctx, events.EventTypeLineCreated, identifier, map[string]interface{}{
		"name": line.Name,
	})

	return identifier, nil
}

func (r *Repository) ListLines(ctx context.Context) ([]*ctdf.Line, error) {
	return r.store.FindLines(ctx)
}

func (r *Repository) GetLine(ctx context.Context, identifier string) (*ctdf.Line, error) {
	return r.store.FindLine(ctx, identifier)
}

// writeUnconditionally applies an update that does not depend on what was read before it
func (r *Repository) writeUnconditionally(ctx context.Context, identifier string, update *ctdf.LineUpdate) error {
	update.ModificationDateTime = r.Now()

	matched, err := r.store.UpdateLine(ctx, identifier, update)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: %s", ctdf.ErrNotFound, identifier)
	}

	return nil
}

// rewriteStops reads the stop list, lets mutate change it and writes the whole list back.
// The write only lands if nobody else wrote the line in between.
func (r *Repository) rewriteStops(ctx context.Context, identifier string, mutate func(stops []*ctdf.Stop) ([]*ctdf.Stop, error)) error {
	line, err := r.store.FindLine(ctx, identifier)
	if err != nil {
		return err
	}

	stops, err := mutate(line.Stops)
	if err != nil {
		return err
	}

	version := line.Version
	matched, err := r.store.UpdateLine(ctx, identifier, &ctdf.LineUpdate{
		ExpectedVersion:      &version,
		Stops:                &stops,
		ModificationDateTime: r.Now(),
	})
	if err != nil {
		return err
	}
	if matched {
		return nil
	}

	if _, err := r.store.FindLine(ctx, identifier); err != nil {
		return err
	}

	return fmt.Errorf("%w: %s", ctdf.ErrConflict, identifier)
}

func (r *Repository) validateStruct(value interface{}) error {
	err := r.validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", ctdf.ErrValidation, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %s", fieldError.Namespace(), fieldError.Tag()))
	}

	return fmt.Errorf("%w: %s", ctdf.ErrValidation, strings.Join(problems, ", "))
}

func (r *Repository) publish(ctx context.Context, eventType events.EventType, identifier string, detail map[string]interface{}) {
	r.events.Publish(ctx, &events.Event{
		Type:           eventType,
		LineIdentifier: identifier,
		Timestamp:      r.Now(),
		Detail:         detail,
	})
}
