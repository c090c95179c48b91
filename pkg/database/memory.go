package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryLineStore keeps lines in process. It follows the same identifier and version rules as LineStore
// and backs local runs without MongoDB as well as tests.
type MemoryLineStore struct {
	mutex sync.Mutex
	lines map[string]*ctdf.Line
	order []string
}

func NewMemoryLineStore() *MemoryLineStore {
	return &MemoryLineStore{
		lines: map[string]*ctdf.Line{},
	}
}

func (s *MemoryLineStore) InsertLine(ctx context.Context, line *ctdf.Line) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, err := cloneLine(line)
	if err != nil {
		return "", err
	}
	stored.PrimaryIdentifier = primitive.NewObjectID().Hex()

	s.lines[stored.PrimaryIdentifier] = stored
	s.order = append(s.order, stored.PrimaryIdentifier)

	return stored.PrimaryIdentifier, nil
}

func (s *MemoryLineStore) FindLine(ctx context.Context, identifier string) (*ctdf.Line, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	line, err := s.lookup(identifier)
	if err != nil {
		return nil, err
	}

	return cloneLine(line)
}

func (s *MemoryLineStore) FindLines(ctx context.Context) ([]*ctdf.Line, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lines := []*ctdf.Line{}
	for _, identifier := range s.order {
		line, err := cloneLine(s.lines[identifier])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (s *MemoryLineStore) UpdateLine(ctx context.Context, identifier string, update *ctdf.LineUpdate) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	line, err := s.lookup(identifier)
	if err != nil {
		if _, malformed := primitive.ObjectIDFromHex(identifier); malformed != nil {
			return false, err
		}
		return false, nil
	}

	if update.ExpectedVersion != nil && *update.ExpectedVersion != line.Version {
		return false, nil
	}

	if update.Stops != nil {
		stops, err := cloneStops(*update.Stops)
		if err != nil {
			return false, err
		}
		line.Stops = stops
	}
	if update.PushStop != nil {
		stops, err := cloneStops([]*ctdf.Stop{update.PushStop})
		if err != nil {
			return false, err
		}
		line.Stops = append(line.Stops, stops...)
	}
	if update.Schedules != nil {
		line.Schedules = append([]string{}, *update.Schedules...)
	}

	line.ModificationDateTime = update.ModificationDateTime
	line.Version++

	return true, nil
}

func (s *MemoryLineStore) lookup(identifier string) (*ctdf.Line, error) {
	if _, err := primitive.ObjectIDFromHex(identifier); err != nil {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrMalformedIdentifier, identifier)
	}

	line, exists := s.lines[identifier]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrNotFound, identifier)
	}

	return line, nil
}

func cloneLine(line *ctdf.Line) (*ctdf.Line, error) {
	clone := *line

	stops, err := cloneStops(line.Stops)
	if err != nil {
		return nil, err
	}
	clone.Stops = stops
	clone.Schedules = append([]string{}, line.Schedules...)

	return &clone, nil
}

func cloneStops(stops []*ctdf.Stop) ([]*ctdf.Stop, error) {
	clone := []*ctdf.Stop{}
	if len(stops) == 0 {
		return clone, nil
	}

	if err := copier.CopyWithOption(&clone, &stops, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return clone, nil
}
