package ocr

import (
	_ "embed"
	"fmt"

	"github.com/atomo10/atomo/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

//go:embed sample_timetable.yaml
var sampleTimetable []byte

type TimetableStop struct {
	Name                      string `json:"name" yaml:"name"`
	TravelMinutesFromPrevious int    `json:"travel_minutes_from_prev" yaml:"travel_minutes_from_prev"`
}

type Timetable struct {
	Stops     []TimetableStop `json:"stops" yaml:"stops"`
	Schedules []string        `json:"schedules" yaml:"schedules"`
}

// Parser reads a timetable out of a photographed timetable
type Parser interface {
	Parse(image []byte) (*Timetable, error)
}

// SampleParser does no image recognition at all, it answers every non empty upload with the bundled sample timetable
type SampleParser struct {
	timetable *Timetable
}

func NewSampleParser() (*SampleParser, error) {
	var timetable Timetable
	if err := yaml.Unmarshal(sampleTimetable, &timetable); err != nil {
		return nil, err
	}

	return &SampleParser{timetable: &timetable}, nil
}

func (p *SampleParser) Parse(image []byte) (*Timetable, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: Empty file", ctdf.ErrValidation)
	}

	timetable := &Timetable{
		Stops:     append([]TimetableStop{}, p.timetable.Stops...),
		Schedules: append([]string{}, p.timetable.Schedules...),
	}

	return timetable, nil
}
