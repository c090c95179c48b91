package ctdf

import "time"

const DefaultLineColour = "#2563eb"
const DefaultLineLocale = "it"

type Line struct {
	PrimaryIdentifier string `groups:"basic,detailed" json:"id" bson:"-"`

	CreationDateTime     time.Time `groups:"detailed" json:"creation_datetime" bson:"creationdatetime"`
	ModificationDateTime time.Time `groups:"detailed" json:"modification_datetime" bson:"modificationdatetime"`

	// Version is bumped on every write and is used to detect concurrent read-modify-write edits
	Version int64 `groups:"detailed" json:"version" bson:"version"`

	Name        string `groups:"basic,detailed" json:"name" bson:"name" validate:"required"`
	Description string `groups:"basic,detailed" json:"description,omitempty" bson:"description,omitempty"`
	Colour      string `groups:"basic,detailed" json:"color" bson:"color" validate:"omitempty,hexcolor"`
	Locale      string `groups:"basic,detailed" json:"locale" bson:"locale"`

	// Stops are in route order. Their position is the only address an edit can use and it shifts on deletes.
	Stops []*Stop `groups:"detailed" json:"stops" bson:"stops" validate:"dive,required"`

	// Schedules are departure times from the first stop in HH:MM
	Schedules []string `groups:"detailed" json:"schedules" bson:"schedules"`
}

// ApplyDefaults fills in the values a freshly created line is expected to carry
func (l *Line) ApplyDefaults() {
	if l.Colour == "" {
		l.Colour = DefaultLineColour
	}
	if l.Locale == "" {
		l.Locale = DefaultLineLocale
	}
	if l.Stops == nil {
		l.Stops = []*Stop{}
	}
	if l.Schedules == nil {
		l.Schedules = []string{}
	}
}

// LineUpdate describes a single write against a line document.
// Nil fields are left untouched.
type LineUpdate struct {
	// ExpectedVersion makes the write conditional on the version the caller read
	ExpectedVersion *int64

	Stops     *[]*Stop
	PushStop  *Stop
	Schedules *[]string

	ModificationDateTime time.Time
}
