package ctdf

type Stop struct {
	// Identifier is an optional client supplied id, stable across reorders and deletes
	Identifier string `groups:"detailed" json:"id,omitempty" bson:"id,omitempty"`

	Name      string   `groups:"detailed" json:"name" bson:"name" validate:"required"`
	Latitude  *float64 `groups:"detailed" json:"lat,omitempty" bson:"lat,omitempty" validate:"omitnil,latitude"`
	Longitude *float64 `groups:"detailed" json:"lng,omitempty" bson:"lng,omitempty" validate:"omitnil,longitude"`

	// TravelMinutesFromPrevious is ignored for the first stop of a line
	TravelMinutesFromPrevious int `groups:"detailed" json:"travel_minutes_from_prev" bson:"travel_minutes_from_prev" validate:"gte=0"`
}

// StopPatch carries the fields of a partial stop edit. Only non-nil fields are applied.
type StopPatch struct {
	Name                      *string  `json:"name" validate:"omitnil,min=1"`
	Latitude                  *float64 `json:"lat" validate:"omitnil,latitude"`
	Longitude                 *float64 `json:"lng" validate:"omitnil,longitude"`
	TravelMinutesFromPrevious *int     `json:"travel_minutes_from_prev" validate:"omitnil,gte=0"`
}

func (s *Stop) ApplyPatch(patch *StopPatch) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Latitude != nil {
		latitude := *patch.Latitude
		s.Latitude = &latitude
	}
	if patch.Longitude != nil {
		longitude := *patch.Longitude
		s.Longitude = &longitude
	}
	if patch.TravelMinutesFromPrevious != nil {
		s.TravelMinutesFromPrevious = *patch.TravelMinutesFromPrevious
	}
}

