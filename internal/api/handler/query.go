package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/airscope/airscope/internal/api/response"
	"github.com/airscope/airscope/internal/location"
)

var validate = newValidator()

// newValidator reports fields by their query parameter name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// locationQuery identifies a place by free-text name.
type locationQuery struct {
	Location string `query:"location" validate:"required,min=2,max=120"`
}

func (q *locationQuery) read(r *http.Request) {
	q.Location = strings.TrimSpace(r.URL.Query().Get("location"))
}

func (q *locationQuery) bind(r *http.Request) error {
	q.read(r)
	return validate.Struct(q)
}

// coordinatesQuery is an optional coordinate pair. Missing reports that
// neither parameter was sent.
type coordinatesQuery struct {
	Lat     float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `query:"lng" validate:"gte=-180,lte=180"`
	Missing bool    `validate:"-"`
}

func (q *coordinatesQuery) bind(r *http.Request, optional bool) error {
	values := r.URL.Query()
	rawLat, rawLng := strings.TrimSpace(values.Get("lat")), strings.TrimSpace(values.Get("lng"))
	if rawLat == "" && rawLng == "" && optional {
		q.Missing = true
		return nil
	}

	var err error
	if q.Lat, err = parseFloat("lat", rawLat); err != nil {
		return err
	}
	if q.Lng, err = parseFloat("lng", rawLng); err != nil {
		return err
	}
	return validate.Struct(q)
}

func (q coordinatesQuery) coordinates() location.Coordinates {
	return location.Coordinates{Lat: q.Lat, Lng: q.Lng}
}

// forecastQuery is a place and a horizon in hours. Zero hours means the
// default horizon.
type forecastQuery struct {
	locationQuery
	Hours int `query:"hours" validate:"gte=0,lte=72"`
}

func (q *forecastQuery) bind(r *http.Request) error {
	var err error
	if q.Hours, err = parseInt("hours", r.URL.Query().Get("hours"), 0); err != nil {
		return err
	}
	q.read(r)
	return validate.Struct(q)
}

// thresholdQuery is a place and the index it is compared against.
type thresholdQuery struct {
	locationQuery
	Threshold int `query:"threshold" validate:"gte=0,lte=500"`
}

func (q *thresholdQuery) bind(r *http.Request) error {
	raw := r.URL.Query().Get("threshold")
	if strings.TrimSpace(raw) == "" {
		return &response.ParamError{Field: "threshold", Message: "is required"}
	}
	var err error
	if q.Threshold, err = parseInt("threshold", raw, 0); err != nil {
		return err
	}
	q.read(r)
	return validate.Struct(q)
}

// searchQuery is a partial place name typed by the user.
type searchQuery struct {
	Q string `query:"q" validate:"required,min=2,max=120"`
}

func (q *searchQuery) bind(r *http.Request) error {
	q.Q = strings.TrimSpace(r.URL.Query().Get("q"))
	return validate.Struct(q)
}

// suggestionsQuery allows an empty query, which lists popular cities.
type suggestionsQuery struct {
	Q string `query:"q" validate:"max=120"`
}

func (q *suggestionsQuery) bind(r *http.Request) error {
	q.Q = strings.TrimSpace(r.URL.Query().Get("q"))
	return validate.Struct(q)
}

// cityQuery is an optional city filter.
type cityQuery struct {
	City string `query:"city" validate:"max=120"`
}

func (q *cityQuery) bind(r *http.Request) error {
	q.City = strings.TrimSpace(r.URL.Query().Get("city"))
	return validate.Struct(q)
}

func parseFloat(field, raw string) (float64, error) {
	if raw == "" {
		return 0, &response.ParamError{Field: field, Message: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &response.ParamError{Field: field, Message: "must be a number"}
	}
	return v, nil
}

func parseInt(field, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &response.ParamError{Field: field, Message: "must be an integer"}
	}
	return v, nil
}
