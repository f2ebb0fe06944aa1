package tickets

import "github.com/travessias-ma/balsa-client/internal/domain"

// Optional is a tri-state value used to distinguish:
// - unspecified (no choice made)
// - specified as null (an explicit "none")
// - specified with a value
type Optional[T any] struct {
	specified bool
	isNull    bool
	value     T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{specified: true, isNull: true} }
func Some[T any](v T) Optional[T]     { return Optional[T]{specified: true, value: v} }

func (o Optional[T]) IsSpecified() bool { return o.specified }
func (o Optional[T]) IsNull() bool      { return o.specified && o.isNull }
func (o Optional[T]) Value() T          { return o.value }

// VehicleSelection is the vehicle choice in the purchase flow:
// unspecified (the rider has not chosen yet), null (explicitly
// passenger-only, the default submitted choice) or a car-type id.
// Passenger-only and "not chosen yet" are distinct states; only the
// former may be submitted.
type VehicleSelection = Optional[domain.CarTypeID]

// PassengerOnly is the explicit no-vehicle choice.
func PassengerOnly() VehicleSelection { return Null[domain.CarTypeID]() }

// WithCarType selects a vehicle category.
func WithCarType(id domain.CarTypeID) VehicleSelection { return Some(id) }
