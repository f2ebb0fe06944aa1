package domain

// UserID identifies a rider account. It is assigned by the remote API at
// registration; the client treats it as opaque.
type UserID string

// TripID identifies one scheduled crossing.
type TripID string

// CarTypeID identifies a purchasable vehicle category.
type CarTypeID string
