package domain

// CarType is a vehicle category purchasable alongside a passenger fare.
// Read-only reference data owned by the remote API.
type CarType struct {
	ID CarTypeID

	// Label is the human-readable category name, e.g. "Carro de passeio".
	Label string

	// Space is the number of deck capacity units the vehicle consumes.
	Space int

	// Cost is the additive surcharge over the passenger fare, in BRL.
	Cost float64
}
