package domain

// Vendor is a roaming-seller record owned by the external vendor store.
// This subsystem only ever reads it. Location is set while the vendor is
// live and broadcasting; it is nil otherwise.
type Vendor struct {
	ID           int
	Name         string
	Category     string
	WhatsApp     string
	IsLive       bool
	Location     *Coordinate
	ProfileImage string
	CartImage    string
}

// VendorProximity pairs a live vendor with its great-circle distance from
// a query point. It is derived per request and never persisted or cached.
type VendorProximity struct {
	Vendor     Vendor
	DistanceKm float64
	DistanceM  int
}
