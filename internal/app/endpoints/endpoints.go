package endpoints

// Endpoints groups every endpoint exposed over HTTP.
type Endpoints struct {
	HotelEndpoint HotelEndpoint
}
