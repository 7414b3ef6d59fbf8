package server

// Server groups the handlers of every resource of the public API.
type Server struct {
	BoatServer
}

func NewServer(
	boatServer BoatServer,
) Server {
	return Server{
		BoatServer: boatServer,
	}
}
