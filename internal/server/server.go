package server

// Server unions the entity-specific HTTP servers. Deals is the only surface
// for now, but the split keeps routes and handlers per entity.
type Server struct {
	DealsServer
}

func NewServer(
	dealsServer DealsServer,
) Server {
	return Server{
		DealsServer: dealsServer,
	}
}
