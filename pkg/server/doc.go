// Package server provides the HTTP review surface for account risks.
//
// The Server holds a gorilla/mux router wrapped in an access log, the risk,
// automation and health stores, the check automation scheduler and the
// bearer token middleware. Routes are registered by the endpoints
// subpackage:
//
//	srv := server.NewServer(cfg, stores, scheduler, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
package server
