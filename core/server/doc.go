// Package server owns the network side of the control server.
//
// # Port allocation
//
// Allocator scans the configured loopback range (50027-50050 by default) and
// returns the first listener it can bind. Busy ports are logged and skipped. If
// every port is taken, one last bind at MaxPort is attempted before giving up
// with ErrNoPortAvailable, the only fatal startup condition.
//
// # App
//
// NewApp builds the Fiber app with the global middleware chain: RayID, CORS and
// request logging. Serve runs it on the allocated listener so no other process
// can take the port between probing and serving.
//
// # Usage
//
//	ln, port, err := server.NewAllocator(cfg.Server, log).Allocate()
//	app := server.NewApp(log)
//	// register features ...
//	err = server.Serve(app, ln)
package server
