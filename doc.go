// Package gossdb is a client library for SSDB, a Redis-like networked
// key-value store speaking a plain-text length-prefixed protocol over TCP.
//
// A Client multiplexes callers over a bounded connection pool:
//
//	cli := gossdb.New(&gossdb.Options{Host: "localhost", Port: 7036})
//	defer cli.Close()
//
//	if _, err := cli.Set("foo", "bar"); err != nil {
//		// ...
//	}
//	v, err := cli.Get("foo") // nil when the key does not exist
//
// Every typed method is a thin wrapper over Do, which sends one command
// and shapes the response by the command's response class:
//
//	res, err := cli.Do("hset", "h", "field", "value")
//
// Commands answered with not_found yield the zero value of the wrapper's
// return type (nil for byte slices); scan wrappers return an empty page
// instead of a nil pointer. Server-side failures surface as
// *RemoteError; broken sockets disconnect the affected connection and the
// pool replaces it on the next lease.
package gossdb
