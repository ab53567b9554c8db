// Package ocean defines the public types and interfaces for the Ocean
// cloud API client: resource structs with their wire representations,
// request bodies, error types, and the Client interface giving access to
// the per-resource clients (Droplets, Domains, Images, Keys, Regions,
// Sizes, Actions, Account).
//
// Construct a client with the oceanclient package:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tidewater-io/ocean/pkg/oceanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := oceanclient.NewWithToken(ctx, "your-token")
//	  if err != nil { log.Fatal(err) }
//
//	  droplets, err := cli.Droplets().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = droplets
//	}
//
// Every operation performs a single synchronous HTTP exchange. Failures are
// either transport errors (wrapped with operation context) or remote errors
// surfaced as *ocean.APIError with the HTTP status attached; use IsNotFound,
// IsUnauthorized, and IsRateLimited to classify them.
package ocean
