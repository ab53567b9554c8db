// Package oceanclient constructs clients implementing the ocean.Client
// interface.
//
// Quick start
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
// The access token is an opaque string obtained from the provider's control
// panel; the client never refreshes or inspects it. Endpoints without a
// scheme get "https://" prepended, and an empty endpoint selects the
// production API.
package oceanclient
