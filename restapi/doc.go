// Package restapi is the transport adapter keyed on the "restapi" adapter
// type of a binding.RequestConfig. It performs the REST calls against a
// Parse-compatible backend and invokes the binding hooks at the two points
// a request crosses the adapter: fetch options are translated before send,
// responses are unwrapped after receive.
//
//	cfg, _ := binding.BuildRequestConfig(set, "GameScore")
//	client, err := restapi.New(cfg)
//
//	records, err := client.Query(ctx, binding.FetchOptions{
//	    Query: map[string]any{"playerName": "d.plummer"},
//	})
package restapi
