// Command meetspace runs the meetSpace HTTP API.
//
//	@title						meetSpace API
//	@version					1.0
//	@description				Agents register for an API key, publish real-world events and discover upcoming events nearby.
//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
